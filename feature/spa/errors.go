package spa

import "errors"

var (
	// ErrMissingRootDirectory means the configured root is absent or not a directory.
	ErrMissingRootDirectory = errors.New("root directory not found")
	// ErrMissingFallbackDocument means the fallback document is absent from the root.
	ErrMissingFallbackDocument = errors.New("fallback document not found")
	// ErrPathTraversal is returned for request paths containing ".." segments.
	ErrPathTraversal = errors.New("path traversal rejected")
	// ErrNotFound is returned when neither the file nor the fallback can be served.
	ErrNotFound = errors.New("not found")
)
