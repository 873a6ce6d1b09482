package spa

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolution is the outcome of resolving a request path.
type Resolution struct {
	// Path is the absolute file system path to serve.
	Path string
	// Fallback is true when Path is the fallback document standing in for
	// an unmatched route.
	Fallback bool
}

// Resolver maps request paths onto files below a root directory.
type Resolver struct {
	root         string
	fallback     string
	assetsPrefix string
	spaFallback  bool
	aliases      map[string]bool
}

// NewResolver creates a resolver for the given site configuration.
func NewResolver(cfg Config) (*Resolver, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", cfg.Root, err)
	}

	fallback := cfg.FallbackDocument
	if fallback == "" {
		fallback = DefaultFallbackDocument
	}

	aliases := make(map[string]bool, len(cfg.Aliases))
	for _, a := range cfg.Aliases {
		if a = strings.TrimSpace(a); a != "" {
			aliases[path.Clean("/"+a)] = true
		}
	}

	return &Resolver{
		root:         root,
		fallback:     fallback,
		assetsPrefix: normalizePrefix(cfg.AssetsPrefix),
		spaFallback:  cfg.Fallback,
		aliases:      aliases,
	}, nil
}

// Resolve returns the file to serve for requestPath using the default
// assets prefix and SPA fallback enabled.
func Resolve(requestPath, rootDir, fallbackDocument string) (string, error) {
	r, err := NewResolver(Config{
		Root:             rootDir,
		FallbackDocument: fallbackDocument,
		AssetsPrefix:     DefaultAssetsPrefix,
		Fallback:         true,
	})
	if err != nil {
		return "", err
	}

	res, err := r.Resolve(requestPath)
	if err != nil {
		return "", err
	}
	return res.Path, nil
}

// Root returns the absolute root directory.
func (r *Resolver) Root() string {
	return r.root
}

// FallbackPath returns the absolute path of the fallback document.
func (r *Resolver) FallbackPath() string {
	return filepath.Join(r.root, filepath.FromSlash(r.fallback))
}

// Validate checks the startup preconditions: the root must be a directory
// and the fallback document a regular file inside it.
func (r *Resolver) Validate() error {
	info, err := os.Stat(r.root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s: %w", r.root, ErrMissingRootDirectory)
	}
	if !isFile(r.FallbackPath()) {
		return fmt.Errorf("%s: %w", r.FallbackPath(), ErrMissingFallbackDocument)
	}
	return nil
}

// Resolve maps requestPath to a file below the root. Any query string or
// fragment is ignored.
//
// Existing regular files are served as-is. Anything else falls back to the
// fallback document, except paths under the assets prefix (and every path
// when SPA fallback is off) which yield ErrNotFound. "/" and the configured
// aliases always map to the fallback document. Hidden files are never
// served, apart from the .well-known directory.
func (r *Resolver) Resolve(requestPath string) (Resolution, error) {
	return r.resolve(stripQuery(requestPath))
}

// resolve is Resolve for a path that has already been split from its query.
func (r *Resolver) resolve(requestPath string) (Resolution, error) {
	p := strings.ReplaceAll(requestPath, `\`, "/")

	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return Resolution{}, fmt.Errorf("%q: %w", requestPath, ErrPathTraversal)
		}
	}

	clean := path.Clean("/" + p)
	if hidden(clean) {
		return Resolution{}, fmt.Errorf("%s: hidden path: %w", clean, ErrNotFound)
	}

	if clean != "/" && !r.aliases[clean] {
		target, err := r.join(clean)
		if err != nil {
			return Resolution{}, err
		}
		if isFile(target) {
			return Resolution{Path: target}, nil
		}
		if !r.spaFallback || r.isAsset(clean) {
			return Resolution{}, fmt.Errorf("%s: %w", clean, ErrNotFound)
		}
	}

	fallback := r.FallbackPath()
	if !isFile(fallback) {
		return Resolution{}, fmt.Errorf("%s: %w", r.fallback, ErrNotFound)
	}
	return Resolution{Path: fallback, Fallback: true}, nil
}

func (r *Resolver) join(clean string) (string, error) {
	target := filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))

	rel, err := filepath.Rel(r.root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", clean, ErrPathTraversal)
	}
	return target, nil
}

func (r *Resolver) isAsset(clean string) bool {
	return r.assetsPrefix != "" && strings.HasPrefix(clean, r.assetsPrefix)
}

// hidden reports whether a cleaned path has a dot-file segment other than
// .well-known.
func hidden(clean string) bool {
	for _, seg := range strings.Split(clean, "/") {
		if strings.HasPrefix(seg, ".") && seg != ".well-known" {
			return true
		}
	}
	return false
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}

// normalizePrefix turns "assets", "/assets" and "assets/" into "/assets/".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix + "/"
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
