// Package spa serves a pre-built single-page application from disk.
//
// A request path is mapped onto the root directory. If a regular file exists
// at that location it is served with a content type inferred from its
// extension. Otherwise the fallback document (index.html by default) is
// served with status 200 so the client-side router can render the route.
//
// # Assets prefix
//
// Paths below the assets prefix (/assets/ by default) are never routes: a
// missing bundle there is a genuine 404. This keeps a stale hashed chunk
// from silently loading index.html as JavaScript.
//
// # Path traversal
//
// Any ".." segment in the request path is rejected with ErrPathTraversal
// (HTTP 403). Joined paths are additionally checked to stay inside the root.
//
// # Components
//
//   - Resolver: pure path resolution plus startup precondition checks.
//   - Handler: Fiber catch-all route built on Resolver.
//   - Feature: registers the handler with the loader.
package spa
