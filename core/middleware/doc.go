// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// static site handler.
//
// # Components
//
//   - RayID: generates a unique request id for every incoming request,
//     storing it in the context locals and the X-Ray-ID response header.
//   - Headers: applies the static CORS and cache policy to every response
//     and answers CORS preflight requests.
//   - AccessLog: records only requests that end in 403, 404 or 500.
//
// Registration order in app.New is RayID, AccessLog, Headers, so
// that error responses produced by the Fiber error handler still carry the
// header policy and are logged with their request id.
package middleware
