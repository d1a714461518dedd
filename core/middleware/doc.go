// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Middleware is registered globally in the start command before any feature routes.
package middleware
