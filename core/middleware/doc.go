// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: optional service API key check (X-API-Key).
//   - identity: resolves the caller's user id from an HS256 user token.
//   - rayid: assigns every request a ray id, stored in locals and echoed in X-Ray-ID.
//
// rayid is registered globally first; identity is attached per route so the 401 envelope carries
// the route's API id.
package middleware
