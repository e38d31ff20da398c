// Package integrity provides infrastructure health checks for the content-state service.
//
// # Checks Provided
//
//   - Schema: validates that the user_entity_consumption table matches the GORM model (columns, explicit types).
//   - Bucket: verifies that the export bucket exists in object storage, and can create it.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/bucket : Runs the bucket check (supports ?fix=true).
package integrity
