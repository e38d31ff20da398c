// Package contentstate serves the per-user content consumption state.
//
// Reads return stored records projected to the requested fields. Updates run each entry through
// the reconcile engine against the stored record and upsert the merged result, so that duplicate,
// reordered or partial submissions never lower status or progress.
//
// # Routes
//
//   - POST  /content/v2/state/read
//   - PATCH /content/v2/state/update
//
// Both require a user token (see core/middleware/identity). Only the first update entry is merged
// unless consumption.process_all_contents is set.
//
// # Persistence
//
// Records live in the user_entity_consumption table keyed by (userid, resourceid). Writes for the
// same key are serialized inside the process when consumption.serialize_writes is set; concurrent
// writers in other processes can still overwrite each other.
package contentstate
