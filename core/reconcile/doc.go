// Package reconcile provides the state reconciliation engine for content consumption records.
//
// A consumption record describes one user's progress on one piece of content. Clients submit
// partial updates which may arrive duplicated, out of order or incomplete. The engine merges each
// update into the stored record so that the monotone fields never regress.
//
// # Components
//
//  1. Timestamps: ParseTimestamp reads the fixed textual format used on the wire
//     ("2006-01-02 15:04:05:000-0700"), ResolveLater picks the later of two optional instants.
//
//  2. Engine: Merge combines an incoming PartialRecord with an optional stored ConsumptionRecord.
//     Status never decreases, progress never decreases, and a completed record always carries
//     progress 100 plus a completion time.
//
//  3. Fields: the static mapping between external (request) field names and storage column names.
//     It is applied after the merge, right before persistence.
//
//  4. Validation: read-field allow-list checks and required-field checks for update entries. Both
//     accumulate every violation instead of stopping at the first.
//
//  5. KeyedMutex: optional per-key serialization of the read-merge-write sequence.
//
// # Usage
//
//	engine := reconcile.NewEngine(logger)
//	merged := engine.Merge(incoming, existing, userID, time.Now())
//	columns := reconcile.ToStorageColumns(merged.Fields())
//
// The engine is a pure function of its inputs apart from logging and is safe for concurrent use.
package reconcile
