// Package nivesh provides the data-persistence and derived-state layer of a
// local-first personal-finance tracker. It is designed to keep users in full
// control of their data: every document is a human-readable JSON file on
// local storage, readable and restorable without the tool.
//
// The core functionalities include:
//   - Document Store: per-user, per-domain JSON documents that are read,
//     mutated in memory, and written back whole, with per-file locking and
//     atomic replacement so concurrent mutations never lose updates.
//   - Derived State: maturity dates, deposit statuses, current values,
//     returns, and the portfolio summary are recomputed from the raw
//     records before every write and are never hand-edited.
//   - Identity: registration and login over several credential paths
//     (password, PIN, biometric capability flag) with one-way hashing and a
//     self-provisioning administrator account.
//   - Backup: a versioned export envelope composing the whole per-user
//     document set, validated structurally before being imported back.
//
// This package serves as the foundational logic for the `nv` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package nivesh
