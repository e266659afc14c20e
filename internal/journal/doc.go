// Package journal records merge, intake, and normalize runs in a SQLite
// database so that past outputs can be traced back to their inputs.
//
// The store opens with WAL journaling and a busy timeout, and retries writes
// that hit SQLITE_BUSY with a short exponential backoff. The schema is
// embedded and versioned; a version mismatch is reported rather than migrated.
package journal
