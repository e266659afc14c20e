// Package opf reads and writes OPF coding project files.
//
// An OPF file is a zip archive with a required `db` entry holding the coding
// table and an optional `project` entry that is carried through untouched. The
// `db` text is line oriented: a `#` version marker, then for every column a
// header line (`<name> <type>-<code>,<code>...`) followed by its cells
// (`<onset>,<offset>,(<value>)`). Column boundaries are implicit, so the parser
// folds lines into an open column and flushes it on the next header or at end
// of input.
//
// Load and Save are the byte-boundary entry points. Lines that match no rule
// are reported as Diagnostics and dropped; they never abort a load. Structural
// problems (missing `db`, duplicate or missing columns) are returned as typed
// errors that match the Err* sentinels with errors.Is.
//
// Column identity is case-insensitive while the original spelling is kept for
// display and serialization. Columns serialize in first-seen order.
package opf
