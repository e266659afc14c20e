// Package merge transplants participant identity from a completed intake
// document into a blank study template.
//
// The PLAY_ID and missing_child columns are copied from the source, and every
// extra column the study declares is pinned to the onset and offset of the
// first PLAY_ID cell. Columns left empty by the template receive one
// placeholder cell so that coders always open a structurally complete file.
//
// Merge works on a copy of the template and resolves every column it needs
// before writing, so a failed merge never leaves partial edits behind.
package merge
