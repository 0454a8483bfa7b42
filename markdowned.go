// Package markdowned converts an already-rendered web page into a clean
// Markdown document with a stable title and filename.
//
// This package contains domain types, interfaces and the pure decision
// logic (candidate choice, title resolution, filename building) following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// readability/, htmltomarkdown/).
package markdowned
