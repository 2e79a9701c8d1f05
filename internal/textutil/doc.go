// Package textutil provides the small text helpers used when presenting a
// selection to the user: tail truncation of long paths, the selected-file
// count label, and title-casing and yes/no labels for option values.
package textutil
