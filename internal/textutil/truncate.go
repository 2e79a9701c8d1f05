package textutil

import (
	"fmt"
	"unicode/utf8"
)

// Ellipsis prefixes a truncated value.
const Ellipsis = "..."

// TruncateTail keeps the last limit runes of value and prefixes Ellipsis when
// anything was dropped. Values of at most limit runes are returned unchanged,
// so a 25-rune path with limit 20 renders as 23 runes.
func TruncateTail(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	count := utf8.RuneCountInString(value)
	if count <= limit {
		return value
	}
	runes := []rune(value)
	return Ellipsis + string(runes[count-limit:])
}

// FileCountLabel renders the number of selected input files.
func FileCountLabel(n int) string {
	return fmt.Sprintf("%d file(s) selected.", n)
}
