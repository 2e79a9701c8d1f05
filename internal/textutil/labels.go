package textutil

import "strings"

// YesNo renders a switch value for display.
func YesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// OrDefault returns value, or fallback when value is blank.
func OrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
