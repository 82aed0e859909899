package patch

import "strings"

// OrDefault returns fallback when s is empty after trimming.
func OrDefault(s, fallback string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return fallback
}
