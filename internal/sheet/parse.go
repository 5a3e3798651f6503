package sheet

import (
	"strconv"
	"strings"
)

// parseIntOr reads the leading integer of raw. Text with no leading digits,
// and a parsed zero, both yield fallback so form fields that default to 1
// never store 0.
func parseIntOr(raw string, fallback int) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

// parseBool reads a form checkbox value. Anything unrecognized is false.
func parseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return b
}
