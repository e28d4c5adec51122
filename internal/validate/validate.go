package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reKey    = regexp.MustCompile(`^[a-z0-9_]{1,40}$`)
	reStatus = regexp.MustCompile(`^(active|inactive|discontinued)$`)
	reSort   = regexp.MustCompile(`^(name|stock|recent)$`)
)

// ID parses a numeric product id. Records use millisecond timestamps, so
// anything non-positive is rejected.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Q validates a search query: trims and enforces a max length. The finder
// treats it as opaque tokens, so no character whitelist.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 80 {
		s = s[:80]
	}
	return s, true
}

// Key validates a taxonomy key (category identifier).
func Key(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reKey.MatchString(s)
}

// Status validates the record status enum.
func Status(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, s != "" && reStatus.MatchString(s)
}

// Sort validates the list sort key.
func Sort(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, s != "" && reSort.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

// Page parses a 1-based page number, clamping abuse.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 1000 {
		return 1000
	}
	return n
}

// Qty parses a non-negative stock quantity.
func Qty(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// List splits a comma-joined form value into trimmed non-empty items.
func List(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
