// Package validate checks raw request input before it reaches the services.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"clinicart/internal/rules"
)

var (
	// Indian PIN code: six digits, first one non-zero.
	rePincode = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	reID      = regexp.MustCompile(`^[0-9]{1,9}$`)
)

// ID parses a numeric product id from a path segment.
func ID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Pincode parses a six digit postal code.
func Pincode(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !rePincode.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Page parses a 1-based page number; anything unusable becomes the first page.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return rules.DefaultPage
	}
	return n
}

// Limit parses a page size, clamped to max.
func Limit(s string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return rules.DefaultLimit
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
