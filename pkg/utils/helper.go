package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseNonNegativeInt is strict: empty input yields the default, anything
// that is not a whole number >= 0 is reported as not ok.
func ParseNonNegativeInt(value string, defaultValue int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, true
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 0 {
		return 0, false
	}

	return result, true
}
