package utils

import "strconv"

// CoercePoints parses a user-submitted point amount, falling back to def when
// the input is not a valid integer. Invalid numeric input is deliberately
// coerced rather than rejected; callers enforce their own minimums on the
// coerced value.
func CoercePoints(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}
