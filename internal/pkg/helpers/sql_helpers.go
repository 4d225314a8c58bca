package helpers

import (
	"strconv"
	"strings"
)

// NullIfEmpty returns nil for blank strings so the column is stored as NULL.
func NullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParseIntList turns form values like "1,2, 3" or "[1,2]" (possibly repeated)
// into positive integer ids. Blank entries are ignored; ok is false when an
// entry is not a positive integer.
func ParseIntList(raw ...string) (values []int32, ok bool) {
	values = []int32{}
	for _, item := range raw {
		item = strings.Trim(strings.TrimSpace(item), "[]")
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.ParseInt(part, 10, 32)
			if err != nil || n <= 0 {
				return nil, false
			}
			values = append(values, int32(n))
		}
	}
	return values, true
}
