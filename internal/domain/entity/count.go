package entity

import (
	"math"
	"strconv"
	"strings"
)

// ParseCount converts display counts such as "12.5k" or "890" to integers.
// Empty or unparseable input yields 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	thousands := false
	if last := s[len(s)-1]; last == 'k' || last == 'K' {
		thousands = true
		s = s[:len(s)-1]
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	if thousands {
		return int(math.Round(v * 1000))
	}
	return int(v)
}
