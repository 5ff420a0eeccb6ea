package ui

import (
	"strconv"
	"strings"
)

// ParseTranslate reads the x/y percentages out of an inline
// "translate(x%, y%)" transform value. ok is false for anything else.
func ParseTranslate(transform string) (x, y float64, ok bool) {
	s := strings.TrimSpace(transform)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return 0, 0, false
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "translate("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, err := parsePercent(parts[0])
	if err != nil {
		return 0, 0, false
	}
	y, err = parsePercent(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func parsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	return strconv.ParseFloat(s, 64)
}
