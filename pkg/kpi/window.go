package kpi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the rolling window used when a request omits one.
const DefaultWindow = 30 * 24 * time.Hour

// ParseWindow converts a compact window string into a duration. Supported
// units are d (days), w (weeks), m (months, fixed at 30 days) and
// y (years, fixed at 365 days). Examples: "30d", "12w", "6m", "1y".
func ParseWindow(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return 0, fmt.Errorf("parse window %q: too short", s)
	}
	unit := s[len(s)-1]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("parse window %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parse window %q: must be positive", s)
	}

	day := 24 * time.Hour
	switch unit {
	case 'd':
		return time.Duration(n) * day, nil
	case 'w':
		return time.Duration(n) * 7 * day, nil
	case 'm':
		return time.Duration(n) * 30 * day, nil
	case 'y':
		return time.Duration(n) * 365 * day, nil
	default:
		return 0, fmt.Errorf("parse window %q: unknown unit %q", s, string(unit))
	}
}
