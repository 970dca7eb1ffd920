package aggregator

import (
	"activity-log/errors"
	"fmt"
	"strconv"
	"strings"
)

// FormatHMS renders a number of seconds as zero-padded HH:MM:SS. Hours are
// not capped at 24 and widen as needed.
func FormatHMS(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	rem := seconds % 3600
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, rem/60, rem%60)
}

// ParseHMS is the inverse of FormatHMS. A leading "-" negates the whole
// duration; the parts themselves must be non-negative.
func ParseHMS(s string) (int64, error) {
	body := strings.TrimSpace(s)
	sign := int64(1)
	if rest, ok := strings.CutPrefix(body, "-"); ok {
		sign = -1
		body = rest
	}
	parts := strings.Split(body, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidHMS, s)
	}
	var total int64
	for i, unit := range []int64{3600, 60, 1} {
		if parts[i] == "" || strings.TrimLeft(parts[i], "0123456789") != "" {
			return 0, fmt.Errorf("%w: %q", errors.ErrInvalidHMS, s)
		}
		v, err := strconv.ParseInt(parts[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errors.ErrInvalidHMS, s)
		}
		total += v * unit
	}
	return sign * total, nil
}
