package stats

import (
	"fmt"
	"strings"
)

const (
	secondsInMinute = 60
	secondsInHour   = 3600
	secondsInDay    = 86400
	secondsInMonth  = 2592000  // 30 days
	secondsInYear   = 31536000 // 365 days
)

// MsToMinutes converts milliseconds to minutes as a float. Callers round for
// display.
func MsToMinutes(ms int64) float64 {
	return float64(ms) / 1000 / 60
}

// MsToTime formats milliseconds as a compact duration like "1y 2mo 3d 4h 5m 6s",
// omitting zero units. Years and months are fixed 365- and 30-day
// approximations, not calendar-aware. Durations under one second render as "0s".
func MsToTime(ms int64) string {
	remaining := ms / 1000

	years := remaining / secondsInYear
	remaining %= secondsInYear

	months := remaining / secondsInMonth
	remaining %= secondsInMonth

	days := remaining / secondsInDay
	remaining %= secondsInDay

	hours := remaining / secondsInHour
	remaining %= secondsInHour

	minutes := remaining / secondsInMinute
	seconds := remaining % secondsInMinute

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", years))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%dmo", months))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
