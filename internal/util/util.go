package util

import (
	"fmt"
	"math"
	"time"
)

// FormatTime formats a duration in milliseconds as a clock string:
// "HH:MM:SS" from one hour up, "MM:SS" below. Components are
// floor-truncated, not rounded.
func FormatTime(milliseconds int64) string {
	hours := milliseconds / (1000 * 60 * 60)
	minutes := (milliseconds % (1000 * 60 * 60)) / (1000 * 60)
	seconds := (milliseconds % (1000 * 60)) / 1000

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatDuration formats a duration in milliseconds as a compact
// human-readable string, e.g. "3h 25m" or "45m".
func FormatDuration(milliseconds int64) string {
	hours := milliseconds / (1000 * 60 * 60)
	minutes := (milliseconds % (1000 * 60 * 60)) / (1000 * 60)

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// CalculateEarnings converts tracked milliseconds and an hourly rate into
// whole currency units, rounded to the nearest unit.
func CalculateEarnings(totalTimeMs int64, ratePerHour int64) int64 {
	hours := float64(totalTimeMs) / (1000 * 60 * 60)
	return int64(math.Round(hours * float64(ratePerHour)))
}

// FormatCurrency formats a whole currency amount with thousands
// separators, e.g. "$1,234".
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var grouped string
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped += ","
		}
		grouped += string(d)
	}

	if negative {
		return "-$" + grouped
	}
	return "$" + grouped
}

// FormatDate formats a timestamp for session listings, collapsing today
// and yesterday to words.
func FormatDate(t time.Time, now time.Time) string {
	year, month, day := t.Date()
	ny, nm, nd := now.Date()
	if year == ny && month == nm && day == nd {
		return "today"
	}
	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	if year == yy && month == ym && day == yd {
		return "yesterday"
	}
	return t.Format("02/01/2006")
}

// FormatDateTime formats a timestamp with both date and clock time.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
