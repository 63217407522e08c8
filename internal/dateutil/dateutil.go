// Package dateutil canonicalizes dates to YYYY-MM-DD keys and derives
// display labels from timestamps.
package dateutil

import (
	"fmt"
	"math/rand"
	"time"
)

// LayoutKey is the canonical date key layout.
const LayoutKey = "2006-01-02"

// DateKey formats t as a zero-padded YYYY-MM-DD key in local time.
func DateKey(t time.Time) string {
	return t.Format(LayoutKey)
}

// Today returns the date key for the given clock time.
func Today(now time.Time) string {
	return DateKey(now)
}

// Yesterday returns the date key for the day before now.
func Yesterday(now time.Time) string {
	return DateKey(now.AddDate(0, 0, -1))
}

// Last7Days returns the date keys for the 7 days ending at anchor,
// oldest first, inclusive of the anchor day.
func Last7Days(anchor time.Time) []string {
	days := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		days = append(days, DateKey(anchor.AddDate(0, 0, -i)))
	}
	return days
}

// RelativeTime renders a human label for how long ago ts was, relative to
// now. Boundaries are half-open on the lower bound: exactly 60 minutes is
// "1h ago".
func RelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return ts.Format("1/2/2006")
	}
}

// PastRecords synthesizes per-day completion records for the `days` days
// ending at anchor, each marked done with probability successRate.
// Used only to populate demo data.
func PastRecords(anchor time.Time, days int, successRate float64, rng *rand.Rand) map[string]bool {
	records := make(map[string]bool, days)
	for i := 0; i < days; i++ {
		records[DateKey(anchor.AddDate(0, 0, -i))] = rng.Float64() < successRate
	}
	return records
}
