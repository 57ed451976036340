// Package daterange normalizes caller-supplied periods and date strings into
// the UTC window format the discovery API expects.
package daterange

import (
	"strings"
	"time"
)

// Layout is the discovery API's datetime format. The trailing Z is literal:
// values are converted to UTC before formatting.
const Layout = "2006-01-02T15:04:05Z"

const dateOnlyLayout = "2006-01-02"

// Resolver converts symbolic periods and bare dates into a normalized
// start/end timestamp pair.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a new date range resolver.
func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

// Resolve fills missing bounds from the symbolic period (today, week, month),
// defaults to a 30-day window when nothing is supplied, and normalizes both
// bounds. Strings that match neither the full layout nor a bare calendar date
// pass through unmodified; the upstream API rejects them.
func (r *Resolver) Resolve(period, startDate, endDate string) (string, string) {
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	if period != "" && (startDate == "" || endDate == "") {
		switch strings.ToLower(period) {
		case "today":
			startDate = formatUTC(today)
			endDate = formatUTC(atEndOfDay(today))
		case "week":
			startDate = formatUTC(today)
			endDate = formatUTC(atEndOfDay(today.AddDate(0, 0, 6)))
		case "month":
			startDate = formatUTC(today)
			// Day 0 of the next month normalizes to the last day of this one.
			endDate = formatUTC(time.Date(today.Year(), today.Month()+1, 0, 23, 59, 59, 0, time.Local))
		}
	}

	if startDate == "" && endDate == "" {
		startDate = formatUTC(today)
		endDate = formatUTC(atEndOfDay(today.AddDate(0, 0, 30)))
	}

	return normalize(startDate, true), normalize(endDate, false)
}

// normalize keeps strings already in the target layout, expands bare calendar
// dates to day boundaries, and passes anything else through untouched.
func normalize(dateStr string, isStart bool) string {
	if dateStr == "" {
		return ""
	}
	if _, err := time.Parse(Layout, dateStr); err == nil {
		return dateStr
	}
	d, err := time.ParseInLocation(dateOnlyLayout, dateStr, time.Local)
	if err != nil {
		return dateStr
	}
	if isStart {
		return formatUTC(d)
	}
	return formatUTC(atEndOfDay(d))
}

func atEndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.Local)
}

func formatUTC(t time.Time) string {
	return t.UTC().Format(Layout)
}
