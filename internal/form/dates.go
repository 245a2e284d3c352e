package form

import (
	"sort"
	"time"
)

const (
	dateKeyLayout  = "2006-01-02"
	wireDateLayout = "02-01-2006"
)

// DateKey formats a calendar date for internal map lookup (YYYY-MM-DD).
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// WireDate formats the same calendar date for the outbound payload
// (DD-MM-YYYY). Both formats are always produced from the live time.Time
// value so they can never drift apart.
func WireDate(t time.Time) string {
	return t.Format(wireDateLayout)
}

func ParseWireDate(s string) (time.Time, error) {
	return time.Parse(wireDateLayout, s)
}

// normalizeDates truncates the input to calendar days, removes duplicates
// and returns them sorted ascending. Every structural write of attending
// dates goes through here.
func normalizeDates(in []time.Time) []time.Time {
	seen := map[string]bool{}
	out := make([]time.Time, 0, len(in))
	for _, t := range in {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		key := DateKey(day)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// LastDay returns the chronologically latest attending date. Only that
// date's packed-meal and departure-time preferences are meaningful.
func LastDay(dates []time.Time) (time.Time, bool) {
	if len(dates) == 0 {
		return time.Time{}, false
	}
	last := dates[0]
	for _, d := range dates[1:] {
		if d.After(last) {
			last = d
		}
	}
	return last, true
}
