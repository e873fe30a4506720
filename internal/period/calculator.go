// Package period computes calendar-accurate reporting windows.
//
// All bounds are UTC. A period's Start is always 00:00:00.000 of its
// first day and its End 23:59:59.999 of its last day, so consecutive
// periods tile the timeline with a 1ms gap-free boundary.
package period

import (
	"fmt"
	"time"

	"starquest/internal/i18n"
)

// Type is a reporting granularity
type Type string

const (
	Daily     Type = "daily"
	Weekly    Type = "weekly"
	Monthly   Type = "monthly"
	Quarterly Type = "quarterly"
	Yearly    Type = "yearly"
)

// ParseType validates a period type string from a request
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Daily, Weekly, Monthly, Quarterly, Yearly:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown period type: %q", s)
}

// Period is a contiguous, inclusive UTC time window
type Period struct {
	Type  Type      `json:"type"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// defaultCounts is how many periods each granularity's picker shows
var defaultCounts = map[Type]int{
	Daily:     30,
	Weekly:    12,
	Monthly:   12,
	Quarterly: 4,
	Yearly:    3,
}

const lastInstant = 24*time.Hour - time.Millisecond

// Bounds returns the period of the given type containing ref.
// The label is formatted for the default locale; use Label for others.
func Bounds(t Type, ref time.Time) (Period, error) {
	ref = ref.UTC()
	var start, end time.Time

	switch t {
	case Daily:
		start = midnight(ref)
		end = start.Add(lastInstant)
	case Weekly:
		// Weeks run Sunday through Saturday
		start = midnight(ref).AddDate(0, 0, -int(ref.Weekday()))
		end = start.AddDate(0, 0, 6).Add(lastInstant)
	case Monthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		// Day 0 of the next month is the last day of this one,
		// which keeps leap-year Februaries correct
		end = time.Date(ref.Year(), ref.Month()+1, 0, 23, 59, 59, 999000000, time.UTC)
	case Quarterly:
		q := (int(ref.Month()) - 1) / 3
		firstMonth := time.Month(q*3 + 1)
		start = time.Date(ref.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(ref.Year(), firstMonth+3, 0, 23, 59, 59, 999000000, time.UTC)
	case Yearly:
		start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(ref.Year(), time.December, 31, 23, 59, 59, 999000000, time.UTC)
	default:
		return Period{}, fmt.Errorf("unknown period type: %q", t)
	}

	return Period{Type: t, Start: start, End: end, Label: Label(t, start, end, i18n.DefaultLocale)}, nil
}

// PreviousBounds returns the period of identical granularity immediately
// preceding [start, end]. The result's End is always start minus 1ms.
func PreviousBounds(t Type, start, end time.Time) (Period, error) {
	return Bounds(t, start.UTC().Add(-time.Millisecond))
}

// RecentPeriods enumerates count periods going backward from the period
// containing ref (inclusive), newest first, contiguous and
// non-overlapping. count <= 0 selects the granularity's default
// (30/12/12/4/3 for daily/weekly/monthly/quarterly/yearly).
func RecentPeriods(t Type, locale string, ref time.Time, count int) ([]Period, error) {
	if count <= 0 {
		count = defaultCounts[t]
	}

	p, err := Bounds(t, ref)
	if err != nil {
		return nil, err
	}

	periods := make([]Period, 0, count)
	for i := 0; i < count; i++ {
		p.Label = Label(t, p.Start, p.End, locale)
		periods = append(periods, p)
		p, err = PreviousBounds(t, p.Start, p.End)
		if err != nil {
			return nil, err
		}
	}

	return periods, nil
}

// CurrentWeek returns the week containing ref. Period pickers use this:
// a report over the running week is partial but valid.
func CurrentWeek(ref time.Time) Period {
	p, _ := Bounds(Weekly, ref)
	return p
}

// LastCompletedWeek returns the most recent fully elapsed Sunday-to-
// Saturday week before ref's week. Scheduled weekly emails use this so
// they never report a half-finished week.
func LastCompletedWeek(ref time.Time) Period {
	cur, _ := Bounds(Weekly, ref)
	p, _ := PreviousBounds(Weekly, cur.Start, cur.End)
	return p
}

// Label formats a period label for the locale
func Label(t Type, start, end time.Time, locale string) string {
	start, end = start.UTC(), end.UTC()
	switch t {
	case Daily:
		return i18n.FormatDate(start, locale)
	case Weekly:
		return i18n.FormatDate(start, locale) + " – " + i18n.FormatDate(end, locale)
	case Monthly:
		return i18n.FormatMonthYear(start, locale)
	case Quarterly:
		q := (int(start.Month())-1)/3 + 1
		if locale == i18n.LocaleZhCN {
			return fmt.Sprintf("%d年Q%d", start.Year(), q)
		}
		return fmt.Sprintf("Q%d %d", q, start.Year())
	case Yearly:
		return fmt.Sprintf("%d", start.Year())
	}
	return ""
}

// Filename builds the deterministic download name for a rendered report,
// from UTC calendar fields only.
func Filename(t Type, start, end time.Time) string {
	start, end = start.UTC(), end.UTC()
	switch t {
	case Daily:
		return fmt.Sprintf("starquest-daily-%s.md", start.Format("2006-01-02"))
	case Weekly:
		return fmt.Sprintf("starquest-weekly-%s-to-%s.md", start.Format("2006-01-02"), end.Format("2006-01-02"))
	case Monthly:
		return fmt.Sprintf("starquest-monthly-%s.md", start.Format("2006-01"))
	case Quarterly:
		q := (int(start.Month())-1)/3 + 1
		return fmt.Sprintf("starquest-quarterly-%d-Q%d.md", start.Year(), q)
	case Yearly:
		return fmt.Sprintf("starquest-yearly-%d.md", start.Year())
	}
	return "starquest-report.md"
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
