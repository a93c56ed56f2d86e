// Package period resolves named reporting windows into concrete date ranges.
package period

import "time"

// Type selects one of the reporting windows offered by the UI.

type Type string

const (
	CurrentMonth  Type = "mes_atual"
	PreviousMonth Type = "mes_anterior"
	Last3Months   Type = "ultimos_3_meses"
	Last6Months   Type = "ultimos_6_meses"
	CurrentYear   Type = "ano_atual"
	Custom        Type = "personalizado"
)

// Filter is a tagged period descriptor. StartDate/EndDate are only read for
// Custom.

type Filter struct {
	Type      Type       `json:"tipo"`
	StartDate *time.Time `json:"dataInicio,omitempty"`
	EndDate   *time.Time `json:"dataFim,omitempty"`
}

// Range is a concrete inclusive date interval.

type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Resolve anchors a filter to "now" and returns the concrete interval.
//
// Month windows have exact calendar boundaries (mes_anterior ends at the last
// day of that month, 23:59:59) while the ultimos_N_meses windows roll back
// from today's day-of-month without aligning to month starts. The asymmetry
// is intentional and load-bearing for the reports.
//
// time.Date normalizes out-of-range months/days, so month-1 in January lands
// on December of the previous year and "day 0" on the last day of the
// previous month.
func Resolve(f Filter, now time.Time) Range {
	loc := now.Location()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, loc)

	switch f.Type {
	case PreviousMonth:
		return Range{
			Start: time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc),
			End:   time.Date(now.Year(), now.Month(), 0, 23, 59, 59, 0, loc),
		}
	case Last3Months:
		return Range{
			Start: time.Date(now.Year(), now.Month()-3, now.Day(), 0, 0, 0, 0, loc),
			End:   endOfToday,
		}
	case Last6Months:
		return Range{
			Start: time.Date(now.Year(), now.Month()-6, now.Day(), 0, 0, 0, 0, loc),
			End:   endOfToday,
		}
	case CurrentYear:
		return Range{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc),
			End:   endOfToday,
		}
	case Custom:
		r := Range{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc),
			End:   now,
		}
		if f.StartDate != nil {
			r.Start = *f.StartDate
		}
		if f.EndDate != nil {
			r.End = *f.EndDate
		}
		return r
	default: // CurrentMonth
		return Range{
			Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc),
			End:   endOfToday,
		}
	}
}
