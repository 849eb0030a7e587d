package stats

import (
	"fmt"
	"time"
)

// Period is a reporting window anchored at the current moment.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// epochFloor bounds the "all" period; nothing was recorded before it.
var epochFloor = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}

	return false
}

// Range returns the [start, now] window for the period. The start is always
// a midnight boundary: today for day, the most recent Monday for week, the
// first of the month for month, January 1 for year, and the epoch floor for
// all.
func (p Period) Range(now time.Time) (time.Time, time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodDay:
		return midnight, now, nil
	case PeriodWeek:
		// time.Weekday counts Sunday as 0; shift so Monday is 0.
		offset := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset), now, nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now, nil
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now, nil
	case PeriodAll:
		return epochFloor, now, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", p)
}

// Label returns the Russian display name of the period.
func (p Period) Label() string {
	switch p {
	case PeriodDay:
		return "за день"
	case PeriodWeek:
		return "за неделю"
	case PeriodMonth:
		return "за месяц"
	case PeriodYear:
		return "за год"
	case PeriodAll:
		return "за все время"
	}

	return string(p)
}
