package fundfolio

import (
	"fmt"
	"strings"
)

// Range represents an inclusive range of dates used as a period filter.
// The zero Range means "unbounded": it contains every date.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// TrailingDays returns the range covering the last n days ending today,
// boundaries included.
func TrailingDays(n int) Range {
	today := Today()
	return Range{From: today.Add(-(n - 1)), To: today}
}

// IsZero reports whether the range is the unbounded zero value.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether date is included in the range, boundaries included.
// The zero range contains every date.
func (r Range) Contains(date Date) bool {
	if r.IsZero() {
		return true
	}
	return !date.Before(r.From) && !date.After(r.To)
}

func (r Range) String() string {
	if r.IsZero() {
		return "all"
	}
	return fmt.Sprintf("%s..%s", r.From, r.To)
}

// ParsePeriod maps a period selector ("30d", "90d", "365d", "all") to the
// range it denotes. Month counterparts used by monthly aggregation are
// resolved by PeriodMonths.
func ParsePeriod(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return Range{}, nil
	case "30d":
		return TrailingDays(30), nil
	case "90d":
		return TrailingDays(90), nil
	case "365d":
		return TrailingDays(365), nil
	default:
		return Range{}, fmt.Errorf("unknown period %q (want 30d, 90d, 365d or all)", s)
	}
}

// PeriodMonths maps a period selector to the number of most recent calendar
// months a monthly aggregation should keep. 0 means keep all.
func PeriodMonths(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return 0, nil
	case "30d":
		return 1, nil
	case "90d":
		return 3, nil
	case "365d":
		return 12, nil
	default:
		return 0, fmt.Errorf("unknown period %q (want 30d, 90d, 365d or all)", s)
	}
}
