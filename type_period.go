package thrifthunter

import "strings"

// Period is a reporting window for profit aggregation and goals.
type Period int

const (
	Lifetime Period = iota
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	case Yearly:
		return "Yearly"
	default:
		return "Lifetime"
	}
}

// GoalPeriods lists the periods that carry a profit goal, in display order.
var GoalPeriods = []Period{Weekly, Monthly, Yearly}

// ParsePeriod parses a string into a Period. Unrecognized values resolve to
// Lifetime, the unfiltered total, rather than failing.
func ParsePeriod(s string) Period {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week":
		return Weekly
	case "monthly", "month":
		return Monthly
	case "yearly", "year":
		return Yearly
	default:
		return Lifetime
	}
}
