package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Ordering selects the priority in which a batch of meetings is offered to a room
type Ordering int

const (
	EarliestStartShortestDuration Ordering = iota
	ShortestDurationEarliestStart
	LatestEndShortestDuration
	LatestEndLongestDuration
	ShortestDurationLatestEnd
	LongestDurationLatestEnd
)

// OrderingCount is the number of orderings, usable as an array length
const OrderingCount = int(LongestDurationLatestEnd) + 1

var (
	orderingCodes = map[Ordering]string{
		EarliestStartShortestDuration: "etsd",
		ShortestDurationEarliestStart: "sdet",
		LatestEndShortestDuration:     "lesd",
		LatestEndLongestDuration:      "leld",
		ShortestDurationLatestEnd:     "sdle",
		LongestDurationLatestEnd:      "ldle",
	}
	orderingNames = map[Ordering]string{
		EarliestStartShortestDuration: "Earliest time, shortest duration",
		ShortestDurationEarliestStart: "Shortest duration, earliest time",
		LatestEndShortestDuration:     "Latest end, shortest duration",
		LatestEndLongestDuration:      "Latest end, longest duration",
		ShortestDurationLatestEnd:     "Shortest duration, latest end",
		LongestDurationLatestEnd:      "Longest duration, latest end",
	}
	// Every comparator returns 0 only when both keys tie, so each one is a strict weak ordering
	comparators = map[Ordering]func(a, b Meeting) int{
		EarliestStartShortestDuration: func(a, b Meeting) int {
			return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.duration, b.duration))
		},
		ShortestDurationEarliestStart: func(a, b Meeting) int {
			return cmp.Or(cmp.Compare(a.duration, b.duration), cmp.Compare(a.start, b.start))
		},
		LatestEndShortestDuration: func(a, b Meeting) int {
			return cmp.Or(cmp.Compare(b.End(), a.End()), cmp.Compare(a.duration, b.duration))
		},
		LatestEndLongestDuration: func(a, b Meeting) int {
			return cmp.Or(cmp.Compare(b.End(), a.End()), cmp.Compare(b.duration, a.duration))
		},
		ShortestDurationLatestEnd: func(a, b Meeting) int {
			return cmp.Or(cmp.Compare(a.duration, b.duration), cmp.Compare(b.End(), a.End()))
		},
		LongestDurationLatestEnd: func(a, b Meeting) int {
			return cmp.Or(cmp.Compare(b.duration, a.duration), cmp.Compare(b.End(), a.End()))
		},
	}
)

// Orderings returns every ordering in the sequence the harness evaluates them
func Orderings() []Ordering {
	return []Ordering{
		EarliestStartShortestDuration,
		ShortestDurationEarliestStart,
		LatestEndShortestDuration,
		LatestEndLongestDuration,
		ShortestDurationLatestEnd,
		LongestDurationLatestEnd,
	}
}

func ParseOrdering(code string) (Ordering, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	ordering, ok := lo.FindKey(orderingCodes, code)
	if !ok {
		return 0, fmt.Errorf("%v is not a valid ordering, allowed values are: %v", code, strings.Join(OrderingCodes(), ", "))
	}
	return ordering, nil
}

func OrderingCodes() []string {
	return lo.Map(Orderings(), func(ordering Ordering, _ int) string { return ordering.Code() })
}

func (ordering Ordering) Code() string {
	return orderingCodes[ordering]
}

func (ordering Ordering) String() string {
	if name, ok := orderingNames[ordering]; ok {
		return name
	}
	return fmt.Sprintf("Ordering(%d)", int(ordering))
}

// Compare returns a negative number when a has priority over b, zero on ties
func (ordering Ordering) Compare(a, b Meeting) int {
	return ordering.comparator()(a, b)
}

// SortMeetings sorts in place. The outcome depends on the previous order only among exact ties.
func SortMeetings(ordering Ordering, meetings []Meeting) {
	slices.SortStableFunc(meetings, ordering.comparator())
}

func (ordering Ordering) comparator() func(a, b Meeting) int {
	comparator, ok := comparators[ordering]
	if !ok {
		panic(fmt.Sprintf("unknown ordering %d", int(ordering)))
	}
	return comparator
}
