package simulation

import (
	"math"
	"time"

	"github.com/limaJavier/meetingscheduling/pkg/model"
	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/samber/lo"
)

// Result aggregates every trial of a run
type Result struct {
	Seed      uint64
	Trials    int
	BatchSize int
	OpenStart string
	OpenHours string

	Totals   Counts
	Minimums Counts
	Maximums Counts

	StartsBeforeMidday int
	StartsAfterMidday  int
	TotalDuration      timeq.Tick

	Elapsed time.Duration
}

func newResult(config Config, seed uint64) Result {
	result := Result{
		Seed:      seed,
		Trials:    config.Trials,
		BatchSize: config.BatchSize,
		OpenStart: config.OpenStart,
		OpenHours: config.OpenDuration,
	}
	for i := range result.Minimums {
		result.Minimums[i] = math.MaxInt
	}
	return result
}

func (result *Result) recordBatch(batch []model.Meeting) {
	for _, meeting := range batch {
		if meeting.Start() < timeq.Midday {
			result.StartsBeforeMidday++
		} else {
			result.StartsAfterMidday++
		}
		result.TotalDuration += meeting.Duration()
	}
}

func (result *Result) recordCounts(counts Counts) {
	for i, count := range counts {
		result.Totals[i] += count
		result.Minimums[i] = min(result.Minimums[i], count)
		result.Maximums[i] = max(result.Maximums[i], count)
	}
}

// Average admitted meetings per trial for the ordering
func (result Result) Average(ordering model.Ordering) float64 {
	if result.Trials == 0 {
		return 0
	}
	return float64(result.Totals[ordering]) / float64(result.Trials)
}

func (result Result) Meetings() int {
	return result.StartsBeforeMidday + result.StartsAfterMidday
}

func (result Result) MeanDurationHours() float64 {
	if result.Meetings() == 0 {
		return 0
	}
	return result.TotalDuration.Hours() / float64(result.Meetings())
}

// Best is the ordering with the highest total; earlier orderings win ties
func (result Result) Best() model.Ordering {
	return lo.MaxBy(model.Orderings(), func(a, b model.Ordering) bool {
		return result.Totals[a] > result.Totals[b]
	})
}
