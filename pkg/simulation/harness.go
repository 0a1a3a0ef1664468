package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/limaJavier/meetingscheduling/pkg/model"
	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/rs/zerolog"
)

// Upper bound (exclusive) of a random duration draw: 22 hours and 3 quarters
const maxDurationDraw = int(timeq.TicksPerDay) - 4

// Counts holds one admitted-meeting figure per ordering, indexed by model.Ordering
type Counts [model.OrderingCount]int

// Harness runs the Monte Carlo comparison. It owns a single room that is reset between orderings.
type Harness struct {
	config Config
	logger zerolog.Logger
	seed   uint64
	random *rand.Rand
	ids    *model.IdGenerator
	room   *model.Room
}

func NewHarness(config Config, logger zerolog.Logger) (*Harness, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	openStart, openDuration, err := config.Window()
	if err != nil {
		return nil, err
	}
	room, err := model.NewRoom(openStart, openDuration)
	if err != nil {
		return nil, fmt.Errorf("cannot build room: %w", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Harness{
		config: config,
		logger: logger,
		seed:   seed,
		random: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ids:    model.NewIdGenerator(),
		room:   room,
	}, nil
}

func (harness *Harness) Seed() uint64 { return harness.seed }

// GenerateBatch draws BatchSize meetings. A start leaves at least one free tick before midnight
// and durations are redrawn until the meeting ends strictly before midnight.
func (harness *Harness) GenerateBatch() []model.Meeting {
	batch := make([]model.Meeting, 0, harness.config.BatchSize)
	for range harness.config.BatchSize {
		start := timeq.Tick(harness.random.IntN(int(timeq.TicksPerDay)))
		for start >= timeq.TicksPerDay-1 {
			start = timeq.Tick(harness.random.IntN(int(timeq.TicksPerDay)))
		}

		var duration timeq.Tick
		for duration <= 0 || start+duration >= timeq.TicksPerDay {
			duration = timeq.Tick(harness.random.IntN(maxDurationDraw))
		}

		batch = append(batch, model.NewMeeting(harness.ids, start, duration))
	}
	return batch
}

// RunTrial sorts the batch in place by every ordering in turn and admits it into the room.
// The room is reset after each ordering, so it is clean when RunTrial returns.
func (harness *Harness) RunTrial(batch []model.Meeting) Counts {
	var counts Counts
	for _, ordering := range model.Orderings() {
		model.SortMeetings(ordering, batch)
		harness.room.AdmitAll(batch)
		counts[ordering] = harness.room.OccupiedCount()
		harness.room.Reset()
	}
	return counts
}

func (harness *Harness) Run() Result {
	result := newResult(harness.config, harness.seed)
	harness.logger.Info().
		Int("trials", harness.config.Trials).
		Int("batchSize", harness.config.BatchSize).
		Str("openStart", harness.room.OpenStart().String()).
		Str("openEnd", harness.room.OpenEnd().String()).
		Uint64("seed", harness.seed).
		Msg("simulation started")

	processStart := time.Now()
	for trial := range harness.config.Trials {
		batch := harness.GenerateBatch()
		result.recordBatch(batch)
		result.recordCounts(harness.RunTrial(batch))

		if every := harness.config.ProgressEvery; every > 0 && (trial+1)%every == 0 {
			harness.logger.Debug().Int("trial", trial+1).Msg("simulation progress")
		}
	}
	result.Elapsed = time.Since(processStart)

	harness.logger.Info().
		Dur("elapsed", result.Elapsed).
		Str("best", result.Best().Code()).
		Msg("simulation finished")
	return result
}
