package model

import (
	"errors"
	"fmt"

	"github.com/limaJavier/meetingscheduling/pkg/timeq"
)

var ErrInvalidInterval = errors.New("invalid interval")

type InvalidIntervalError struct {
	Start    timeq.Tick
	Duration timeq.Tick
}

func (err InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: start %d, duration %d (ticks)", err.Start, err.Duration)
}

func (err InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// Meeting is an immutable [start, start+duration) range of ticks within one day
type Meeting struct {
	id       int
	start    timeq.Tick
	duration timeq.Tick
}

// TryNewMeeting validates the bounds and only then draws an id from the generator
func TryNewMeeting(ids *IdGenerator, start, duration timeq.Tick) (Meeting, error) {
	if start < 0 || start >= timeq.TicksPerDay || duration <= 0 || start+duration > timeq.TicksPerDay {
		return Meeting{}, InvalidIntervalError{Start: start, Duration: duration}
	}

	return Meeting{
		id:       ids.Next(),
		start:    start,
		duration: duration,
	}, nil
}

// NewMeeting is used where the bounds are guaranteed by construction; a violation is a bug
func NewMeeting(ids *IdGenerator, start, duration timeq.Tick) Meeting {
	meeting, err := TryNewMeeting(ids, start, duration)
	if err != nil {
		panic(fmt.Sprintf("meeting bounds invariant violated: %v", err))
	}
	return meeting
}

// MeetingFromStrings builds a meeting from two time expressions understood by timeq.Parse
func MeetingFromStrings(ids *IdGenerator, start, duration string) (Meeting, error) {
	startTick, err := timeq.Parse(start)
	if err != nil {
		return Meeting{}, fmt.Errorf("cannot parse start: %w", err)
	}
	durationTick, err := timeq.Parse(duration)
	if err != nil {
		return Meeting{}, fmt.Errorf("cannot parse duration: %w", err)
	}
	return TryNewMeeting(ids, startTick, durationTick)
}

func (meeting Meeting) Id() int { return meeting.id }

func (meeting Meeting) Start() timeq.Tick { return meeting.start }

func (meeting Meeting) Duration() timeq.Tick { return meeting.duration }

// End is exclusive
func (meeting Meeting) End() timeq.Tick { return meeting.start + meeting.duration }

// Checks whether both meetings claim at least one common tick
func (meeting Meeting) Overlaps(other Meeting) bool {
	return meeting.start < other.End() && other.start < meeting.End()
}

func (meeting Meeting) String() string {
	return fmt.Sprintf("st: %d, dur: %d, end: %d", meeting.start, meeting.duration, meeting.End())
}
