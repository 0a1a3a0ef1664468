package model

import (
	"errors"
	"testing"

	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryNewMeetingBounds(t *testing.T) {
	ids := NewIdGenerator()

	// 23:00 lasting two hours runs past midnight
	_, err := TryNewMeeting(ids, timeq.MustParse("23"), timeq.MustParse("2"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = TryNewMeeting(ids, 95, 2)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = TryNewMeeting(ids, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = TryNewMeeting(ids, -1, 4)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = TryNewMeeting(ids, timeq.TicksPerDay, 1)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	meeting, err := TryNewMeeting(ids, 0, timeq.TicksPerDay)
	require.NoError(t, err)
	assert.Equal(t, timeq.TicksPerDay, meeting.End())
}

func TestInvalidIntervalErrorCarriesBounds(t *testing.T) {
	_, err := TryNewMeeting(NewIdGenerator(), 90, 10)

	var intervalErr InvalidIntervalError
	require.True(t, errors.As(err, &intervalErr))
	assert.Equal(t, timeq.Tick(90), intervalErr.Start)
	assert.Equal(t, timeq.Tick(10), intervalErr.Duration)
}

func TestMeetingIdsAreMonotonic(t *testing.T) {
	//** Arrange
	ids := NewIdGenerator()

	//** Act
	first := NewMeeting(ids, 0, 4)
	_, err := TryNewMeeting(ids, 95, 4) // Rejected construction must not consume an id
	second := NewMeeting(ids, 4, 4)
	third := NewMeeting(ids, 8, 4)

	//** Assert
	assert.Error(t, err)
	assert.Equal(t, 1, first.Id())
	assert.Equal(t, 2, second.Id())
	assert.Equal(t, 3, third.Id())
	assert.Equal(t, 4, ids.Peek())
}

func TestIndependentGeneratorsRestartAtOne(t *testing.T) {
	assert.Equal(t, 1, NewMeeting(NewIdGenerator(), 0, 1).Id())
	assert.Equal(t, 1, NewMeeting(NewIdGenerator(), 0, 1).Id())
}

func TestNewMeetingPanicsOnInvalidBounds(t *testing.T) {
	assert.Panics(t, func() { NewMeeting(NewIdGenerator(), 90, 10) })
}

func TestMeetingFromStrings(t *testing.T) {
	ids := NewIdGenerator()

	meeting, err := MeetingFromStrings(ids, "1:30pm", "1.5")
	require.NoError(t, err)
	assert.Equal(t, timeq.Tick(54), meeting.Start())
	assert.Equal(t, timeq.Tick(6), meeting.Duration())
	assert.Equal(t, timeq.Tick(60), meeting.End())

	_, err = MeetingFromStrings(ids, "half past nine", "1")
	assert.ErrorIs(t, err, timeq.ErrInvalidTimeFormat)

	_, err = MeetingFromStrings(ids, "9:00", "1:00x")
	assert.ErrorIs(t, err, timeq.ErrInvalidTimeFormat)

	_, err = MeetingFromStrings(ids, "11:00pm", "2")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestMeetingOverlaps(t *testing.T) {
	ids := NewIdGenerator()
	a := NewMeeting(ids, 36, 4)
	b := NewMeeting(ids, 40, 4)
	c := NewMeeting(ids, 38, 4)

	assert.False(t, a.Overlaps(b))
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(b))
	assert.Equal(t, "st: 36, dur: 4, end: 40", a.String())
}
