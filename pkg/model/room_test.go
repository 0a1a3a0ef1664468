package model

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkdayRoom(t *testing.T) *Room {
	room, err := NewRoom(timeq.MustParse("9:00"), timeq.MustParse("9"))
	require.NoError(t, err)
	return room
}

func TestNewRoomCells(t *testing.T) {
	room := newWorkdayRoom(t)

	cells := room.Cells()
	require.Len(t, cells, int(timeq.TicksPerDay))
	for i, cell := range cells {
		if i >= 36 && i < 72 {
			assert.Equal(t, Free, cell, "cell %d", i)
		} else {
			assert.Equal(t, Closed, cell, "cell %d", i)
		}
	}
	assert.Equal(t, timeq.Tick(72), room.OpenEnd())
	assert.Zero(t, room.OccupiedCount())
}

func TestNewRoomRejectsWindowPastMidnight(t *testing.T) {
	_, err := NewRoom(80, 20)
	assert.Error(t, err)

	_, err = NewRoom(-4, 8)
	assert.Error(t, err)

	room, err := NewRoom(0, timeq.TicksPerDay)
	require.NoError(t, err)
	assert.NotContains(t, room.Cells(), Closed)
}

func TestAdmitScenario(t *testing.T) {
	//** Arrange
	room := newWorkdayRoom(t)
	ids := NewIdGenerator()
	first := NewMeeting(ids, 36, 4)
	second := NewMeeting(ids, 40, 4)
	third := NewMeeting(ids, 38, 4)

	//** Act & Assert
	assert.True(t, room.Admit(first))
	assert.True(t, room.Admit(second))
	assert.False(t, room.Admit(third))
	assert.Equal(t, 2, room.OccupiedCount())

	cells := room.Cells()
	assert.Equal(t, []int{1, 1, 1, 1, 2, 2, 2, 2}, cells[36:44])
	assert.Equal(t, []Slot{{Meeting: 1, Start: 36, End: 40}, {Meeting: 2, Start: 40, End: 44}}, room.Schedule())
	assert.True(t, room.Verify([]Meeting{first, second, third}))
}

func TestVerifyDetectsForeignOrPartialBookings(t *testing.T) {
	//** Arrange
	room := newWorkdayRoom(t)
	ids := NewIdGenerator()
	booked := NewMeeting(ids, 40, 4)
	require.True(t, room.Admit(booked))

	//** Act & Assert
	assert.False(t, room.Verify(nil)) // Cells held by a meeting that was never offered

	room.timeslots[43] = Free
	assert.False(t, room.Verify([]Meeting{booked})) // Partially booked

	room.Reset()
	room.timeslots[10] = Free
	assert.False(t, room.Verify(nil)) // Free cell outside the window
}

func TestAdmitRejectsClosedCellsWithoutPartialWrites(t *testing.T) {
	//** Arrange
	room := newWorkdayRoom(t)
	ids := NewIdGenerator()
	before := room.Cells()

	//** Act
	straddlingOpen := room.Admit(NewMeeting(ids, 34, 4))
	straddlingClose := room.Admit(NewMeeting(ids, 70, 4))
	outside := room.Admit(NewMeeting(ids, 80, 2))

	//** Assert
	assert.False(t, straddlingOpen)
	assert.False(t, straddlingClose)
	assert.False(t, outside)
	assert.Equal(t, before, room.Cells())
}

func TestAdmitRejectsOverlapWithoutPartialWrites(t *testing.T) {
	room := newWorkdayRoom(t)
	ids := NewIdGenerator()
	require.True(t, room.Admit(NewMeeting(ids, 50, 2)))
	before := room.Cells()

	assert.False(t, room.Admit(NewMeeting(ids, 44, 8)))
	assert.Equal(t, before, room.Cells())
}

func TestAdmissionExclusivity(t *testing.T) {
	random := rand.New(rand.NewPCG(3, 5))
	room, err := NewRoom(0, timeq.TicksPerDay)
	require.NoError(t, err)
	ids := NewIdGenerator()

	for range 500 {
		//** Arrange
		a := randomMeeting(random, ids)
		b := randomMeeting(random, ids)
		if !a.Overlaps(b) {
			continue
		}

		for _, pair := range [][2]Meeting{{a, b}, {b, a}} {
			//** Act
			room.Reset()
			admitted := room.AdmitAll(pair[:])

			//** Assert
			assert.Equal(t, 1, admitted, "%v and %v", a, b)
			assert.Equal(t, 1, room.OccupiedCount())
			assert.True(t, room.Verify(pair[:]))
		}
	}
}

func TestOccupiedCountWithSeparatedMeetings(t *testing.T) {
	gaps := [][3]timeq.Tick{{36, 45, 60}, {36, 41, 46}, {40, 60, 70}}

	for _, starts := range gaps {
		room := newWorkdayRoom(t)
		ids := NewIdGenerator()
		for _, start := range starts {
			require.True(t, room.Admit(NewMeeting(ids, start, 2)))
		}

		assert.Equal(t, 3, room.OccupiedCount(), "starts %v", starts)
	}
}

func TestOccupiedCountWithAdjacentMeetings(t *testing.T) {
	room := newWorkdayRoom(t)
	ids := NewIdGenerator()

	assert.Equal(t, 3, room.AdmitAll([]Meeting{
		NewMeeting(ids, 36, 1),
		NewMeeting(ids, 37, 1),
		NewMeeting(ids, 38, 34),
	}))
	assert.Equal(t, 3, room.OccupiedCount())
	assert.NotContains(t, room.Cells()[36:72], Free)
}

func TestResetIsIdempotent(t *testing.T) {
	//** Arrange
	room := newWorkdayRoom(t)
	pristine := room.Cells()
	ids := NewIdGenerator()
	room.AdmitAll([]Meeting{NewMeeting(ids, 36, 4), NewMeeting(ids, 50, 8)})
	require.Equal(t, 2, room.OccupiedCount())

	//** Act
	room.Reset()
	once := room.Cells()
	room.Reset()
	twice := room.Cells()

	//** Assert
	assert.Equal(t, pristine, once)
	assert.Equal(t, once, twice)
	assert.Zero(t, room.OccupiedCount())
	assert.Empty(t, room.Schedule())
}

func TestCellsReturnsCopy(t *testing.T) {
	room := newWorkdayRoom(t)
	cells := room.Cells()
	cells[40] = 99

	assert.False(t, slices.Contains(room.Cells(), 99))
}

func randomMeeting(random *rand.Rand, ids *IdGenerator) Meeting {
	start := timeq.Tick(random.IntN(int(timeq.TicksPerDay) - 1))
	duration := timeq.Tick(1 + random.IntN(int(timeq.TicksPerDay-start)))
	return NewMeeting(ids, start, duration)
}
