package model

import (
	"fmt"

	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/samber/lo"
)

// Cell states that are not meeting ids
const (
	Closed = -1
	Free   = 0
)

// Room is a single capacity-one resource with one cell per tick of the day.
// Each cell is Closed, Free or holds the id of the meeting occupying it.
type Room struct {
	openStart    timeq.Tick
	openDuration timeq.Tick
	timeslots    []int
}

// Slot is a maximal run of cells held by one meeting
type Slot struct {
	Meeting int
	Start   timeq.Tick
	End     timeq.Tick
}

// NewRoom opens the room over [openStart, openStart+openDuration)
func NewRoom(openStart, openDuration timeq.Tick) (*Room, error) {
	if openStart < 0 || openDuration < 0 || openStart+openDuration > timeq.TicksPerDay {
		return nil, fmt.Errorf("room window must fit in one day: start %d, duration %d (ticks)", openStart, openDuration)
	}

	room := &Room{
		openStart:    openStart,
		openDuration: openDuration,
		timeslots:    make([]int, timeq.TicksPerDay),
	}
	room.Reset()
	return room, nil
}

func (room *Room) OpenStart() timeq.Tick { return room.openStart }

func (room *Room) OpenDuration() timeq.Tick { return room.openDuration }

func (room *Room) OpenEnd() timeq.Tick { return room.openStart + room.openDuration }

// Admit books the meeting only when every cell it needs is free; otherwise nothing is written
func (room *Room) Admit(meeting Meeting) bool {
	for i := meeting.start; i < meeting.End(); i++ {
		if room.timeslots[i] != Free {
			return false
		}
	}

	for i := meeting.start; i < meeting.End(); i++ {
		room.timeslots[i] = meeting.id
	}
	return true
}

// AdmitAll offers the meetings in the given order and returns how many were admitted
func (room *Room) AdmitAll(meetings []Meeting) int {
	admitted := 0
	for _, meeting := range meetings {
		if room.Admit(meeting) {
			admitted++
		}
	}
	return admitted
}

// OccupiedCount counts the distinct runs of meeting ids. Admit keeps every meeting in one
// contiguous run, so this equals the number of admitted meetings.
func (room *Room) OccupiedCount() int {
	count, trailing := 0, Free
	for _, cell := range room.timeslots {
		if cell != Closed && cell != Free && cell != trailing {
			count++
			trailing = cell
		}
	}
	return count
}

// Reset restores the just-constructed Closed/Free pattern
func (room *Room) Reset() {
	for i := range room.timeslots {
		tick := timeq.Tick(i)
		if tick < room.openStart || tick >= room.OpenEnd() {
			room.timeslots[i] = Closed
		} else {
			room.timeslots[i] = Free
		}
	}
}

// Cells returns a copy of the grid
func (room *Room) Cells() []int {
	cells := make([]int, len(room.timeslots))
	copy(cells, room.timeslots)
	return cells
}

func (room *Room) Schedule() []Slot {
	slots := make([]Slot, 0)
	for i, cell := range room.timeslots {
		if cell == Closed || cell == Free {
			continue
		}
		tick := timeq.Tick(i)
		if last := len(slots) - 1; last >= 0 && slots[last].Meeting == cell && slots[last].End == tick {
			slots[last].End++
			continue
		}
		slots = append(slots, Slot{Meeting: cell, Start: tick, End: tick + 1})
	}
	return slots
}

// Verify checks the grid against the meetings that were offered to it
func (room *Room) Verify(meetings []Meeting) bool {
	byId := lo.KeyBy(meetings, func(meeting Meeting) int { return meeting.id })
	booked := make(map[int]timeq.Tick)

	for i, cell := range room.timeslots {
		tick := timeq.Tick(i)
		open := tick >= room.openStart && tick < room.OpenEnd()
		// Check that:
		// - Closed cells lie outside the window and free cells inside it
		// - An occupied cell is open and belongs to an offered meeting covering it
		switch cell {
		case Closed:
			if open {
				return false
			}
		case Free:
			if !open {
				return false
			}
		default:
			meeting, ok := byId[cell]
			if !ok || !open || tick < meeting.start || tick >= meeting.End() {
				return false
			}
			booked[cell]++
		}
	}

	// A meeting is either booked in full or not at all
	for id, cells := range booked {
		if cells != byId[id].duration {
			return false
		}
	}
	return true
}
