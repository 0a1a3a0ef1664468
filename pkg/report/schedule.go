package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/limaJavier/meetingscheduling/pkg/model"
	"github.com/limaJavier/meetingscheduling/pkg/timeq"
)

// WriteSchedule prints the open hours of a room, one line per tick. The first tick of a
// meeting shows its id and the following ones are marked with "[]".
func WriteSchedule(w io.Writer, room *model.Room) error {
	var builder strings.Builder
	builder.WriteString("Hour  | Meeting ids\n")
	builder.WriteString("------|------------\n")

	trailing := model.Free
	for i, cell := range room.Cells() {
		if cell == model.Closed {
			continue
		}

		tick := timeq.Tick(i)
		if tick%timeq.TicksPerHour == 0 {
			fmt.Fprintf(&builder, "%-5s |--- ", tick)
		} else {
			builder.WriteString("      |  - ")
		}

		switch {
		case cell == model.Free:
			builder.WriteString("\n")
		case cell == trailing:
			builder.WriteString("[]\n")
		default:
			fmt.Fprintf(&builder, "Meeting %d\n", cell)
		}
		trailing = cell
	}

	fmt.Fprintf(&builder, "\nNumber of meetings scheduled: %d\n", room.OccupiedCount())
	_, err := io.WriteString(w, builder.String())
	return err
}
