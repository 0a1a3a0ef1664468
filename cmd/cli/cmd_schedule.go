package main

import (
	"fmt"
	"strings"

	"github.com/limaJavier/meetingscheduling/pkg/model"
	"github.com/limaJavier/meetingscheduling/pkg/report"
	"github.com/limaJavier/meetingscheduling/pkg/simulation"
	"github.com/spf13/cobra"
)

var scheduleFlags struct {
	openStart    string
	openDuration string
	ordering     string
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <start>/<duration>...",
	Short: "Book explicit meetings into a room and print the resulting schedule",
	Example: `  meetings schedule 9:00/1 10:00/1 9:30/1
  meetings schedule --ordering sdet 9:00am/2.5 1:15pm/0:45`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSchedule,
}

func init() {
	defaults := simulation.NewDefaultConfig()
	flags := scheduleCmd.Flags()
	flags.StringVar(&scheduleFlags.openStart, "open", defaults.OpenStart, "Opening time of the room")
	flags.StringVar(&scheduleFlags.openDuration, "hours", defaults.OpenDuration, "Opening hours of the room")
	flags.StringVar(&scheduleFlags.ordering, "ordering", "", fmt.Sprintf("Sort the meetings before booking them, one of: %v; if empty, they are booked as given", strings.Join(model.OrderingCodes(), ", ")))
}

func runSchedule(cmd *cobra.Command, args []string) error {
	config := simulation.Config{OpenStart: scheduleFlags.openStart, OpenDuration: scheduleFlags.openDuration}
	openStart, openDuration, err := config.Window()
	if err != nil {
		return err
	}
	room, err := model.NewRoom(openStart, openDuration)
	if err != nil {
		return err
	}

	meetings, err := parseMeetings(args)
	if err != nil {
		return err
	}

	if scheduleFlags.ordering != "" {
		ordering, err := model.ParseOrdering(scheduleFlags.ordering)
		if err != nil {
			return err
		}
		model.SortMeetings(ordering, meetings)
		logger.Debug().Str("ordering", ordering.String()).Msg("meetings sorted")
	}

	for _, meeting := range meetings {
		if !room.Admit(meeting) {
			logger.Info().Int("meeting", meeting.Id()).Str("start", meeting.Start().String()).Str("end", meeting.End().String()).Msg("meeting rejected")
		}
	}

	// Verify schedule correctness
	if !room.Verify(meetings) {
		return fmt.Errorf("room schedule failed verification")
	}

	return report.WriteSchedule(cmd.OutOrStdout(), room)
}

// Meetings are numbered in argument order starting at 1
func parseMeetings(args []string) ([]model.Meeting, error) {
	ids := model.NewIdGenerator()
	meetings := make([]model.Meeting, 0, len(args))
	for _, arg := range args {
		start, duration, ok := strings.Cut(arg, "/")
		if !ok {
			return nil, fmt.Errorf("meeting %q must have the form <start>/<duration>", arg)
		}
		meeting, err := model.MeetingFromStrings(ids, start, duration)
		if err != nil {
			return nil, fmt.Errorf("meeting %q: %w", arg, err)
		}
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}
