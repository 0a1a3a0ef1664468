package main

import (
	"errors"
	"fmt"

	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <time>...",
	Short: "Show how time expressions are quantized into 15-minute ticks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, input := range args {
		tick, err := timeq.Parse(input)
		if errors.Is(err, timeq.ErrInvalidTimeFormat) {
			logger.Warn().Str("input", input).Msg("invalid time format")
			invalid++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%q -> tick %d (%v)\n", input, tick, timeq.Format(tick))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d expressions could not be parsed", invalid, len(args))
	}
	return nil
}
