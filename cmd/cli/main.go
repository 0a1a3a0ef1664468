package main

import (
	"fmt"
	"os"

	"github.com/limaJavier/meetingscheduling/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger      zerolog.Logger
	environment string
)

var rootCmd = &cobra.Command{
	Use:   "meetings",
	Short: "Compare greedy orderings for booking meetings into a single room",
	Long: `Generates random batches of meetings, offers each batch to one room under six greedy
orderings and reports how many meetings every ordering manages to book on average.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Setup(environment)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&environment, "env", "production", `Logging environment: "development" (debug), "production" (info) or "quiet" (warnings only)`)
	rootCmd.AddCommand(runCmd, parseCmd, scheduleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
