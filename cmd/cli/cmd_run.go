package main

import (
	"fmt"
	"io"
	"os"

	"github.com/limaJavier/meetingscheduling/pkg/report"
	"github.com/limaJavier/meetingscheduling/pkg/simulation"
	"github.com/spf13/cobra"
)

var runFlags struct {
	configFile    string
	trials        int
	batchSize     int
	openStart     string
	openDuration  string
	seed          uint64
	progressEvery int
	format        string
	outFile       string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Monte Carlo comparison of the six orderings",
	Args:  cobra.NoArgs,
	RunE:  runSimulation,
}

func init() {
	defaults := simulation.NewDefaultConfig()
	flags := runCmd.Flags()
	flags.StringVar(&runFlags.configFile, "config", "", "Path to a JSON or YAML config file; flags given explicitly override it")
	flags.IntVar(&runFlags.trials, "trials", defaults.Trials, "Number of trials")
	flags.IntVar(&runFlags.batchSize, "batch", defaults.BatchSize, "Meetings generated per trial")
	flags.StringVar(&runFlags.openStart, "open", defaults.OpenStart, `Opening time of the room, e.g. "9:00" or "9:00am"`)
	flags.StringVar(&runFlags.openDuration, "hours", defaults.OpenDuration, "Opening hours of the room")
	flags.Uint64Var(&runFlags.seed, "seed", defaults.Seed, "Random seed; 0 seeds from the clock")
	flags.IntVar(&runFlags.progressEvery, "progress", defaults.ProgressEvery, "Log progress every n trials (debug level); 0 disables it")
	flags.StringVar(&runFlags.format, "format", string(report.Text), `Report format: "text", "json" or "csv"`)
	flags.StringVar(&runFlags.outFile, "out", "", "File to write the report to; if empty, it is written to the standard output")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(runFlags.format)
	if err != nil {
		return err
	}

	harness, err := simulation.NewHarness(config, logger)
	if err != nil {
		return fmt.Errorf("cannot build harness: %w", err)
	}
	result := harness.Run()

	var out io.Writer = cmd.OutOrStdout()
	if runFlags.outFile != "" {
		file, err := os.Create(runFlags.outFile)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := report.Write(out, format, result); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	if runFlags.outFile != "" {
		logger.Info().Str("file", runFlags.outFile).Msg("report written")
	}
	return nil
}

// Starts from the defaults or the config file, then applies the flags the user set
func resolveConfig(cmd *cobra.Command) (simulation.Config, error) {
	config := simulation.NewDefaultConfig()
	if runFlags.configFile != "" {
		var err error
		config, err = simulation.ConfigFromFile(runFlags.configFile)
		if err != nil {
			return simulation.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		config.Trials = runFlags.trials
	}
	if flags.Changed("batch") {
		config.BatchSize = runFlags.batchSize
	}
	if flags.Changed("open") {
		config.OpenStart = runFlags.openStart
	}
	if flags.Changed("hours") {
		config.OpenDuration = runFlags.openDuration
	}
	if flags.Changed("seed") {
		config.Seed = runFlags.seed
	}
	if flags.Changed("progress") {
		config.ProgressEvery = runFlags.progressEvery
	}

	return config, config.Validate()
}
