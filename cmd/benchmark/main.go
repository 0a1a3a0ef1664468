package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/limaJavier/meetingscheduling/pkg/logging"
	"github.com/limaJavier/meetingscheduling/pkg/model"
	"github.com/limaJavier/meetingscheduling/pkg/simulation"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const defaultOutFile = "benchmark_results.csv"

type WindowType int

const (
	workday WindowType = iota
	extended
	fullDay
)

var windowTypes = map[WindowType]string{
	workday:  "workday",
	extended: "extended",
	fullDay:  "fullday",
}

type WindowMetadata struct {
	Type         WindowType
	OpenStart    string
	OpenDuration string
}

type BenchmarkResult struct {
	Window    WindowMetadata
	BatchSize int
	Result    simulation.Result
}

func main() {
	trialsPtr := flag.Int("trials", 10000, "Trials per benchmark case")
	seedPtr := flag.Uint64("seed", 0, "Random seed shared by every case; 0 seeds from the clock")
	outFilePtr := flag.String("out", defaultOutFile, "Path to the CSV file with the results")
	flag.Parse()

	logger := logging.Setup("production")
	if *trialsPtr <= 0 {
		logger.Fatal().Int("trials", *trialsPtr).Msg("trials must be greater than 0")
	}

	results := run(getWindows(), getBatchSizes(), *trialsPtr, *seedPtr, logger)

	file, err := os.Create(*outFilePtr)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create CSV file")
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		logger.Fatal().Err(err).Msg("cannot write CSV file")
	}
	logger.Info().Str("file", *outFilePtr).Int("cases", len(results)).Msg("benchmark finished")
}

func run(windows []WindowMetadata, batchSizes []int, trials int, seed uint64, logger zerolog.Logger) []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(windows)*len(batchSizes))

	for _, window := range windows {
		for _, batchSize := range batchSizes {
			logger.Info().Str("window", windowTypes[window.Type]).Int("batchSize", batchSize).Msg("benchmarking")

			config := simulation.NewDefaultConfig()
			config.Trials = trials
			config.BatchSize = batchSize
			config.OpenStart = window.OpenStart
			config.OpenDuration = window.OpenDuration
			config.Seed = seed
			config.ProgressEvery = 0

			harness, err := simulation.NewHarness(config, logger.Level(zerolog.WarnLevel))
			if err != nil {
				logger.Panic().Err(err).Msg("invalid benchmark case")
			}

			results = append(results, BenchmarkResult{
				Window:    window,
				BatchSize: batchSize,
				Result:    harness.Run(),
			})
		}
	}

	return results
}

func getWindows() []WindowMetadata {
	return []WindowMetadata{
		{
			Type:         workday,
			OpenStart:    "9:00",
			OpenDuration: "9",
		},

		{
			Type:         extended,
			OpenStart:    "7:00am",
			OpenDuration: "14",
		},

		{
			Type:         fullDay,
			OpenStart:    "0:00",
			OpenDuration: "24",
		},
	}
}

func getBatchSizes() []int {
	return []int{5, 10, 20, 40, 80}
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := append(
		[]string{"Window", "Open Start", "Open Hours", "Batch Size", "Trials", "Duration(ms)", "Best"},
		lo.Map(model.Orderings(), func(ordering model.Ordering, _ int) string { return ordering.Code() })...,
	)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func toRecord(result BenchmarkResult) []string {
	record := []string{
		windowTypes[result.Window.Type],
		result.Window.OpenStart,
		result.Window.OpenDuration,
		fmt.Sprintf("%d", result.BatchSize),
		fmt.Sprintf("%d", result.Result.Trials),
		fmt.Sprintf("%d", result.Result.Elapsed.Milliseconds()),
		result.Result.Best().Code(),
	}
	for _, ordering := range model.Orderings() {
		record = append(record, fmt.Sprintf("%.4f", result.Result.Average(ordering)))
	}
	return record
}
