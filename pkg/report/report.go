package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/limaJavier/meetingscheduling/pkg/model"
	"github.com/limaJavier/meetingscheduling/pkg/simulation"
	"github.com/samber/lo"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	CSV  Format = "csv"
)

var validFormats = []Format{Text, JSON, CSV}

func ParseFormat(format string) (Format, error) {
	parsed := Format(strings.ToLower(format))
	if !lo.Contains(validFormats, parsed) {
		return "", fmt.Errorf("%v is not a valid format, allowed values are: %v", format, validFormats)
	}
	return parsed, nil
}

// OrderingRow is the per-ordering section of a report
type OrderingRow struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Total   int     `json:"total"`
	Minimum int     `json:"minimum"`
	Maximum int     `json:"maximum"`
}

type Summary struct {
	Seed               uint64        `json:"seed"`
	Trials             int           `json:"trials"`
	BatchSize          int           `json:"batchSize"`
	OpenStart          string        `json:"openStart"`
	OpenHours          string        `json:"openHours"`
	Orderings          []OrderingRow `json:"orderings"`
	Best               string        `json:"best"`
	StartsBeforeMidday int           `json:"startsBeforeMidday"`
	StartsAfterMidday  int           `json:"startsAfterMidday"`
	MeanDurationHours  float64       `json:"meanDurationHours"`
	ElapsedMs          int64         `json:"elapsedMs"`
}

func Summarize(result simulation.Result) Summary {
	return Summary{
		Seed:      result.Seed,
		Trials:    result.Trials,
		BatchSize: result.BatchSize,
		OpenStart: result.OpenStart,
		OpenHours: result.OpenHours,
		Orderings: lo.Map(model.Orderings(), func(ordering model.Ordering, _ int) OrderingRow {
			return OrderingRow{
				Code:    ordering.Code(),
				Name:    ordering.String(),
				Average: result.Average(ordering),
				Total:   result.Totals[ordering],
				Minimum: result.Minimums[ordering],
				Maximum: result.Maximums[ordering],
			}
		}),
		Best:               result.Best().Code(),
		StartsBeforeMidday: result.StartsBeforeMidday,
		StartsAfterMidday:  result.StartsAfterMidday,
		MeanDurationHours:  result.MeanDurationHours(),
		ElapsedMs:          result.Elapsed.Milliseconds(),
	}
}

func Write(w io.Writer, format Format, result simulation.Result) error {
	switch format {
	case JSON:
		return WriteJSON(w, result)
	case CSV:
		return WriteCSV(w, result)
	default:
		return WriteText(w, result)
	}
}

func WriteText(w io.Writer, result simulation.Result) error {
	summary := Summarize(result)
	var builder strings.Builder

	builder.WriteString("Average number of meetings scheduled per scheduling algorithm:\n")
	for _, row := range summary.Orderings {
		fmt.Fprintf(&builder, "  %-34s: %.4f\n", row.Name, row.Average)
	}

	builder.WriteString("\nStats:\n")
	fmt.Fprintf(&builder, "  starts before 12       : %d\n", summary.StartsBeforeMidday)
	fmt.Fprintf(&builder, "  starts at or after 12  : %d\n", summary.StartsAfterMidday)
	fmt.Fprintf(&builder, "  avg dur (hours)        : %.4f\n", summary.MeanDurationHours)
	fmt.Fprintf(&builder, "  time taken             : %dms\n", summary.ElapsedMs)
	fmt.Fprintf(&builder, "  seed                   : %d\n", summary.Seed)

	builder.WriteString("\nTotal meetings scheduled per scheduling algorithm:\n")
	for _, row := range summary.Orderings {
		fmt.Fprintf(&builder, "  %v count : %d (min %d, max %d)\n", row.Code, row.Total, row.Minimum, row.Maximum)
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func WriteJSON(w io.Writer, result simulation.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Summarize(result))
}

// WriteCSV emits one record per ordering
func WriteCSV(w io.Writer, result simulation.Result) error {
	summary := Summarize(result)
	writer := csv.NewWriter(w)

	header := []string{"Ordering", "Name", "Average", "Total", "Minimum", "Maximum", "Trials", "BatchSize", "Seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, row := range summary.Orderings {
		record := []string{
			row.Code,
			row.Name,
			fmt.Sprintf("%f", row.Average),
			fmt.Sprintf("%d", row.Total),
			fmt.Sprintf("%d", row.Minimum),
			fmt.Sprintf("%d", row.Maximum),
			fmt.Sprintf("%d", summary.Trials),
			fmt.Sprintf("%d", summary.BatchSize),
			fmt.Sprintf("%d", summary.Seed),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
