package timeq

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Tick is a quarter of an hour counted from midnight
type Tick int

const (
	MinutesPerTick         = 15
	TicksPerHour   Tick    = 4
	TicksPerDay    Tick    = 96
	Midday         Tick    = 48
	halfDay        Tick    = 48
	hoursPerDay    float64 = 24
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

// InvalidTimeFormatError reports an expression that matches none of the accepted shapes
type InvalidTimeFormatError struct {
	Input string
}

func (err InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", err.Input)
}

func (err InvalidTimeFormatError) Is(target error) bool {
	return target == ErrInvalidTimeFormat
}

var (
	format12h   = regexp.MustCompile(`^ *(1[0-2]|0?[1-9]):([0-5]\d) *([aApP][mM]) *$`)
	format24h   = regexp.MustCompile(`^ *(2[0-3]|[0-1]?\d):([0-5]\d) *$`)
	formatHours = regexp.MustCompile(`^ *((?:2[0-4]|[0-1]?\d)(?:\.\d*)?) *$`)
)

// FromHours quantizes a decimal amount of hours, rounding any partial quarter up
func FromHours(hours float64) (Tick, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 || hours > hoursPerDay {
		return 0, InvalidTimeFormatError{Input: strconv.FormatFloat(hours, 'f', -1, 64)}
	}

	fullHours := math.Floor(hours)
	quarters := (hours - fullHours) * 60 / MinutesPerTick
	ticks := Tick(fullHours)*TicksPerHour + Tick(math.Ceil(quarters))
	if ticks > TicksPerDay {
		return 0, InvalidTimeFormatError{Input: strconv.FormatFloat(hours, 'f', -1, 64)}
	}
	return ticks, nil
}

// Parse accepts "h:mm am|pm", "H:MM" (24-hour) or bare decimal hours such as "9.5".
// The result lies in [0, TicksPerDay]; TicksPerDay itself is only meaningful as a duration.
func Parse(input string) (Tick, error) {
	if match := format12h.FindStringSubmatch(input); match != nil {
		hour, minutes := atoi(match[1]), atoi(match[2])
		dayPart := strings.ToLower(match[3])

		var offset Tick
		switch {
		case hour == 12 && dayPart == "am": // Midnight
			hour = 0
		case hour == 12: // Noon
		case dayPart == "pm":
			offset = halfDay
		}
		return clock(hour, minutes) + offset, nil
	}

	if match := format24h.FindStringSubmatch(input); match != nil {
		return clock(atoi(match[1]), atoi(match[2])), nil
	}

	if match := formatHours.FindStringSubmatch(input); match != nil {
		hours, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, InvalidTimeFormatError{Input: input}
		}
		tick, err := FromHours(hours)
		if err != nil {
			return 0, InvalidTimeFormatError{Input: input}
		}
		return tick, nil
	}

	return 0, InvalidTimeFormatError{Input: input}
}

// MustParse is Parse for trusted constants; it panics on malformed input
func MustParse(input string) Tick {
	tick, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return tick
}

// Format renders a tick as a 24-hour "HH:MM" clock
func Format(tick Tick) string {
	return fmt.Sprintf("%02d:%02d", int(tick/TicksPerHour), int(tick%TicksPerHour)*MinutesPerTick)
}

func (tick Tick) String() string {
	return Format(tick)
}

func (tick Tick) Hours() float64 {
	return float64(tick) / float64(TicksPerHour)
}

func clock(hour, minutes int) Tick {
	// Partial quarters round up: 9:10 is treated as 9:15
	quarters := (minutes + MinutesPerTick - 1) / MinutesPerTick
	return Tick(hour)*TicksPerHour + Tick(quarters)
}

// Only called on regexp-validated digits
func atoi(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		panic(fmt.Sprintf("cannot convert validated digits %q: %v", digits, err))
	}
	return value
}
