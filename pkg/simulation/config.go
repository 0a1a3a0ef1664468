package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/meetingscheduling/pkg/timeq"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Trials        int    `mapstructure:"trials"`
	BatchSize     int    `mapstructure:"batchSize"`
	OpenStart     string `mapstructure:"openStart"`    // Any expression accepted by timeq.Parse, e.g. "9:00am"
	OpenDuration  string `mapstructure:"openDuration"` // Hours, e.g. "9" or "8.5"
	Seed          uint64 `mapstructure:"seed"`         // 0 seeds from the wall clock
	ProgressEvery int    `mapstructure:"progressEvery"`
}

func NewDefaultConfig() Config {
	return Config{
		Trials:        50000,
		BatchSize:     20,
		OpenStart:     "9:00",
		OpenDuration:  "9",
		Seed:          0,
		ProgressEvery: 10000,
	}
}

// ConfigFromFile overlays a JSON or YAML file on top of the defaults
func ConfigFromFile(file string) (Config, error) {
	config := NewDefaultConfig()

	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %w", file, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true, // Lets "openDuration: 9" decode into a string
		ErrorUnused:      true,
		Result:           &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file %v: %w", file, err)
	}

	return config, config.Validate()
}

// Window resolves the room's operating window into ticks
func (config Config) Window() (start, duration timeq.Tick, err error) {
	start, err = timeq.Parse(config.OpenStart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid open start: %w", err)
	}
	duration, err = timeq.Parse(config.OpenDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid open duration: %w", err)
	}
	if start+duration > timeq.TicksPerDay {
		return 0, 0, fmt.Errorf("room window %v + %vh exceeds one day", config.OpenStart, config.OpenDuration)
	}
	return start, duration, nil
}

func (config Config) Validate() error {
	if config.Trials <= 0 {
		return fmt.Errorf("trials must be greater than 0: %v", config.Trials)
	} else if config.BatchSize <= 0 {
		return fmt.Errorf("batch size must be greater than 0: %v", config.BatchSize)
	} else if config.ProgressEvery < 0 {
		return fmt.Errorf("progress interval cannot be negative: %v", config.ProgressEvery)
	}
	_, _, err := config.Window()
	return err
}
