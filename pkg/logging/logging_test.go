package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupWithWriterLevels(t *testing.T) {
	scenarios := map[string]zerolog.Level{
		"development": zerolog.DebugLevel,
		"production":  zerolog.InfoLevel,
		"":            zerolog.InfoLevel,
		"quiet":       zerolog.WarnLevel,
	}

	for environment, level := range scenarios {
		logger := SetupWithWriter(environment, &bytes.Buffer{})
		assert.Equal(t, level, logger.GetLevel(), environment)
	}
}

func TestSetupWithWriterWritesJSON(t *testing.T) {
	var buffer bytes.Buffer
	logger := SetupWithWriter("development", &buffer)

	logger.Debug().Int("trials", 3).Msg("simulation started")

	assert.Contains(t, buffer.String(), `"trials":3`)
	assert.Contains(t, buffer.String(), `"message":"simulation started"`)
}
