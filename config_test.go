package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "COM5", cfg.Serial.PortName)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, 100*time.Millisecond, cfg.Serial.ReadTimeout)
	assert.Equal(t, 200, cfg.Console.MaxLines)
	assert.Equal(t, 3, cfg.Console.SkipFactor)
	assert.Equal(t, "RPM:", cfg.Chart.Marker)
	assert.Equal(t, 200, cfg.Chart.MaxSamples)
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty port", func(c *Config) { c.Serial.PortName = "" }, "port name"},
		{"zero baud", func(c *Config) { c.Serial.BaudRate = 0 }, "baud rate"},
		{"zero console", func(c *Config) { c.Console.MaxLines = 0 }, "console capacity"},
		{"zero skip", func(c *Config) { c.Console.SkipFactor = 0 }, "skip factor"},
		{"empty marker", func(c *Config) { c.Chart.Marker = "" }, "marker"},
		{"zero samples", func(c *Config) { c.Chart.MaxSamples = 0 }, "sample capacity"},
		{"zero window", func(c *Config) { c.Chart.Window = 0 }, "chart window"},
		{"zero interval", func(c *Config) { c.PollInterval = 0 }, "poll interval"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
