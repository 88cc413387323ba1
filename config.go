package main

import (
	"errors"
	"fmt"
	"time"
)

const appID = "com.pintaditos.paint-mixer-console"
const windowTitle = "Pintaditos S.A. - ESP32 Console"

// SerialConfig describes the fixed serial link to the mixer's board.
type SerialConfig struct {
	PortName    string
	BaudRate    int
	ReadTimeout time.Duration
	// SettleDelay is how long to wait after opening the port. The ESP32
	// resets when DTR toggles on open and prints boot noise meanwhile.
	SettleDelay time.Duration
}

// ConsoleConfig controls how serial lines reach the console pane.
type ConsoleConfig struct {
	MaxLines   int
	SkipFactor int // show 1 of every SkipFactor lines
}

// ChartConfig controls the rolling RPM plot.
type ChartConfig struct {
	Marker     string
	MaxSamples int
	Window     float64 // seconds of history kept in view
	Lookahead  float64 // seconds of empty space right of the newest sample
	YFloor     float64
	YMargin    float64
}

// Config is the complete application configuration. There is no config
// file; DefaultConfig is the only source.
type Config struct {
	Serial       SerialConfig
	Console      ConsoleConfig
	Chart        ChartConfig
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Serial: SerialConfig{
			PortName:    "COM5",
			BaudRate:    115200,
			ReadTimeout: 100 * time.Millisecond,
			SettleDelay: 2 * time.Second,
		},
		Console: ConsoleConfig{
			MaxLines:   200,
			SkipFactor: 3,
		},
		Chart: ChartConfig{
			Marker:     "RPM:",
			MaxSamples: 200,
			Window:     30,
			Lookahead:  2,
			YFloor:     3500,
			YMargin:    100,
		},
		PollInterval: 50 * time.Millisecond,
	}
}

// Validate reports the first setting that would break the poll loop.
func (c Config) Validate() error {
	if c.Serial.PortName == "" {
		return errors.New("serial port name is empty")
	}
	if c.Serial.BaudRate <= 0 {
		return fmt.Errorf("invalid baud rate: %d", c.Serial.BaudRate)
	}
	if c.Console.MaxLines <= 0 {
		return fmt.Errorf("invalid console capacity: %d", c.Console.MaxLines)
	}
	if c.Console.SkipFactor <= 0 {
		return fmt.Errorf("invalid skip factor: %d", c.Console.SkipFactor)
	}
	if c.Chart.Marker == "" {
		return errors.New("metric marker is empty")
	}
	if c.Chart.MaxSamples <= 0 {
		return fmt.Errorf("invalid sample capacity: %d", c.Chart.MaxSamples)
	}
	if c.Chart.Window <= 0 || c.Chart.Lookahead < 0 {
		return fmt.Errorf("invalid chart window: %.1fs + %.1fs", c.Chart.Window, c.Chart.Lookahead)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("invalid poll interval: %s", c.PollInterval)
	}
	return nil
}
