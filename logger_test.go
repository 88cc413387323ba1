package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_WritesTextLines(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf)

	log.WithField("component", "serial").Info("serial connection established")
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `msg="serial connection established"`)
	assert.Contains(t, out, "component=serial")
	assert.NotContains(t, out, "hidden")
}
