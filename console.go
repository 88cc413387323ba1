package main

import (
	"fmt"
	"time"
)

// ConsoleLine is one serial line accepted for display.
type ConsoleLine struct {
	Stamp time.Time
	Text  string
}

func (l ConsoleLine) String() string {
	return fmt.Sprintf("[%s] %s", l.Stamp.Format("15:04:05"), l.Text)
}

// Console keeps the most recent lines shown in the console pane.
type Console struct {
	lines *Ring[ConsoleLine]
}

func NewConsole(maxLines int) *Console {
	return &Console{lines: NewRing[ConsoleLine](maxLines)}
}

// Append adds a line, dropping the oldest once the console is full.
func (c *Console) Append(stamp time.Time, text string) {
	c.lines.Push(ConsoleLine{Stamp: stamp, Text: text})
}

func (c *Console) Len() int { return c.lines.Len() }

// Line returns the i-th retained line, oldest first.
func (c *Console) Line(i int) ConsoleLine { return c.lines.At(i) }

func (c *Console) Lines() []ConsoleLine { return c.lines.Items() }
