package main

import "math"

// Sample is one RPM reading placed on the time axis.
type Sample struct {
	Elapsed float64 // seconds since start
	Value   float64
}

// ChartView is everything needed to draw one frame of the RPM chart.
type ChartView struct {
	XMin, XMax float64
	YMin, YMax float64
	Samples    []Sample
}

// SampleHistory is the rolling buffer behind the chart.
type SampleHistory struct {
	cfg     ChartConfig
	samples *Ring[Sample]
}

func NewSampleHistory(cfg ChartConfig) *SampleHistory {
	return &SampleHistory{cfg: cfg, samples: NewRing[Sample](cfg.MaxSamples)}
}

func (h *SampleHistory) Len() int { return h.samples.Len() }

// Add records value at elapsed seconds and returns the view anchored on it.
func (h *SampleHistory) Add(elapsed, value float64) ChartView {
	h.samples.Push(Sample{Elapsed: elapsed, Value: value})
	return h.View(elapsed)
}

// View computes axis bounds for the current buffer. The x-axis trails the
// newest sample by Window seconds (never below zero) and leads it by
// Lookahead; the y-axis starts at zero and grows past YFloor only when a
// sample plus YMargin needs the room.
func (h *SampleHistory) View(elapsed float64) ChartView {
	samples := h.samples.Items()

	peak := math.Inf(-1)
	for _, s := range samples {
		peak = math.Max(peak, s.Value)
	}

	return ChartView{
		XMin:    math.Max(0, elapsed-h.cfg.Window),
		XMax:    elapsed + h.cfg.Lookahead,
		YMin:    0,
		YMax:    math.Max(h.cfg.YFloor, peak+h.cfg.YMargin),
		Samples: samples,
	}
}
