package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	chartTitle = "RPM vs Time"
	xAxisName  = "Time (s)"
	yAxisName  = "RPM"

	placeholderText = "Waiting for RPM data..."

	minChartWidth  = 480
	minChartHeight = 360
)

var (
	rpmLineColor = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	// 30% black, drawn over white.
	gridColor = drawing.Color{R: 0, G: 0, B: 0, A: 77}
)

// renderChart draws view into an image of the given size. The error is the
// go-chart render or decode failure; callers fall back to a blank frame.
func renderChart(view ChartView, w, h int) (image.Image, error) {
	w, h = clampChartSize(w, h)

	xs := make([]float64, len(view.Samples))
	ys := make([]float64, len(view.Samples))
	for i, s := range view.Samples {
		xs[i] = s.Elapsed
		ys[i] = s.Value
	}
	// A single point has no segment to stroke; draw it as a flat stub.
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	ch := chart.Chart{
		Title:      chartTitle,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           xAxisName,
			Range:          &chart.ContinuousRange{Min: view.XMin, Max: view.XMax},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			Range:          &chart.ContinuousRange{Min: view.YMin, Max: view.YMax},
			GridMajorStyle: grid,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yAxisName,
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: rpmLineColor, StrokeWidth: 2},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func clampChartSize(w, h int) (int, int) {
	if w < minChartWidth {
		w = minChartWidth
	}
	if h < minChartHeight {
		h = minChartHeight
	}
	return w, h
}

// blank returns a plain white frame.
func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// placeholder is shown in the chart pane until the first reading arrives.
func placeholder(w, h int) image.Image {
	w, h = clampChartSize(w, h)
	img := blank(w, h)

	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 96, G: 96, B: 96, A: 255}),
		Face: face,
	}
	tw := dr.MeasureString(placeholderText).Ceil()
	dr.Dot = fixed.Point26_6{X: fixed.I((w - tw) / 2), Y: fixed.I(h / 2)}
	dr.DrawString(placeholderText)
	return img
}
