// Copyright 2025 The StriGO Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package benchchart renders StriGO's benchmark comparison charts.
//
// Both charts compare the Redis and Memcached backends side by side
// across the fixed operation vocabulary. A benchmark missing from the
// averaged results draws as a zero-height bar, never as a failure.
package benchchart

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Operations is the fixed operation vocabulary charted on the X axis.
var Operations = []string{"Consume", "Get", "Reset", "MixedOperations"}

// ThroughputOperations omits MixedOperations, whose interleaved
// workload has no single ops/second interpretation.
var ThroughputOperations = []string{"Consume", "Get", "Reset"}

var (
	redisColor     = color.NRGBA{0xE7, 0x4C, 0x3C, 0xCC}
	memcachedColor = color.NRGBA{0x34, 0x98, 0xDB, 0xCC}
)

const dpi = 300

var barWidth = vg.Points(40)

// Latency renders the grouped latency chart (microseconds per
// operation, lower is better) and writes it as a PNG to path.
// redis and memcached map benchmark names to mean ns/op.
func Latency(redis, memcached map[string]float64, path string) error {
	toMicros := func(ns float64) float64 { return ns / 1000 }
	rv := seriesValues(redis, "Redis", Operations, toMicros)
	mv := seriesValues(memcached, "Memcached", Operations, toMicros)

	p := newPlot("StriGO Performance Benchmarks\n(Lower is Better)", "Time (microseconds)")
	if err := addSeries(p, rv, mv, Operations, Microseconds); err != nil {
		return err
	}
	return savePNG(p, path)
}

// Throughput renders the grouped throughput chart (operations per
// second, higher is better) and writes it as a PNG to path.
func Throughput(redis, memcached map[string]float64, path string) error {
	rv := seriesValues(redis, "Redis", ThroughputOperations, OpsPerSecond)
	mv := seriesValues(memcached, "Memcached", ThroughputOperations, OpsPerSecond)

	p := newPlot("StriGO Throughput Benchmarks\n(Higher is Better)", "Operations per Second")
	p.Y.Tick.Marker = opsTicker{}
	if err := addSeries(p, rv, mv, ThroughputOperations, FormatOps); err != nil {
		return err
	}
	return savePNG(p, path)
}

// seriesValues looks up prefix+op in means for each operation,
// defaulting to zero for operations that were not measured.
func seriesValues(means map[string]float64, prefix string, ops []string, conv func(float64) float64) plotter.Values {
	vals := make(plotter.Values, len(ops))
	for i, op := range ops {
		if ns, ok := means[prefix+op]; ok {
			vals[i] = conv(ns)
		}
	}
	return vals
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Operations"
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)
	return p
}

// addSeries adds the Redis and Memcached bars, their value labels,
// the legend, and the nominal X axis to p.
func addSeries(p *plot.Plot, redis, memcached plotter.Values, ops []string, format Scaler) error {
	rb, err := plotter.NewBarChart(redis, barWidth)
	if err != nil {
		return err
	}
	rb.Color = redisColor
	rb.Offset = -barWidth / 2

	mb, err := plotter.NewBarChart(memcached, barWidth)
	if err != nil {
		return err
	}
	mb.Color = memcachedColor
	mb.Offset = barWidth / 2

	p.Add(rb, mb)
	p.Legend.Add("Redis", rb)
	p.Legend.Add("Memcached", mb)
	p.Legend.Top = true

	rl, err := barLabels(redis, rb.Offset, format)
	if err != nil {
		return err
	}
	ml, err := barLabels(memcached, mb.Offset, format)
	if err != nil {
		return err
	}
	if rl != nil {
		p.Add(rl)
	}
	if ml != nil {
		p.Add(ml)
	}

	p.NominalX(ops...)
	return nil
}

// barLabels annotates each nonzero bar with its formatted value.
// It returns nil when there is nothing to annotate.
func barLabels(values plotter.Values, offset vg.Length, format Scaler) (*plotter.Labels, error) {
	var xys plotter.XYs
	var strs []string
	for i, v := range values {
		if v == 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: v})
		strs = append(strs, format(v))
	}
	if len(xys) == 0 {
		return nil, nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(9)
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YBottom
	}
	l.Offset = vg.Point{X: offset, Y: vg.Points(3)}
	return l, nil
}

// opsTicker formats Y axis ticks with FormatOps so that large
// throughput values read as "12.3K" instead of raw numbers.
type opsTicker struct{}

func (opsTicker) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = FormatOps(t.Value)
	}
	return ticks
}

// savePNG writes p to path at a fixed DPI, truncating any previous
// file so reruns regenerate the same output.
func savePNG(p *plot.Plot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(12*vg.Inch, 8*vg.Inch),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
