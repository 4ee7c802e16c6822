package canvasrenderer

import (
	"bytes"
	"math"
	"testing"

	"github.com/ByLCY/doughnut/chart"
	"github.com/ByLCY/doughnut/doughnut"
	"github.com/ByLCY/doughnut/fonts"
	"github.com/ByLCY/doughnut/layout"
)

func TestMeasureTextBoldIsWider(t *testing.T) {
	r := NewRenderer()

	regular, err := r.MeasureText("$1,234.50", layout.Font{Size: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bold, err := r.MeasureText("$1,234.50", layout.Font{Size: 24, Bold: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if regular <= 0 {
		t.Fatalf("expected positive width, got %g", regular)
	}
	if bold <= regular {
		t.Fatalf("bold width %g should exceed regular width %g", bold, regular)
	}
}

// 宽度应与字号成正比：字号翻倍，宽度翻倍。
func TestMeasureTextScalesWithSize(t *testing.T) {
	r := NewRenderer()
	small, err := r.MeasureText("Total", layout.Font{Size: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, err := r.MeasureText("Total", layout.Font{Size: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(large-2*small) > 1e-3 {
		t.Fatalf("expected %g to be twice %g", large, small)
	}
}

func TestMeasureTextZeroSize(t *testing.T) {
	r := NewRenderer()
	w, err := r.MeasureText("anything", layout.Font{Size: 0, Bold: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 0 {
		t.Fatalf("size 0 should measure 0, got %g", w)
	}
}

func TestInjectedFontResource(t *testing.T) {
	bold, err := fonts.Load(fonts.Bold)
	if err != nil {
		t.Fatalf("load builtin font: %v", err)
	}
	// 用粗体替换常规字体后，两种字重的测量结果一致
	r := NewRendererWithOptions(Options{Fonts: map[string]Resource{
		fonts.Regular: {Bytes: bold},
		fonts.Bold:    {Path: "does-not-exist.ttf"},
	}})
	regular, err := r.MeasureText("Total", layout.Font{Size: 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boldW, err := r.MeasureText("Total", layout.Font{Size: 18, Bold: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(regular-boldW) > 1e-9 {
		t.Fatalf("expected equal widths, got %g and %g", regular, boldW)
	}
}

func TestRenderProducesPDF(t *testing.T) {
	var planned *layout.Plan
	plugin := doughnut.Plugin(doughnut.WithPlanObserver(func(p *layout.Plan) { planned = p }))
	opts := chart.DefaultOptions(plugin)
	opts.Series.Pie.InnerRadius = 0.5
	opts.Series.Pie.InnerText.Show = true
	opts.Series.Pie.InnerText.ValueFormat = layout.FormatCurrency

	p, err := chart.New(chart.Config{
		Width:   400,
		Height:  300,
		Options: opts,
		Series: []chart.Series{
			{Label: "Apples", Value: 120, Color: "#4da74d"},
			{Label: "Pears", Value: 80},
			{Label: "Plums", Value: 300},
		},
	}, plugin)
	if err != nil {
		t.Fatalf("new plot: %v", err)
	}

	out, err := NewRenderer().Render(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", out[:min(len(out), 8)])
	}
	if p.LegendWidth() <= 0 {
		t.Fatalf("legend width should be recorded, got %g", p.LegendWidth())
	}
	if planned == nil {
		t.Fatalf("inner text hook did not run")
	}
	primary, ok := planned.Line(layout.RolePrimary)
	if !ok || primary.Text != "$500.00" {
		t.Fatalf("unexpected primary line: %+v", primary)
	}
	for _, ln := range planned.Lines {
		if ln.Width >= planned.MaxWidth {
			t.Fatalf("line %q width %g exceeds budget %g", ln.Text, ln.Width, planned.MaxWidth)
		}
	}
	// 图例在东北角，圆心向左让出一半图例宽度
	if got, want := planned.Geometry.Left, math.Max(200-p.LegendWidth()/2, 150); math.Abs(got-want) > 1e-9 {
		t.Fatalf("center left = %g, want %g", got, want)
	}
}

func TestRenderRejectsBadFontColor(t *testing.T) {
	opts := chart.DefaultOptions()
	opts.Font.Color = "grey"
	p, err := chart.New(chart.Config{Width: 100, Height: 100, Options: opts})
	if err != nil {
		t.Fatalf("new plot: %v", err)
	}
	if _, err := NewRenderer().Render(p); err == nil {
		t.Fatalf("expected error for invalid font color")
	}
	if _, err := NewRenderer().Render(nil); err == nil {
		t.Fatalf("expected error for nil plot")
	}
}

func TestSlicePath(t *testing.T) {
	g := layout.Geometry{Top: 150, Left: 200, InnerRadius: 50, MaxRadius: 100}
	if slicePath(g, 1, -math.Pi/2, 0).Empty() {
		t.Fatalf("expected non-empty ring path")
	}
	g.InnerRadius = 0
	if slicePath(g, 0.5, 0, 1e-6).Empty() {
		t.Fatalf("expected non-empty wedge path for a tiny slice")
	}
}
