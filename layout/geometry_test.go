package layout

import (
	"math"
	"testing"
)

func TestResolveGeometry(t *testing.T) {
	base := GeometryParams{
		Width:          400,
		Height:         300,
		Tilt:           1,
		InnerRadius:    0.5,
		LegendPosition: "ne",
		OffsetLeftAuto: true,
	}

	cases := []struct {
		name string
		edit func(p *GeometryParams)
		want Geometry
	}{
		{
			name: "no legend",
			edit: func(p *GeometryParams) {},
			want: Geometry{Top: 150, Left: 200, InnerRadius: 75, MaxRadius: 150},
		},
		{
			name: "legend east shifts left",
			edit: func(p *GeometryParams) { p.LegendWidth = 60 },
			want: Geometry{Top: 150, Left: 170, InnerRadius: 75, MaxRadius: 150},
		},
		{
			name: "legend west shifts right",
			edit: func(p *GeometryParams) { p.LegendWidth = 60; p.LegendPosition = "nw" },
			want: Geometry{Top: 150, Left: 230, InnerRadius: 75, MaxRadius: 150},
		},
		{
			name: "wide legend is clamped on canvas",
			edit: func(p *GeometryParams) { p.LegendWidth = 300 },
			want: Geometry{Top: 150, Left: 150, InnerRadius: 75, MaxRadius: 150},
		},
		{
			name: "wide west legend is clamped on canvas",
			edit: func(p *GeometryParams) { p.LegendWidth = 300; p.LegendPosition = "sw" },
			want: Geometry{Top: 150, Left: 250, InnerRadius: 75, MaxRadius: 150},
		},
		{
			name: "pixel inner radius",
			edit: func(p *GeometryParams) { p.InnerRadius = 40 },
			want: Geometry{Top: 150, Left: 200, InnerRadius: 40, MaxRadius: 150},
		},
		{
			name: "explicit offsets are not clamped",
			edit: func(p *GeometryParams) {
				p.OffsetLeftAuto = false
				p.OffsetLeft = 190
				p.OffsetTop = -10
				p.LegendWidth = 80
			},
			want: Geometry{Top: 140, Left: 390, InnerRadius: 75, MaxRadius: 150},
		},
		{
			name: "tilt stretches the height budget",
			edit: func(p *GeometryParams) { p.Tilt = 0.5; p.Width = 800 },
			want: Geometry{Top: 150, Left: 400, InnerRadius: 150, MaxRadius: 300},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.edit(&p)
			got := ResolveGeometry(p)
			if !geometryEqual(got, tc.want) {
				t.Fatalf("geometry mismatch: got=%+v want=%+v", got, tc.want)
			}
		})
	}
}

func TestMaxTextWidth(t *testing.T) {
	g := Geometry{InnerRadius: 50}
	if got := g.MaxTextWidth(); math.Abs(got-70) > 1e-9 {
		t.Fatalf("内直径 100 的 70%% 应为 70，实际 %g", got)
	}
}

func geometryEqual(a, b Geometry) bool {
	const eps = 1e-9
	return math.Abs(a.Top-b.Top) < eps &&
		math.Abs(a.Left-b.Left) < eps &&
		math.Abs(a.InnerRadius-b.InnerRadius) < eps &&
		math.Abs(a.MaxRadius-b.MaxRadius) < eps
}
