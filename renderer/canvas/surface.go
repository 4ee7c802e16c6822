package canvasrenderer

import (
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/doughnut/layout"
)

// surface 把 layout 的 px 坐标绘制到 canvas 上下文（mm）。
type surface struct {
	r        *Renderer
	ctx      *canvas.Context
	fill     layout.Color
	baseline layout.Baseline
}

var _ layout.Surface = (*surface)(nil)

func (s *surface) MeasureText(text string, font layout.Font) (float64, error) {
	return s.r.MeasureText(text, font)
}

func (s *surface) FillColor() layout.Color { return s.fill }

func (s *surface) SetFillColor(c layout.Color) { s.fill = c }

func (s *surface) SetTextBaseline(b layout.Baseline) { s.baseline = b }

// FillText 在 (x, y) 处绘制文字，y 的含义取决于当前基线：top 为字形顶部，middle 为字形中线。
func (s *surface) FillText(text string, font layout.Font, x, y float64) error {
	if font.Size <= 0 || text == "" {
		return nil
	}
	face, err := s.r.fontFace(font, s.fill)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	baseline := layout.ToMM(y) + metrics.Ascent
	if s.baseline == layout.BaselineMiddle {
		baseline = layout.ToMM(y) + (metrics.Ascent-metrics.Descent)/2
	}
	s.ctx.DrawText(layout.ToMM(x), baseline, canvas.NewTextLine(face, text, canvas.Left))
	return nil
}
