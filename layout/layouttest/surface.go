// Package layouttest 提供测试用的确定性画布：字宽按固定比例计算，并记录每次绘制。
package layouttest

import (
	"unicode/utf8"

	"github.com/ByLCY/doughnut/layout"
)

// 每个字符的前进宽度与字号之比。
const (
	RegularAdvance = 0.5
	BoldAdvance    = 0.6
)

// Call 记录一次 FillText 调用。
type Call struct {
	Text     string
	Font     layout.Font
	X, Y     float64
	Color    layout.Color
	Baseline layout.Baseline
}

// Surface 实现 layout.Surface，不做真实绘制。
type Surface struct {
	Fill     layout.Color
	Baseline layout.Baseline
	Calls    []Call
	Measured int
	// Err 非空时所有测量与绘制都返回该错误。
	Err error
}

var _ layout.Surface = (*Surface)(nil)

// New 返回填充色为 fill 的测试画布。
func New(fill layout.Color) *Surface {
	return &Surface{Fill: fill}
}

// Width 返回 text 在 font 下的宽度，与 MeasureText 的结果一致。
func Width(text string, font layout.Font) float64 {
	advance := RegularAdvance
	if font.Bold {
		advance = BoldAdvance
	}
	return float64(utf8.RuneCountInString(text)) * font.Size * advance
}

func (s *Surface) MeasureText(text string, font layout.Font) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Measured++
	return Width(text, font), nil
}

func (s *Surface) FillColor() layout.Color { return s.Fill }

func (s *Surface) SetFillColor(c layout.Color) { s.Fill = c }

func (s *Surface) SetTextBaseline(b layout.Baseline) { s.Baseline = b }

func (s *Surface) FillText(text string, font layout.Font, x, y float64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Calls = append(s.Calls, Call{
		Text:     text,
		Font:     font,
		X:        x,
		Y:        y,
		Color:    s.Fill,
		Baseline: s.Baseline,
	})
	return nil
}
