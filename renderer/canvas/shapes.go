package canvasrenderer

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"go.uber.org/zap"

	"github.com/ByLCY/doughnut/chart"
	"github.com/ByLCY/doughnut/layout"
)

// 默认序列配色，按序列下标循环使用。
var palette = []layout.Color{
	{R: 0xed, G: 0xc2, B: 0x40},
	{R: 0xaf, G: 0xd8, B: 0xf8},
	{R: 0xcb, G: 0x4b, B: 0x4b},
	{R: 0x4d, G: 0xa7, B: 0x4d},
	{R: 0x94, G: 0x40, B: 0xed},
}

// 图例尺寸（px）。
const (
	legendMargin    = 5.0
	legendPadding   = 4.0
	legendRowHeight = 18.0
	legendSwatchW   = 14.0
	legendSwatchH   = 10.0
	legendGap       = 6.0
	legendFontSize  = 12.0
	sliceStroke     = 1.0
	arcStep         = math.Pi / 90
)

func seriesColor(i int, s chart.Series) layout.Color {
	if s.Color != "" {
		if c, err := chart.ParseColor(s.Color); err == nil {
			return c
		}
	}
	return palette[i%len(palette)]
}

// drawLegend 在 legend.position 指定的角落绘制色块与标签，并把图例宽度回填给图表。
func (r *Renderer) drawLegend(ctx *canvas.Context, p *chart.Plot, fill layout.Color) error {
	opts := p.Options()
	data := p.Data()
	if !opts.Legend.Show || len(data) == 0 {
		p.SetLegendWidth(0)
		return nil
	}

	font := layout.Font{Size: legendFontSize}
	labelWidth := 0.0
	for _, s := range data {
		w, err := r.MeasureText(s.Label, font)
		if err != nil {
			return errors.Wrap(err, "测量图例文字失败")
		}
		labelWidth = math.Max(labelWidth, w)
	}
	boxW := legendPadding*2 + legendSwatchW + legendGap + labelWidth
	boxH := legendPadding*2 + legendRowHeight*float64(len(data))
	p.SetLegendWidth(boxW)

	pos := opts.Legend.Position
	x := p.Width() - legendMargin - boxW
	if strings.Contains(pos, "w") {
		x = legendMargin
	}
	y := legendMargin
	if strings.Contains(pos, "s") {
		y = p.Height() - legendMargin - boxH
	}

	face, err := r.fontFace(font, fill)
	if err != nil {
		return err
	}
	ascent := face.Metrics().Ascent
	for i, s := range data {
		rowTop := y + legendPadding + legendRowHeight*float64(i)
		swatchTop := rowTop + (legendRowHeight-legendSwatchH)/2

		ctx.SetFillColor(colorFromLayout(seriesColor(i, s)))
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(layout.ToMM(x+legendPadding), layout.ToMM(swatchTop),
			canvas.Rectangle(layout.ToMM(legendSwatchW), layout.ToMM(legendSwatchH)))

		textTop := rowTop + (legendRowHeight-legendFontSize)/2
		line := canvas.NewTextLine(face, s.Label, canvas.Left)
		ctx.DrawText(layout.ToMM(x+legendPadding+legendSwatchW+legendGap), layout.ToMM(textTop)+ascent, line)
	}
	return nil
}

// drawRing 以折线近似绘制各扇区；内半径大于 0 时为圆环。扇区从正上方开始顺时针排列。
func (r *Renderer) drawRing(ctx *canvas.Context, p *chart.Plot) {
	values := p.Values()
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		r.logger.Debug("序列合计为 0，跳过扇区绘制")
		return
	}

	g := p.Geometry()
	tilt := p.Options().Series.Pie.Tilt
	data := p.Data()

	ctx.SetStrokeColor(canvas.White)
	ctx.SetStrokeWidth(layout.ToMM(sliceStroke))
	angle := -math.Pi / 2
	for i, v := range values {
		if v <= 0 {
			continue
		}
		sweep := 2 * math.Pi * v / total
		ctx.SetFillColor(colorFromLayout(seriesColor(i, data[i])))
		ctx.DrawPath(0, 0, slicePath(g, tilt, angle, angle+sweep))
		angle += sweep
	}
	r.logger.Debug("圆环绘制完成",
		zap.Float64("top", g.Top),
		zap.Float64("left", g.Left),
		zap.Float64("innerRadius", g.InnerRadius),
		zap.Float64("maxRadius", g.MaxRadius),
	)
}

// slicePath 返回 [from, to] 弧段对应的闭合路径（mm）。
func slicePath(g layout.Geometry, tilt, from, to float64) *canvas.Path {
	steps := int(math.Ceil((to - from) / arcStep))
	if steps < 1 {
		steps = 1
	}
	point := func(radius, a float64) (float64, float64) {
		return layout.ToMM(g.Left + radius*math.Cos(a)), layout.ToMM(g.Top + radius*math.Sin(a)*tilt)
	}

	path := &canvas.Path{}
	path.MoveTo(point(g.MaxRadius, from))
	for i := 1; i <= steps; i++ {
		path.LineTo(point(g.MaxRadius, from+(to-from)*float64(i)/float64(steps)))
	}
	if g.InnerRadius > 0 {
		for i := steps; i >= 0; i-- {
			path.LineTo(point(g.InnerRadius, from+(to-from)*float64(i)/float64(steps)))
		}
	} else {
		path.LineTo(layout.ToMM(g.Left), layout.ToMM(g.Top))
	}
	path.Close()
	return path
}
