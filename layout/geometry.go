package layout

import (
	"math"
	"strings"
)

// GeometryParams 汇总推导圆环几何所需的宿主信息（单位均为 px）。
type GeometryParams struct {
	Width          float64
	Height         float64
	LegendWidth    float64 // 无图例时为 0
	LegendPosition string  // ne/nw/se/sw
	Tilt           float64
	InnerRadius    float64 // <= 1 时为相对最大半径的比例，> 1 时为像素值
	OffsetTop      float64
	OffsetLeft     float64
	OffsetLeftAuto bool
}

// ResolveGeometry 计算圆环中心与内半径，是输入的纯函数。
func ResolveGeometry(p GeometryParams) Geometry {
	maxRadius := math.Min(p.Width, p.Height/p.Tilt) / 2
	top := p.Height/2 + p.OffsetTop
	left := p.Width / 2

	inner := maxRadius * p.InnerRadius
	if p.InnerRadius > 1 {
		inner = p.InnerRadius
	}

	if p.OffsetLeftAuto {
		// 圆心朝图例的反方向让出图例宽度的一半
		if strings.Contains(p.LegendPosition, "w") {
			left += p.LegendWidth / 2
		} else {
			left -= p.LegendWidth / 2
		}
		if left < maxRadius {
			left = maxRadius
		} else if left > p.Width-maxRadius {
			left = p.Width - maxRadius
		}
	} else {
		left += p.OffsetLeft
	}

	return Geometry{
		Top:         top,
		Left:        left,
		InnerRadius: inner,
		MaxRadius:   maxRadius,
	}
}

// MaxTextWidth 返回内圈文字允许的最大宽度：内直径的 70%。
func (g Geometry) MaxTextWidth() float64 {
	return g.InnerRadius * 2 * maxWidthRatio
}

const maxWidthRatio = 0.7
