package layout

// Measurer 负责测量给定字体下一段文字的像素宽度。
type Measurer interface {
	MeasureText(text string, font Font) (float64, error)
}

// Surface 是内圈文字绘制所需的最小画布能力，由宿主图表在绘制阶段提供。
// 坐标单位为 px，原点在左上角。
type Surface interface {
	Measurer
	FillColor() Color
	SetFillColor(c Color)
	SetTextBaseline(b Baseline)
	FillText(text string, font Font, x, y float64) error
}
