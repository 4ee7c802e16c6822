package layout

// 布局统一使用 CSS 像素（96dpi）；canvas 后端以毫米为画布单位、以 pt 为字号单位，
// 这里给出边界换算。

// Conversion constants between px, mm and pt.
const (
	PxToMm = 25.4 / 96
	MmToPx = 1.0 / PxToMm
	PxToPt = 0.75
	PtToPx = 1.0 / PxToPt
)

// ToMM 将像素转换为毫米。
func ToMM(px float64) float64 { return px * PxToMm }

// FromMM 将毫米转换为像素。
func FromMM(mm float64) float64 { return mm * MmToPx }

// ToPT 将像素字号转换为 pt。
func ToPT(px float64) float64 { return px * PxToPt }
