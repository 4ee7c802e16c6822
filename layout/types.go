package layout

import "fmt"

// 该文件定义内圈文字布局的结果类型，供布局计算、绘制与调试 JSON 共用。

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// SecondaryColor 是上下说明文字使用的灰色（#666666）。
var SecondaryColor = Color{R: 0x66, G: 0x66, B: 0x66}

// Font 描述一行文字使用的字号（px）与字重。字体族固定为无衬线字体。
type Font struct {
	Size float64 `json:"size"`
	Bold bool    `json:"bold"`
}

// String 返回 CSS 风格的字体描述，例如 "bold 48px sans-serif"。
func (f Font) String() string {
	if f.Bold {
		return fmt.Sprintf("bold %gpx sans-serif", f.Size)
	}
	return fmt.Sprintf("%gpx sans-serif", f.Size)
}

// Baseline 对应文字绘制时 y 坐标所指的位置。
type Baseline string

const (
	BaselineTop    Baseline = "top"
	BaselineMiddle Baseline = "middle"
)

// Role 标识一行文字在内圈文字块中的角色。
type Role string

const (
	RolePrimary Role = "value"
	RolePre     Role = "pre"
	RolePost    Role = "post"
)

// Geometry 是圆环中心与内半径（px），每次绘制时重新推导，不做缓存。
type Geometry struct {
	Top         float64 `json:"top"`
	Left        float64 `json:"left"`
	InnerRadius float64 `json:"innerRadius"`
	MaxRadius   float64 `json:"maxRadius"`
}

// TextLine 是一行已确定字号与位置的文字。
// Height 取字形 "m" 的前进宽度，是对行高的近似。说明行的 Height 与 Offset 来自排布阶段的测量，
// Font、Width 与 X 来自实际绘制时的字号。
type TextLine struct {
	Role      Role    `json:"role"`
	Text      string  `json:"text"`
	Font      Font    `json:"font"`
	FontIndex int     `json:"fontIndex"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Offset    float64 `json:"offset"` // 相对圆心向上的偏移，负值表示在圆心下方
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// InnerText 是一次布局所需的文字输入。
type InnerText struct {
	Value       string `json:"value"`
	PreText     string `json:"preText"`
	PostText    string `json:"postText"`
	MaxFontSize int    `json:"maxFontSize"`
}

// Plan 保存一次绘制的完整布局结果。
type Plan struct {
	Geometry Geometry   `json:"geometry"`
	MaxWidth float64    `json:"maxWidth"`
	Baseline Baseline   `json:"baseline"`
	Lines    []TextLine `json:"lines"`
}

// Line 返回指定角色的行；不存在时 ok 为 false。
func (p *Plan) Line(role Role) (TextLine, bool) {
	if p == nil {
		return TextLine{}, false
	}
	for _, ln := range p.Lines {
		if ln.Role == role {
			return ln, true
		}
	}
	return TextLine{}, false
}
