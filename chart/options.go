package chart

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/doughnut/layout"
)

// Options 是图表的配置树。插件只读取它，不做修改。
type Options struct {
	Series SeriesOptions `yaml:"series" json:"series"`
	Legend LegendOptions `yaml:"legend" json:"legend"`
	Font   FontOptions   `yaml:"font" json:"font"`
}

// SeriesOptions 对应 series.* 配置。
type SeriesOptions struct {
	Pie PieOptions `yaml:"pie" json:"pie"`
}

// PieOptions 描述饼图/圆环几何。
type PieOptions struct {
	Show        bool             `yaml:"show" json:"show"`
	InnerRadius float64          `yaml:"innerRadius" json:"innerRadius"` // <= 1 为比例，> 1 为像素
	Tilt        float64          `yaml:"tilt" json:"tilt"`
	Offset      OffsetOptions    `yaml:"offset" json:"offset"`
	InnerText   InnerTextOptions `yaml:"innerText" json:"innerText"`
}

// OffsetOptions 是圆心相对画布中心的偏移；Left 可以为 auto。
type OffsetOptions struct {
	Top  float64   `yaml:"top" json:"top"`
	Left AutoValue `yaml:"left" json:"left"`
}

// InnerTextOptions 是圆环内圈文字的配置，默认值由插件提供。
type InnerTextOptions struct {
	Show          bool               `yaml:"show" json:"show"`
	Value         string             `yaml:"value" json:"value"` // "auto" 或字面文本
	ValueFormat   layout.ValueFormat `yaml:"valueFormat" json:"valueFormat"`
	ValueDecimals int                `yaml:"valueDecimals" json:"valueDecimals"` // -1 表示不限制
	PreValueText  string             `yaml:"preValueText" json:"preValueText"`
	PostValueText string             `yaml:"postValueText" json:"postValueText"`
	MaxFontSize   int                `yaml:"maxFontSize" json:"maxFontSize"` // 字号阶梯下标上限
}

// LegendOptions 描述图例。Position 取 ne/nw/se/sw。
type LegendOptions struct {
	Show     bool   `yaml:"show" json:"show"`
	Position string `yaml:"position" json:"position"`
}

// FontOptions 描述宿主的默认文字样式。
type FontOptions struct {
	Color string `yaml:"color" json:"color"`
}

// AutoValue 是可以写成 "auto" 的数值。
type AutoValue struct {
	Auto  bool
	Value float64
}

// Auto 返回取值为 auto 的 AutoValue。
func Auto() AutoValue { return AutoValue{Auto: true} }

// Fixed 返回固定数值。
func Fixed(v float64) AutoValue { return AutoValue{Value: v} }

// ParseAutoValue 解析 "auto" 或十进制数值（允许 px 后缀）。
func ParseAutoValue(s string) (AutoValue, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return Auto(), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return AutoValue{}, errors.Errorf("无法解析 %q：应为 auto 或数值", s)
	}
	return Fixed(f), nil
}

func (a AutoValue) String() string {
	if a.Auto {
		return "auto"
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// UnmarshalYAML 接受 auto 或数值标量。
func (a *AutoValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Errorf("第 %d 行：offset 只能是 auto 或数值", node.Line)
	}
	v, err := ParseAutoValue(node.Value)
	if err != nil {
		return errors.Wrapf(err, "第 %d 行", node.Line)
	}
	*a = v
	return nil
}

// MarshalText 让调试 JSON 中的 AutoValue 显示为 "auto" 或数值文本。
func (a AutoValue) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// DefaultOptions 返回宿主默认配置，并依次叠加各插件的默认值。
func DefaultOptions(plugins ...Plugin) Options {
	opts := Options{
		Series: SeriesOptions{
			Pie: PieOptions{
				Show:        true,
				InnerRadius: 0,
				Tilt:        1,
				Offset:      OffsetOptions{Top: 0, Left: Auto()},
			},
		},
		Legend: LegendOptions{Show: true, Position: "ne"},
		Font:   FontOptions{Color: "#545454"},
	}
	for _, p := range plugins {
		if p.Defaults != nil {
			p.Defaults(&opts)
		}
	}
	return opts
}

// GeometryParams 将配置与画布尺寸整理为几何推导所需的参数。
func (o Options) GeometryParams(width, height, legendWidth float64) layout.GeometryParams {
	pie := o.Series.Pie
	if !o.Legend.Show {
		legendWidth = 0
	}
	return layout.GeometryParams{
		Width:          width,
		Height:         height,
		LegendWidth:    legendWidth,
		LegendPosition: o.Legend.Position,
		Tilt:           pie.Tilt,
		InnerRadius:    pie.InnerRadius,
		OffsetTop:      pie.Offset.Top,
		OffsetLeft:     pie.Offset.Left.Value,
		OffsetLeftAuto: pie.Offset.Left.Auto,
	}
}
