package chart

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ByLCY/doughnut/layout"
)

// Series 是一个数据序列；Value 为其主值。
type Series struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
}

// Config 汇总创建 Plot 所需的尺寸、配置与数据。
type Config struct {
	Width   float64  `yaml:"width" json:"width"`
	Height  float64  `yaml:"height" json:"height"`
	Options Options  `yaml:"options" json:"options"`
	Series  []Series `yaml:"series" json:"series"`
}

// DrawHook 在宿主绘制完图形之后被调用，所有钩子共享同一块画布。
type DrawHook func(p *Plot, s layout.Surface) error

// Hooks 是按注册顺序执行的回调列表，只能追加。
type Hooks struct {
	Draw []DrawHook
}

// AddDraw 在末尾追加一个绘制钩子。
func (h *Hooks) AddDraw(fn DrawHook) {
	if fn == nil {
		return
	}
	h.Draw = append(h.Draw, fn)
}

// Plugin 描述一个图表插件：默认配置与初始化入口。
type Plugin struct {
	Name     string
	Version  string
	Defaults func(opts *Options)
	Init     func(p *Plot) error
}

// Plot 是宿主图表实例，向插件暴露配置、数据、尺寸与钩子列表。
type Plot struct {
	width       float64
	height      float64
	options     Options
	data        []Series
	legendWidth float64
	hooks       Hooks
}

// New 创建图表并按顺序初始化插件。cfg.Options 通常以 DefaultOptions 为基础。
func New(cfg Config, plugins ...Plugin) (*Plot, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("画布尺寸必须为正数，当前 %gx%g", cfg.Width, cfg.Height)
	}
	p := &Plot{
		width:   cfg.Width,
		height:  cfg.Height,
		options: cfg.Options,
		data:    append([]Series(nil), cfg.Series...),
	}
	for _, pl := range plugins {
		if pl.Init == nil {
			continue
		}
		if err := pl.Init(p); err != nil {
			return nil, errors.Wrapf(err, "初始化插件 %s 失败", pl.Name)
		}
	}
	return p, nil
}

func (p *Plot) Options() Options { return p.options }

// Data 返回数据序列的副本。
func (p *Plot) Data() []Series { return append([]Series(nil), p.data...) }

// Values 返回各序列的主值，顺序与 Data 一致。
func (p *Plot) Values() []float64 {
	out := make([]float64, len(p.data))
	for i, s := range p.data {
		out[i] = s.Value
	}
	return out
}

func (p *Plot) Width() float64 { return p.width }

func (p *Plot) Height() float64 { return p.height }

// LegendWidth 是宿主渲染图例后测得的宽度（px），无图例时为 0。
func (p *Plot) LegendWidth() float64 { return p.legendWidth }

// SetLegendWidth 由宿主渲染器在绘制图例后调用。
func (p *Plot) SetLegendWidth(w float64) { p.legendWidth = w }

func (p *Plot) Hooks() *Hooks { return &p.hooks }

// Geometry 推导当前圆环的中心与半径。
func (p *Plot) Geometry() layout.Geometry {
	return layout.ResolveGeometry(p.options.GeometryParams(p.width, p.height, p.legendWidth))
}

// RunDraw 按注册顺序执行绘制钩子，遇到错误立即返回。
func (p *Plot) RunDraw(s layout.Surface) error {
	for i, hook := range p.hooks.Draw {
		if err := hook(p, s); err != nil {
			return errors.Wrapf(err, "绘制钩子 #%d 失败", i)
		}
	}
	return nil
}

// ParseColor 解析 #rgb / #rrggbb / #rrggbbaa 形式的颜色。
func ParseColor(value string) (layout.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		hex = strings.Repeat(hex[0:1], 2) + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2)
	case 6, 8:
	default:
		return layout.Color{}, errors.Errorf("颜色值 %s 无法解析", value)
	}
	var rgb [3]int
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return layout.Color{}, errors.Errorf("颜色值 %s 无法解析", value)
		}
		rgb[i] = int(v)
	}
	return layout.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}
