// Package doughnut 在圆环图的内圈绘制汇总数值与上下说明文字。
//
// 插件在初始化时注册一个绘制钩子：宿主画完扇区与图例后，钩子读取 series.pie.innerText
// 配置，计算显示值、选择不超出内圈宽度的字号，再把 1~3 行文字居中绘制。
package doughnut

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ByLCY/doughnut/chart"
	"github.com/ByLCY/doughnut/layout"
)

const (
	Name    = "doughnutText"
	Version = "0.1"
)

// DefaultPostValueText 是默认的下方说明文字。
const DefaultPostValueText = "Total"

type config struct {
	logger   *zap.Logger
	observer func(*layout.Plan)
}

// Option 调整插件行为。
type Option func(*config)

// WithLogger 设置日志输出，默认不输出。
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPlanObserver 在每次成功布局后回调，调用方可以据此输出调试信息。
func WithPlanObserver(fn func(*layout.Plan)) Option {
	return func(c *config) { c.observer = fn }
}

// Plugin 返回可交给 chart.DefaultOptions 与 chart.New 的插件描述。
func Plugin(opts ...Option) chart.Plugin {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return chart.Plugin{
		Name:     Name,
		Version:  Version,
		Defaults: Defaults,
		Init: func(p *chart.Plot) error {
			return cfg.init(p)
		},
	}
}

// Defaults 写入 innerText 的默认配置。
func Defaults(opts *chart.Options) {
	opts.Series.Pie.InnerText = chart.InnerTextOptions{
		Show:          false,
		Value:         layout.AutoValue,
		ValueFormat:   layout.FormatNumeric,
		ValueDecimals: layout.DecimalsUnset,
		PreValueText:  "",
		PostValueText: DefaultPostValueText,
		MaxFontSize:   0,
	}
}

func (c *config) init(p *chart.Plot) error {
	it := p.Options().Series.Pie.InnerText
	if err := layout.ValidateMaxFontSize(it.MaxFontSize); err != nil {
		return err
	}
	if _, err := layout.ParseValueFormat(string(it.ValueFormat)); err != nil {
		return err
	}
	p.Hooks().AddDraw(c.draw)
	return nil
}

// enabled 判断是否需要绘制：饼图可见、存在内圈且开启了 innerText。
func enabled(opts chart.Options) bool {
	pie := opts.Series.Pie
	return pie.Show && pie.InnerRadius > 0 && pie.InnerText.Show
}

func (c *config) draw(p *chart.Plot, s layout.Surface) error {
	opts := p.Options()
	if !enabled(opts) {
		return nil
	}
	it := opts.Series.Pie.InnerText
	g := p.Geometry()

	value := layout.ResolveValue(it.Value, p.Values(), it.ValueFormat, it.ValueDecimals)
	plan, err := layout.PlanInnerText(s, layout.InnerText{
		Value:       value,
		PreText:     it.PreValueText,
		PostText:    it.PostValueText,
		MaxFontSize: it.MaxFontSize,
	}, g)
	if errors.Is(err, layout.ErrNoInnerArea) {
		c.logger.Debug("内圈半径为 0，跳过文字绘制", zap.Float64("innerRadius", g.InnerRadius))
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "计算内圈文字布局失败")
	}

	if ce := c.logger.Check(zap.DebugLevel, "内圈文字布局完成"); ce != nil {
		fields := []zap.Field{
			zap.String("value", value),
			zap.Float64("maxWidth", plan.MaxWidth),
			zap.String("baseline", string(plan.Baseline)),
		}
		for _, ln := range plan.Lines {
			fields = append(fields, zap.String(string(ln.Role), ln.Font.String()))
		}
		ce.Write(fields...)
	}
	if c.observer != nil {
		c.observer(plan)
	}
	return layout.Draw(s, plan)
}
