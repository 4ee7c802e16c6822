package chart

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ByLCY/doughnut/binding"
	"github.com/ByLCY/doughnut/dsl"
	"github.com/ByLCY/doughnut/layout"
)

// 未声明 canvas 时的默认画布尺寸（px）。
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// FromDocument 将 DSL 文档转换为 Config。base 为叠加前的配置（默认值或 YAML 结果），
// 文本类配置与字符串形式的序列值会先按 data 做 ${...} 插值。
func FromDocument(doc *dsl.Document, data any, base Options) (Config, error) {
	if doc == nil {
		return Config{}, errors.New("文档为空")
	}
	cfg := Config{Width: DefaultWidth, Height: DefaultHeight, Options: base}

	for _, section := range doc.Sections {
		var err error
		switch {
		case section.Canvas != nil:
			err = applyAssignments(section.Canvas.Block, func(key string, v *dsl.Value) error {
				return applyCanvas(&cfg, key, v)
			})
		case section.Pie != nil:
			err = applyAssignments(section.Pie.Block, func(key string, v *dsl.Value) error {
				return applyPie(&cfg.Options.Series.Pie, key, v)
			})
		case section.InnerText != nil:
			err = applyAssignments(section.InnerText.Block, func(key string, v *dsl.Value) error {
				return applyInnerText(&cfg.Options.Series.Pie.InnerText, key, v, data)
			})
		case section.Legend != nil:
			err = applyAssignments(section.Legend.Block, func(key string, v *dsl.Value) error {
				return applyLegend(&cfg.Options.Legend, key, v)
			})
		case section.Font != nil:
			err = applyAssignments(section.Font.Block, func(key string, v *dsl.Value) error {
				return applyFont(&cfg.Options.Font, key, v)
			})
		case section.Data != nil:
			err = collectSeries(&cfg, section.Data.Block, data)
		}
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s 段落", section.Kind())
		}
	}
	return cfg, nil
}

func applyAssignments(block *dsl.Block, apply func(key string, v *dsl.Value) error) error {
	for _, a := range block.Assignments() {
		if err := apply(a.Key, a.Value); err != nil {
			return errors.Wrapf(err, "%s %s", a.Pos, a.Key)
		}
	}
	return nil
}

func applyCanvas(cfg *Config, key string, v *dsl.Value) error {
	switch key {
	case "width":
		return parseFloat(v, &cfg.Width)
	case "height":
		return parseFloat(v, &cfg.Height)
	default:
		return unknownKey(key)
	}
}

func applyPie(pie *PieOptions, key string, v *dsl.Value) error {
	switch key {
	case "show":
		return parseBool(v, &pie.Show)
	case "innerRadius":
		return parseFloat(v, &pie.InnerRadius)
	case "tilt":
		return parseFloat(v, &pie.Tilt)
	case "offsetTop":
		return parseFloat(v, &pie.Offset.Top)
	case "offsetLeft":
		left, err := ParseAutoValue(v.Text())
		if err != nil {
			return err
		}
		pie.Offset.Left = left
		return nil
	default:
		return unknownKey(key)
	}
}

func applyInnerText(it *InnerTextOptions, key string, v *dsl.Value, data any) error {
	switch key {
	case "show":
		return parseBool(v, &it.Show)
	case "value":
		it.Value = binding.Interpolate(v.Text(), data)
	case "valueFormat":
		f, err := layout.ParseValueFormat(v.Text())
		if err != nil {
			return err
		}
		it.ValueFormat = f
	case "valueDecimals":
		return parseInt(v, &it.ValueDecimals)
	case "preValueText":
		it.PreValueText = binding.Interpolate(v.Text(), data)
	case "postValueText":
		it.PostValueText = binding.Interpolate(v.Text(), data)
	case "maxFontSize":
		return parseInt(v, &it.MaxFontSize)
	default:
		return unknownKey(key)
	}
	return nil
}

func applyLegend(legend *LegendOptions, key string, v *dsl.Value) error {
	switch key {
	case "show":
		return parseBool(v, &legend.Show)
	case "position":
		pos := strings.ToLower(v.Text())
		switch pos {
		case "ne", "nw", "se", "sw":
			legend.Position = pos
			return nil
		default:
			return errors.Errorf("图例位置 %q 无效，应为 ne/nw/se/sw", v.Text())
		}
	default:
		return unknownKey(key)
	}
}

func applyFont(font *FontOptions, key string, v *dsl.Value) error {
	switch key {
	case "color":
		if _, err := ParseColor(v.Text()); err != nil {
			return err
		}
		font.Color = v.Text()
		return nil
	default:
		return unknownKey(key)
	}
}

// collectSeries 解析 `series "Label" <value> [color #rrggbb]`。
func collectSeries(cfg *Config, block *dsl.Block, data any) error {
	for _, cmd := range block.Commands("series") {
		if len(cmd.Args) < 2 {
			return errors.Errorf("%s series 需要标签与数值", cmd.Pos)
		}
		value, err := binding.Number(cmd.Args[1].Value, data)
		if err != nil {
			return errors.Wrapf(err, "%s series %q", cmd.Pos, cmd.Args[0].Value)
		}
		s := Series{
			Label: binding.Interpolate(cmd.Args[0].Value, data),
			Value: value,
		}
		rest := cmd.Args[2:]
		for i := 0; i+1 < len(rest); i += 2 {
			if rest[i].Value == "color" {
				if _, err := ParseColor(rest[i+1].Value); err != nil {
					return errors.Wrapf(err, "%s series %q", cmd.Pos, s.Label)
				}
				s.Color = rest[i+1].Value
			}
		}
		cfg.Series = append(cfg.Series, s)
	}
	return nil
}

func parseFloat(v *dsl.Value, dst *float64) error {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v.Text(), "px"), 64)
	if err != nil {
		return errors.Errorf("%q 不是数值", v.Text())
	}
	*dst = f
	return nil
}

func parseInt(v *dsl.Value, dst *int) error {
	n, err := strconv.Atoi(v.Text())
	if err != nil {
		return errors.Errorf("%q 不是整数", v.Text())
	}
	*dst = n
	return nil
}

func parseBool(v *dsl.Value, dst *bool) error {
	b, err := strconv.ParseBool(v.Text())
	if err != nil {
		return errors.Errorf("%q 不是布尔值", v.Text())
	}
	*dst = b
	return nil
}

func unknownKey(key string) error {
	return errors.Errorf("未知配置项 %s", key)
}
