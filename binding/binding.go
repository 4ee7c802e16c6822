// Package binding 把图表描述中的 ${path} 占位符绑定到 JSON 数据：
// 说明文字做字符串插值，序列值解析为数字。
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 若 data 为空或路径不存在，则保留原占位符。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		if val, ok := Lookup(data, groups[1]); ok {
			return stringify(val)
		}
		return match
	})
}

// Number 将序列值解析为数字。整个文本恰好是一个 ${...} 时直接取所指的值
// （数字、json.Number 或数字字符串）；否则先插值，再按十进制解析。
// 数字字符串允许千分位逗号与 px 后缀，例如 "1,234.5"、"40px"。
func Number(text string, data any) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if m := exprPattern.FindStringSubmatch(trimmed); m != nil && m[0] == trimmed {
		val, ok := Lookup(data, m[1])
		if !ok {
			return 0, errors.Errorf("数据中不存在 %s", strings.TrimSpace(m[1]))
		}
		if f, ok := toFloat(val); ok {
			return f, nil
		}
		return 0, errors.Errorf("%s 的值 %v 不是数值", strings.TrimSpace(m[1]), val)
	}
	resolved := Interpolate(trimmed, data)
	if f, ok := parseNumber(resolved); ok {
		return f, nil
	}
	return 0, errors.Errorf("无法将 %q 解析为数值", resolved)
}

// Lookup 按 a.b[0].c 形式的路径在 JSON 解码后的数据中取值。
func Lookup(data any, path string) (any, bool) {
	steps, ok := compilePath(path)
	if !ok {
		return nil, false
	}
	current := data
	for _, st := range steps {
		if current, ok = st.apply(current); !ok {
			return nil, false
		}
	}
	return current, true
}

// step 是路径中的一级：对象字段或数组下标。
type step struct {
	key   string
	index int
	isIdx bool
}

func (s step) apply(v any) (any, bool) {
	if s.isIdx {
		arr, ok := v.([]any)
		if !ok || s.index < 0 || s.index >= len(arr) {
			return nil, false
		}
		return arr[s.index], true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	val, ok := obj[s.key]
	return val, ok
}

// compilePath 把 "sales.regions[0].total" 拆成 sales / regions / [0] / total。
func compilePath(path string) ([]step, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	var steps []step
	for _, part := range strings.Split(path, ".") {
		key, rest, _ := strings.Cut(part, "[")
		if key != "" {
			steps = append(steps, step{key: key})
		}
		if rest == "" {
			continue
		}
		for _, idx := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
			n, err := strconv.Atoi(idx)
			if err != nil {
				return nil, false
			}
			steps = append(steps, step{index: n, isIdx: true})
		}
	}
	return steps, len(steps) > 0
}

// toFloat 接受 JSON 解码可能产生的数值形态。
func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parseNumber(v)
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// stringify 输出适合显示的文本；数字不使用科学计数法。
func stringify(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
