package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueFormat 决定自动合计值的显示方式。
type ValueFormat string

const (
	FormatNumeric  ValueFormat = "numeric"
	FormatCurrency ValueFormat = "currency"
	FormatNone     ValueFormat = "none"
)

// AutoValue 表示由数据合计得出显示值。
const AutoValue = "auto"

// DecimalsUnset 表示不限制小数位（保留完整精度）。
const DecimalsUnset = -1

// totalScale 用于定点累加，避免大量小数相加时的浮点漂移。
const totalScale = 100000

var groupPrinter = message.NewPrinter(language.English)

// ParseValueFormat 解析配置中的 valueFormat；空字符串视为 numeric。
func ParseValueFormat(s string) (ValueFormat, error) {
	switch ValueFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatNumeric:
		return FormatNumeric, nil
	case FormatCurrency:
		return FormatCurrency, nil
	case FormatNone:
		return FormatNone, nil
	default:
		return "", errors.Wrapf(ErrUnknownValueFormat, "%q", s)
	}
}

// UnmarshalText 让 ValueFormat 可以直接从 YAML/JSON 字符串解析。
func (f *ValueFormat) UnmarshalText(text []byte) error {
	v, err := ParseValueFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Total 对各序列的主值做定点累加：乘以 100000，向下取整后再除回。
func Total(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v * totalScale
	}
	return math.Floor(sum) / totalScale
}

// ResolveValue 返回主行要显示的文字。value 不为 "auto" 时原样返回，不做合计与格式化。
func ResolveValue(value string, values []float64, format ValueFormat, decimals int) string {
	if value != AutoValue {
		return value
	}
	return FormatValue(Total(values), format, decimals)
}

// FormatValue 按 valueFormat 格式化数值。
func FormatValue(n float64, format ValueFormat, decimals int) string {
	switch format {
	case FormatCurrency:
		return FormatCurrencyValue(n, decimals)
	case FormatNone:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return FormatNumericValue(n, decimals)
	}
}

// FormatNumericValue 为整数部分加千分位；decimals 为负时保留完整精度，否则四舍五入到指定位数。
func FormatNumericValue(n float64, decimals int) string {
	if decimals < 0 {
		return groupDigits(n, shortestDecimals(n))
	}
	return groupDigits(roundHalfUp(n, decimals), decimals)
}

// FormatCurrencyValue 输出 "$" 前缀、千分位与固定小数位（未设置时为 2 位）。
// decimals 为 0 时不保留小数点。
func FormatCurrencyValue(n float64, decimals int) string {
	if decimals < 0 {
		decimals = 2
	}
	return "$" + groupDigits(roundHalfUp(n, decimals), decimals)
}

func groupDigits(n float64, decimals int) string {
	return groupPrinter.Sprintf("%."+strconv.Itoa(decimals)+"f", n)
}

// roundHalfUp 在指定小数位上做远离零的四舍五入。
func roundHalfUp(n float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(n*p) / p
}

func shortestDecimals(n float64) int {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
