package layout

import (
	"testing"

	"github.com/pkg/errors"
)

func TestTotalFixedPoint(t *testing.T) {
	got := Total([]float64{1.00001, 2.00002, 3.00003})
	if got != 6.00006 {
		t.Fatalf("定点累加期望 6.00006，实际 %v", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("空数据合计应为 0，实际 %v", got)
	}
	if got := Total([]float64{100, 150.5, 249.5}); got != 500 {
		t.Fatalf("合计期望 500，实际 %v", got)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name     string
		n        float64
		format   ValueFormat
		decimals int
		want     string
	}{
		{"currency two places", 1234.5, FormatCurrency, 2, "$1,234.50"},
		{"currency zero places rounds up", 1234.5, FormatCurrency, 0, "$1,235"},
		{"currency unset defaults to two", 1234.5, FormatCurrency, DecimalsUnset, "$1,234.50"},
		{"currency millions", 1234567.891, FormatCurrency, 2, "$1,234,567.89"},
		{"currency small", 5, FormatCurrency, 2, "$5.00"},
		{"numeric grouped full precision", 1234567, FormatNumeric, DecimalsUnset, "1,234,567"},
		{"numeric keeps fraction", 1234.5678, FormatNumeric, DecimalsUnset, "1,234.5678"},
		{"numeric rounds to decimals", 1234.5678, FormatNumeric, 2, "1,234.57"},
		{"numeric pads decimals", 12, FormatNumeric, 1, "12.0"},
		{"numeric below thousand", 999, FormatNumeric, DecimalsUnset, "999"},
		{"none passes through", 6.00006, FormatNone, 2, "6.00006"},
		{"none integer", 1234567, FormatNone, DecimalsUnset, "1234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.n, tc.format, tc.decimals); got != tc.want {
				t.Fatalf("FormatValue(%v, %s, %d) = %q, want %q", tc.n, tc.format, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestResolveValue(t *testing.T) {
	if got := ResolveValue("Sold out", []float64{1, 2}, FormatCurrency, 2); got != "Sold out" {
		t.Fatalf("非 auto 的值应原样返回，实际 %q", got)
	}
	if got := ResolveValue("1234", nil, FormatCurrency, 2); got != "1234" {
		t.Fatalf("字面量不应被格式化，实际 %q", got)
	}
	if got := ResolveValue(AutoValue, []float64{200, 300}, FormatCurrency, 2); got != "$500.00" {
		t.Fatalf("auto 合计期望 $500.00，实际 %q", got)
	}
}

func TestParseValueFormat(t *testing.T) {
	for in, want := range map[string]ValueFormat{
		"":         FormatNumeric,
		"numeric":  FormatNumeric,
		"Currency": FormatCurrency,
		" none ":   FormatNone,
	} {
		got, err := ParseValueFormat(in)
		if err != nil {
			t.Fatalf("ParseValueFormat(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseValueFormat(%q) = %q, want %q", in, got, want)
		}
	}

	_, err := ParseValueFormat("percent")
	if !errors.Is(err, ErrUnknownValueFormat) {
		t.Fatalf("未知格式应返回 ErrUnknownValueFormat，实际 %v", err)
	}

	var f ValueFormat
	if err := f.UnmarshalText([]byte("currency")); err != nil || f != FormatCurrency {
		t.Fatalf("UnmarshalText 失败: f=%q err=%v", f, err)
	}
}
