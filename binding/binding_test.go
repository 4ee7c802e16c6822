package binding

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("解析测试数据失败: %v", err)
	}
	return data
}

func TestInterpolate(t *testing.T) {
	data := decode(t, `{"period":"Q3","sales":{"total":1000000,"regions":[{"name":"North"}]}}`)

	cases := map[string]string{
		"Total ${period}":               "Total Q3",
		"${ sales.total }":              "1000000",
		"Top: ${sales.regions[0].name}": "Top: North",
		"${missing.path}":               "${missing.path}",
		"${sales.regions[3].name}":      "${sales.regions[3].name}",
		"plain":                         "plain",
	}
	for in, want := range cases {
		if got := Interpolate(in, data); got != want {
			t.Fatalf("Interpolate(%q) = %q, want %q", in, got, want)
		}
	}

	if got := Interpolate("Total ${period}", nil); got != "Total ${period}" {
		t.Fatalf("nil data should keep placeholder, got %q", got)
	}
}

func TestNumber(t *testing.T) {
	data := decode(t, `{"sales":{"pears":80.25,"label":"12.5"}}`)

	cases := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{"-3.5", -3.5},
		{"40px", 40},
		{"${sales.pears}", 80.25},
		{"${sales.label}", 12.5},
	}
	for _, tc := range cases {
		got, err := Number(tc.in, data)
		if err != nil {
			t.Fatalf("Number(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Number(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := Number("${sales.missing}", data); err == nil {
		t.Fatalf("missing path should not parse as a number")
	}
	if _, err := Number("abc", nil); err == nil {
		t.Fatalf("non-numeric text should fail")
	}
}

func TestNumberAcceptsJSONShapes(t *testing.T) {
	dec := json.NewDecoder(bytes.NewReader([]byte(`{"q":[[10,20],[30,"1,250.5"]],"note":"n/a","big":12345678901234}`)))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		t.Fatalf("解析测试数据失败: %v", err)
	}

	cases := []struct {
		in   string
		want float64
	}{
		{"${q[0][1]}", 20},
		{"${q[1][1]}", 1250.5},
		{"${big}", 12345678901234},
		{"1,000", 1000},
		{"${q[1][0]}px", 30},
	}
	for _, tc := range cases {
		got, err := Number(tc.in, data)
		if err != nil {
			t.Fatalf("Number(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Number(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"${note}", "${q[2][0]}", "${q[x]}", "${q}"} {
		if _, err := Number(bad, data); err == nil {
			t.Fatalf("Number(%q) should fail", bad)
		}
	}
}

func TestLookupPaths(t *testing.T) {
	data := decode(t, `{"a":{"b":[{"c":"deep"}]},"list":[["x","y"]]}`)

	if v, ok := Lookup(data, "a.b[0].c"); !ok || v != "deep" {
		t.Fatalf("Lookup(a.b[0].c) = %v, %v", v, ok)
	}
	if v, ok := Lookup(data, "list[0][1]"); !ok || v != "y" {
		t.Fatalf("Lookup(list[0][1]) = %v, %v", v, ok)
	}
	for _, path := range []string{"", "a.missing", "a.b[1]", "list[0][x]", "a.b.c"} {
		if _, ok := Lookup(data, path); ok {
			t.Fatalf("Lookup(%q) should fail", path)
		}
	}
}
