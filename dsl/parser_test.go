package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/doughnut/dsl"
)

const sampleDSL = `
chart Revenue v1 {
  canvas {
    width: 480
    height: 320
  }

  pie {
    show: true
    innerRadius: 0.5; tilt: 1
    offsetTop: -10
    offsetLeft: auto
  }

  // 内圈文字
  innerText {
    show: true
    value: "auto"
    valueFormat: currency
    valueDecimals: 2
    postValueText: "Total ${period}"
  }

  legend {
    position: nw
  }

  font { color: #545454 }

  data {
    series "Apples" 120 color #4da74d
    series "Pears" "${sales.pears}"
  }
}
`

func TestParseDocument(t *testing.T) {
	doc, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Name != "Revenue" {
		t.Fatalf("expected chart name Revenue, got %s", doc.Name)
	}
	if doc.Version != "v1" {
		t.Fatalf("expected version v1, got %s", doc.Version)
	}

	kinds := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind())
	}
	if got := strings.Join(kinds, ","); got != "canvas,pie,innerText,legend,font,data" {
		t.Fatalf("unexpected sections: %s", got)
	}

	pie := doc.Sections[1].Body().Assignments()
	if len(pie) != 5 {
		t.Fatalf("expected 5 pie assignments, got %d", len(pie))
	}
	if pie[1].Key != "innerRadius" || pie[1].Value.Text() != "0.5" {
		t.Fatalf("unexpected innerRadius assignment: %+v", pie[1])
	}
	if pie[3].Value.Number == nil || *pie[3].Value.Number != "-10" {
		t.Fatalf("offsetTop should be a negative number, got %+v", pie[3].Value)
	}
	if pie[4].Value.Ident == nil || *pie[4].Value.Ident != "auto" {
		t.Fatalf("offsetLeft should be the bare word auto, got %+v", pie[4].Value)
	}

	inner := doc.Sections[2].Body().Assignments()
	if got := inner[len(inner)-1].Value.Text(); got != "Total ${period}" {
		t.Fatalf("expected interpolation kept in string literal, got %s", got)
	}

	font := doc.Sections[4].Body().Assignments()
	if len(font) != 1 || font[0].Value.Color == nil || *font[0].Value.Color != "#545454" {
		t.Fatalf("expected font color, got %+v", font)
	}

	series := doc.Sections[5].Body().Commands("series")
	if len(series) != 2 {
		t.Fatalf("expected 2 series commands, got %d", len(series))
	}
	if got := tokensToString(series[0].Args); got != "Apples 120 color #4da74d" {
		t.Fatalf("unexpected series args: %s", got)
	}
	if series[0].Args[3].Type != "Color" {
		t.Fatalf("expected Color token, got %s", series[0].Args[3].Type)
	}
	if series[1].Args[1].Type != "String" || series[1].Args[1].Value != "${sales.pears}" {
		t.Fatalf("unexpected bound series value: %+v", series[1].Args[1])
	}
}

func TestParseRejectsUnknownSection(t *testing.T) {
	_, err := dsl.ParseString(`chart X v1 { axis { show: true } }`)
	if err == nil {
		t.Fatalf("expected error for unknown section")
	}
}

func TestSectionHelpersOnNil(t *testing.T) {
	var s *dsl.Section
	if s.Kind() != "unknown" || s.Body() != nil {
		t.Fatalf("nil section helpers should be safe")
	}
	var b *dsl.Block
	if b.Assignments() != nil || b.Commands("series") != nil {
		t.Fatalf("nil block helpers should be safe")
	}
}

func tokensToString(parts []*dsl.Lexeme) string {
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		values = append(values, p.Value)
	}
	return strings.Join(values, " ")
}
