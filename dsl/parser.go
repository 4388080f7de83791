package dsl

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	pageLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	})

	pageParser = participle.MustBuild[PageSpec](
		participle.Lexer(pageLexer),
		participle.Elide("Whitespace"),
	)
)

// PageSpec 描述页面：纸张尺寸后跟任意顺序的方向与边距选项，
// 例如 "A4 portrait margin 20mm" 或 "Letter margin 1in 0.75in landscape"。
type PageSpec struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Size    string         `parser:"@Ident"`
	Options []*PageOption  `parser:"@@*"`
}

// PageOption 是页面描述中的一个选项。
type PageOption struct {
	Orientation string   `parser:"  @( 'portrait' | 'landscape' )"`
	Margin      []string `parser:"| 'margin' @Number+"`
}

// Landscape 返回最后一次出现的方向是否为横向。
func (s *PageSpec) Landscape() bool {
	landscape := false
	for _, opt := range s.Options {
		switch opt.Orientation {
		case "landscape":
			landscape = true
		case "portrait":
			landscape = false
		}
	}
	return landscape
}

// MarginValues 返回最后一个 margin 选项的原始取值（含单位）。
func (s *PageSpec) MarginValues() []string {
	var values []string
	for _, opt := range s.Options {
		if len(opt.Margin) > 0 {
			values = opt.Margin
		}
	}
	return values
}

// String 以规范形式输出页面描述。
func (s *PageSpec) String() string {
	parts := []string{s.Size}
	if s.Landscape() {
		parts = append(parts, "landscape")
	} else {
		parts = append(parts, "portrait")
	}
	if m := s.MarginValues(); len(m) > 0 {
		parts = append(parts, "margin")
		parts = append(parts, m...)
	}
	return strings.Join(parts, " ")
}

// ParsePage 解析页面描述字符串。
func ParsePage(input string) (*PageSpec, error) {
	spec, err := pageParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("解析页面描述 %q 失败: %w", input, err)
	}
	return spec, nil
}
