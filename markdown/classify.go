package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxHeadingLevel 是标题层级的上限，超过的 # 数量仍按 6 级处理。
const MaxHeadingLevel = 6

// Kind 表示一行输入的块类型。
type Kind int

const (
	Blank Kind = iota
	Heading
	ListItem
	Paragraph
)

// String 用于调试 JSON 与测试输出。
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Heading:
		return "heading"
	case ListItem:
		return "list-item"
	case Paragraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind appear as a readable string in the layout debug JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Block 是单行输入的分类结果。Level 仅对 Heading 有意义（>= 1）。
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Classify 将一行原始文本归类为 Blank / Heading / ListItem / Paragraph。
// 任意输入都能得到结果，无法识别的语法一律按段落处理。
func Classify(line string) Block {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Block{Kind: Blank}
	}
	if level, text, ok := headingMarker(trimmed); ok {
		return Block{Kind: Heading, Level: level, Text: text}
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return Block{Kind: ListItem, Text: trimmed[2:]}
	}
	return Block{Kind: Paragraph, Text: trimmed}
}

// headingMarker 识别 "#... " 前缀：至少一个 #，后面紧跟空白。
// 返回的文本去掉了标记和其后的一个空白字符。
func headingMarker(s string) (int, string, bool) {
	count := 0
	for count < len(s) && s[count] == '#' {
		count++
	}
	if count == 0 || count == len(s) {
		return 0, "", false
	}
	r, size := utf8.DecodeRuneInString(s[count:])
	if !unicode.IsSpace(r) {
		return 0, "", false
	}
	level := count
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return level, s[count+size:], true
}
