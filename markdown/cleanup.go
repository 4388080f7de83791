package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// CleanupMode 决定行内 markdown 的清理程度。
type CleanupMode string

const (
	// CleanupEmphasis 只去掉粗体/斜体标记（默认）。
	CleanupEmphasis CleanupMode = "emphasis"
	// CleanupFull 额外处理链接、行内代码、图片与引用标记。
	CleanupFull CleanupMode = "full"
)

// ParseCleanupMode 解析配置中的清理模式，空串视为默认值。
func ParseCleanupMode(s string) (CleanupMode, error) {
	switch CleanupMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", CleanupEmphasis:
		return CleanupEmphasis, nil
	case CleanupFull:
		return CleanupFull, nil
	default:
		return "", fmt.Errorf("未知的 cleanup 模式：%q", s)
	}
}

// Clean 按模式清理一段已分类的文本。
func Clean(mode CleanupMode, s string) string {
	if mode == CleanupFull {
		return CleanInline(s)
	}
	return StripEmphasis(s)
}

var blockquotePattern = regexp.MustCompile(`^(?:>[ \t]?)+`)

// inlineParser 只注册段落块解析器，行首的 "1." 或 "+" 不会被当成列表吞掉。
var inlineParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(parser.DefaultInlineParsers()...),
)

// CleanInline 将一行行内 markdown 渲染为纯文本：
// 强调保留文字，链接与图片保留标签，行内代码保留内容，行首引用标记被移除。
func CleanInline(s string) string {
	s = blockquotePattern.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return ""
	}
	src := []byte(s)
	doc := inlineParser.Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
