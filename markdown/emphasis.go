package markdown

import "regexp"

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
)

// StripEmphasis 去掉 **粗体** 与 *斜体* 标记，保留其中的文字。
// 先处理粗体，避免成对的 ** 被拆成两个斜体标记。
// 链接、行内代码与引用标记原样保留，需要时使用 CleanInline。
func StripEmphasis(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	return italicPattern.ReplaceAllString(text, "$1")
}
