package layout

import (
	"strings"
	"unicode/utf8"
)

// 平均字宽与字号的比例，粗略对应常见无衬线字体。
const defaultCharWidthRatio = 0.5

// EstimateTypesetter 在没有字体度量时按平均字宽估算折行，结果只取决于字符数。
type EstimateTypesetter struct {
	// CharWidth 为单字宽度与字号的比例，<=0 时取 0.5。
	CharWidth float64
}

var _ Typesetter = EstimateTypesetter{}

// Wrap 实现 Typesetter。
func (e EstimateTypesetter) Wrap(text string, maxWidth, fontSize float64) []string {
	ratio := e.CharWidth
	if ratio <= 0 {
		ratio = defaultCharWidthRatio
	}
	charWidth := fontSize * PtToMm * ratio
	return WrapWords(text, maxWidth, func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * charWidth
	})
}

// WrapWords 是贪心的按词折行：单词之间以单个空格连接，
// 放不下时另起一行；超宽的单词独占一行而不被拆开。
// 只含空白的输入返回 nil。
func WrapWords(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if maxWidth <= 0 || measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
