package layout

import "math"

// ScalingProfile 是按正文长度选出的基础字号（pt）与行距步长（mm）。
type ScalingProfile struct {
	BaseFontSize   float64 `json:"baseFontSize"`
	LineHeightStep float64 `json:"lineHeightStep"`
}

// 长度分档阈值：正文越长字号越小，尽量把内容压在一页内。
const (
	denseThreshold   = 4500
	compactThreshold = 3000
)

// SelectProfile 依据正文长度（字符数）选择字号档位，先匹配先生效。
func SelectProfile(contentLength int) ScalingProfile {
	switch {
	case contentLength > denseThreshold:
		return ScalingProfile{BaseFontSize: 9, LineHeightStep: 4}
	case contentLength > compactThreshold:
		return ScalingProfile{BaseFontSize: 10, LineHeightStep: 4.5}
	default:
		return ScalingProfile{BaseFontSize: 11, LineHeightStep: 5}
	}
}

// HeadingFontSize 计算标题字号：层级越浅越大，下限为 base+1，不设上限。
func HeadingFontSize(base float64, level int) float64 {
	return math.Max(base+1, base+6-2*float64(level))
}
