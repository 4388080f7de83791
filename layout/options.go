package layout

import "github.com/ByLCY/quire/markdown"

// Options 配置一次布局所需的依赖与可选覆盖项。零值可用：
// 默认 A4 版式、估算折行、只清理粗体/斜体。
type Options struct {
	Geometry   Geometry
	Typesetter Typesetter
	Cleanup    markdown.CleanupMode
	// Profile 非空时跳过按长度选档，直接使用给定的字号与行距。
	Profile *ScalingProfile
}

// Typesetter 负责把一段文字按宽度约束拆成若干行。
// maxWidth 为毫米，fontSize 为点；实现只能在单词边界处断行，
// 非空输入至少返回一行。
type Typesetter interface {
	Wrap(text string, maxWidth, fontSize float64) []string
}
