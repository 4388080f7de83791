package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/quire/markdown"
)

// BulletGlyph 替换列表标记，作为列表项的前缀。
const BulletGlyph = "•"

// Build 将标题与 markdown 正文排成若干页绘制指令。
// 任何输入都会得到至少一页，第一条指令总是标题；状态只存在于本次调用内。
func Build(title, content string, opts Options) *Document {
	geo := opts.Geometry
	if geo.IsZero() {
		geo = DefaultGeometry()
	}
	ts := opts.Typesetter
	if ts == nil {
		ts = EstimateTypesetter{}
	}
	profile := SelectProfile(utf8.RuneCountInString(content))
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	collector := newPageCollector()
	cur := &cursor{geo: geo, collector: collector, y: geo.ContentTop()}

	cur.draw(geo.Margin.Left, title, geo.TitleFontSize, true, RoleTitle)
	cur.y += geo.TitleBlockHeight

	for _, line := range strings.Split(content, "\n") {
		block := markdown.Classify(line)
		switch block.Kind {
		case markdown.Blank:
			// 空行只推进光标，不单独触发换页
			cur.y += profile.LineHeightStep
		case markdown.Heading:
			size := HeadingFontSize(profile.BaseFontSize, block.Level)
			text := markdown.Clean(opts.Cleanup, block.Text)
			cur.ensureSpace()
			cur.draw(geo.Margin.Left, text, size, true, RoleHeading)
			cur.y += size/2 + 2
		case markdown.ListItem:
			text := BulletGlyph + " " + markdown.Clean(opts.Cleanup, block.Text)
			cur.flow(ts, text, geo.ListIndent, profile, RoleListItem)
		case markdown.Paragraph:
			text := markdown.Clean(opts.Cleanup, block.Text)
			cur.flow(ts, text, 0, profile, RoleParagraph)
		}
	}

	return &Document{
		Title:    title,
		Geometry: geo,
		Profile:  profile,
		Pages:    collector.pages,
	}
}

// Layout 是 Build 的便捷形式：四边相同的边距，其余常量取默认值。
func Layout(title, content string, pageWidth, pageHeight, margin float64, ts Typesetter) *Document {
	geo := DefaultGeometry()
	geo.Width = pageWidth
	geo.Height = pageHeight
	geo.Margin = Uniform(margin)
	return Build(title, content, Options{Geometry: geo, Typesetter: ts})
}

type pageCollector struct {
	pages   []Page
	current int
}

func newPageCollector() *pageCollector {
	pc := &pageCollector{}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() {
	pc.pages = append(pc.pages, Page{Index: len(pc.pages)})
	pc.current = len(pc.pages) - 1
}

func (pc *pageCollector) add(cmd DrawCommand) {
	p := &pc.pages[pc.current]
	p.Commands = append(p.Commands, cmd)
}

// cursor 记录当前页与纵向位置。
type cursor struct {
	geo       Geometry
	collector *pageCollector
	y         float64
}

// ensureSpace 在落笔前检查是否越过下边距，越过则换到新页顶部。
func (c *cursor) ensureSpace() {
	if c.y <= c.geo.ContentBottom() {
		return
	}
	c.collector.newPage()
	c.y = c.geo.ContentTop()
}

func (c *cursor) draw(x float64, text string, size float64, bold bool, role Role) {
	c.collector.add(DrawCommand{
		Page:     c.collector.current,
		X:        x,
		Y:        c.y,
		Text:     text,
		FontSize: size,
		Bold:     bold,
		Role:     role,
	})
}

// flow 折行后逐行落笔，每一行都单独做换页检查，长段落可以跨页。
func (c *cursor) flow(ts Typesetter, text string, indent float64, profile ScalingProfile, role Role) {
	x := c.geo.Margin.Left + indent
	width := c.geo.ContentWidth() - indent
	for _, line := range ts.Wrap(text, width, profile.BaseFontSize) {
		c.ensureSpace()
		c.draw(x, line, profile.BaseFontSize, false, role)
		c.y += profile.LineHeightStep
	}
}
