package layout

// 该文件定义布局结果，供分页、渲染与调试 JSON 共用。
// 坐标与长度统一为毫米（mm），字号为点（pt）。

// Role 标记一条绘制指令来自哪类输入块。
type Role string

const (
	RoleTitle     Role = "title"
	RoleHeading   Role = "heading"
	RoleListItem  Role = "list-item"
	RoleParagraph Role = "paragraph"
)

// Document 是一次布局的完整结果：按页分组的绘制指令。
type Document struct {
	Title    string         `json:"title"`
	Geometry Geometry       `json:"geometry"`
	Profile  ScalingProfile `json:"profile"`
	Pages    []Page         `json:"pages"`
}

// Page 只包含 Page == Index 的指令，顺序即绘制顺序。
type Page struct {
	Index    int           `json:"index"`
	Commands []DrawCommand `json:"commands"`
}

// DrawCommand 表示在某页某位置绘制一段文字。字号与粗细随指令携带，
// 渲染端不需要维护隐式的"当前字体"状态。
type DrawCommand struct {
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"` // 基线位置
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize"`
	Bold     bool    `json:"bold"`
	Role     Role    `json:"role"`
}

// Commands 按绘制顺序返回全部指令。
func (d *Document) Commands() []DrawCommand {
	if d == nil {
		return nil
	}
	n := 0
	for _, p := range d.Pages {
		n += len(p.Commands)
	}
	out := make([]DrawCommand, 0, n)
	for _, p := range d.Pages {
		out = append(out, p.Commands...)
	}
	return out
}

// PageCount 返回页数。
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Geometry 描述页面尺寸与固定的版式常量，同一部署内的所有文档共用一份。
type Geometry struct {
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Margin           Margin  `json:"margin"`
	TitleFontSize    float64 `json:"titleFontSize"`    // pt
	TitleBlockHeight float64 `json:"titleBlockHeight"` // 标题占用的纵向空间
	ListIndent       float64 `json:"listIndent"`       // 列表项额外缩进
}

// Margin 以毫米为单位。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Uniform 返回四边相同的边距。
func Uniform(v float64) Margin { return Margin{Top: v, Right: v, Bottom: v, Left: v} }

// ContentWidth 是左右边距之间的可用宽度。
func (g Geometry) ContentWidth() float64 { return g.Width - g.Margin.Left - g.Margin.Right }

// ContentTop 是新页光标的起始位置。
func (g Geometry) ContentTop() float64 { return g.Margin.Top }

// ContentBottom 是光标允许落笔的最低位置。
func (g Geometry) ContentBottom() float64 { return g.Height - g.Margin.Bottom }

// IsZero reports whether no page size was configured.
func (g Geometry) IsZero() bool { return g.Width == 0 && g.Height == 0 }
