package canvasrenderer

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/quire/layout"
	"github.com/ByLCY/quire/renderer"
)

// Surface draws text runs onto tdewolff/canvas pages and writes them out as a PDF.
type Surface struct {
	width  float64
	height float64
	title  string

	family *canvas.FontFamily
	pages  []*canvas.Canvas
	ctx    *canvas.Context
	face   *canvas.FontFace
}

var _ renderer.Surface = (*Surface)(nil)

// NewSurface 创建一个带有第一页的画布，尺寸单位为 mm。title 写入 PDF 元信息。
func NewSurface(width, height float64, title string) (*Surface, error) {
	family, err := loadFamily()
	if err != nil {
		return nil, err
	}
	s := &Surface{width: width, height: height, title: title, family: family}
	s.NewPage()
	return s, nil
}

// NewPage 开始新的一页，字体状态保持不变。
func (s *Surface) NewPage() {
	c := canvas.New(s.width, s.height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	s.pages = append(s.pages, c)
	s.ctx = ctx
}

// SetFont 切换字号（pt）与粗细。
func (s *Surface) SetFont(size float64, bold bool) {
	s.face = s.family.Face(size, textColor, fontStyle(bold), canvas.FontNormal)
}

// DrawText 以 (x, y) 为左侧基线位置绘制一行文字。
func (s *Surface) DrawText(x, y float64, text string) {
	if s.face == nil {
		s.SetFont(layout.SelectProfile(0).BaseFontSize, false)
	}
	s.ctx.DrawText(x, y, canvas.NewTextLine(s.face, text, canvas.Left))
}

// PageCount 返回已创建的页数。
func (s *Surface) PageCount() int { return len(s.pages) }

// Bytes 将所有页面编码为 PDF。
func (s *Surface) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, s.width, s.height, nil)
	writer.SetInfo(s.title, "", "", "", "quire")
	for i, c := range s.pages {
		if i > 0 {
			writer.NewPage(s.width, s.height)
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "写入 PDF 失败")
	}
	return buf.Bytes(), nil
}

// Save 写出 PDF，必要时创建目录；同名文件会被覆盖。
func (s *Surface) Save(path string) error {
	data, err := s.Bytes()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "创建输出目录失败")
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Render 将布局结果绘制为 PDF 字节，不落盘。
func Render(doc *layout.Document) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, errors.New("缺少可渲染的页面")
	}
	s, err := NewSurface(doc.Geometry.Width, doc.Geometry.Height, doc.Title)
	if err != nil {
		return nil, err
	}
	renderer.Draw(doc, s)
	return s.Bytes()
}
