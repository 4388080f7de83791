package renderer

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/quire/layout"
)

// Extension 是输出文件的扩展名。
const Extension = ".pdf"

// Surface 是最终绘制文字的目标，例如 PDF 画布。
// 创建时已带有第一页；SetFont 设置的字体状态在之后的 DrawText 中持续生效。
type Surface interface {
	NewPage()
	SetFont(size float64, bold bool)
	DrawText(x, y float64, text string)
	Save(path string) error
}

type fontMode struct {
	size float64
	bold bool
}

// Draw 将布局结果逐页回放到 surface 上：换页时调用 NewPage，
// 只有字号或粗细变化时才调用 SetFont。
func Draw(doc *layout.Document, s Surface) {
	var mode *fontMode
	for i, page := range doc.Pages {
		if i > 0 {
			s.NewPage()
		}
		for _, cmd := range page.Commands {
			want := fontMode{size: cmd.FontSize, bold: cmd.Bold}
			if mode == nil || *mode != want {
				s.SetFont(want.size, want.bold)
				mode = &want
			}
			s.DrawText(cmd.X, cmd.Y, cmd.Text)
		}
	}
}

// Emit 绘制文档并保存到 dir 下由标题派生的文件名，返回保存路径。
// 同名文件直接覆盖；保存失败的原始错误可以通过 errors.Cause 取回。
func Emit(doc *layout.Document, s Surface, dir string) (string, error) {
	if doc == nil {
		return "", errors.New("布局结果为空")
	}
	if s == nil {
		return "", errors.New("surface 不能为空")
	}
	Draw(doc, s)
	path := filepath.Join(dir, FileName(doc.Title))
	if err := s.Save(path); err != nil {
		return "", errors.Wrapf(err, "保存 %s 失败", path)
	}
	return path, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName 由标题生成文件名：小写，连续空白替换为下划线，加上扩展名。
// 路径分隔符同样替换为下划线，空标题使用 "document"。
func FileName(title string) string {
	name := norm.NFC.String(strings.TrimSpace(title))
	name = cases.Lower(language.Und).String(name)
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		name = "document"
	}
	return name + Extension
}
