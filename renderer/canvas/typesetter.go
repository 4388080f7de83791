package canvasrenderer

import (
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/quire/layout"
)

// Typesetter 用真实字体度量实现 layout.Typesetter。
type Typesetter struct {
	family *canvas.FontFamily

	mu    sync.Mutex
	faces map[float64]*canvas.FontFace
}

var _ layout.Typesetter = (*Typesetter)(nil)

// NewTypesetter 加载内置字体并返回一个可复用的 Typesetter。
func NewTypesetter() (*Typesetter, error) {
	family, err := loadFamily()
	if err != nil {
		return nil, err
	}
	return &Typesetter{family: family, faces: map[float64]*canvas.FontFace{}}, nil
}

// Wrap 按词贪心折行。宽度以 mm 计，canvas 的 TextWidth 同样返回 mm；字号为 pt。
func (t *Typesetter) Wrap(text string, maxWidth, fontSize float64) []string {
	face := t.face(fontSize)
	return layout.WrapWords(text, maxWidth, face.TextWidth)
}

// Measure 返回单行文字在给定字号下的宽度（mm）。
func (t *Typesetter) Measure(text string, fontSize float64) float64 {
	return t.face(fontSize).TextWidth(text)
}

func (t *Typesetter) face(size float64) *canvas.FontFace {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.faces[size]; ok {
		return f
	}
	f := t.family.Face(size, textColor, canvas.FontRegular, canvas.FontNormal)
	t.faces[size] = f
	return f
}
