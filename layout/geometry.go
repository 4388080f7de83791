package layout

import (
	"fmt"
	"strings"

	"github.com/ByLCY/quire/dsl"
)

// 版式常量的默认值。
const (
	DefaultMargin           = 20.0
	DefaultTitleFontSize    = 18.0
	DefaultTitleBlockHeight = 12.0
	DefaultListIndent       = 5.0
)

var pagePresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
	"LEGAL":  {215.9, 355.6},
}

// DefaultGeometry 返回 A4 纵向、20mm 边距的默认版式。
func DefaultGeometry() Geometry {
	return Geometry{
		Width:            210,
		Height:           297,
		Margin:           Uniform(DefaultMargin),
		TitleFontSize:    DefaultTitleFontSize,
		TitleBlockHeight: DefaultTitleBlockHeight,
		ListIndent:       DefaultListIndent,
	}
}

// ResolveGeometry 根据页面描述计算尺寸与边距，其余常量取默认值。
func ResolveGeometry(spec *dsl.PageSpec) (Geometry, error) {
	geo := DefaultGeometry()
	if spec == nil {
		return geo, nil
	}
	base, ok := pagePresets[strings.ToUpper(spec.Size)]
	if !ok {
		return Geometry{}, fmt.Errorf("暂不支持的纸张尺寸：%s", spec.Size)
	}
	geo.Width, geo.Height = base[0], base[1]
	if spec.Landscape() {
		geo.Width, geo.Height = geo.Height, geo.Width
	}
	if values := spec.MarginValues(); len(values) > 0 {
		margin, err := resolveMargin(values)
		if err != nil {
			return Geometry{}, err
		}
		geo.Margin = margin
	}
	return geo, nil
}

// resolveMargin 采用 CSS 风格的 1~4 值语义：
// 1 个值四边相同；2 个值为上下、左右；3 个值为上、右、下（左为 0）；4 个值为上右下左。
func resolveMargin(values []string) (Margin, error) {
	vals := make([]float64, 0, 4)
	for _, raw := range values {
		if len(vals) == 4 {
			break
		}
		l, ok := ParseLength(raw)
		if !ok {
			return Margin{}, fmt.Errorf("无法解析的边距：%s", raw)
		}
		vals = append(vals, l.ToMM())
	}
	switch len(vals) {
	case 1:
		return Uniform(vals[0]), nil
	case 2:
		return Margin{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, nil
	case 3:
		return Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: 0}, nil
	case 4:
		return Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return Uniform(DefaultMargin), nil
}
