package layout

import (
	"testing"

	"github.com/ByLCY/quire/dsl"
)

func resolve(t *testing.T, spec string) Geometry {
	t.Helper()
	parsed, err := dsl.ParsePage(spec)
	if err != nil {
		t.Fatalf("解析页面描述失败: %v", err)
	}
	geo, err := ResolveGeometry(parsed)
	if err != nil {
		t.Fatalf("解析版式失败: %v", err)
	}
	return geo
}

// TestResolveMarginVariants 验证 margin 参数支持 1、2、3、4+ 个值的语义。
func TestResolveMarginVariants(t *testing.T) {
	if m := resolve(t, "A4 portrait margin 10mm").Margin; m != Uniform(10) {
		t.Fatalf("1 值语义错误: %+v", m)
	}
	if m := resolve(t, "A4 margin 10mm 5mm").Margin; m != (Margin{Top: 10, Right: 5, Bottom: 10, Left: 5}) {
		t.Fatalf("2 值语义错误: %+v", m)
	}
	if m := resolve(t, "A4 margin 12mm 8mm 6mm").Margin; m != (Margin{Top: 12, Right: 8, Bottom: 6, Left: 0}) {
		t.Fatalf("3 值语义错误: %+v", m)
	}
	if m := resolve(t, "A4 margin 1cm 5mm 2cm 3mm").Margin; m != (Margin{Top: 10, Right: 5, Bottom: 20, Left: 3}) {
		t.Fatalf("4 值语义错误: %+v", m)
	}
	if m := resolve(t, "A4 margin 1 2 3 4 999 888").Margin; m != (Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}) {
		t.Fatalf(">4 值应忽略多余: %+v", m)
	}
}

func TestResolveGeometrySizes(t *testing.T) {
	geo := resolve(t, "A4")
	if geo != DefaultGeometry() {
		t.Fatalf("A4 应等于默认版式: %+v", geo)
	}
	geo = resolve(t, "a5 landscape")
	if geo.Width != 210 || geo.Height != 148 {
		t.Fatalf("A5 横向尺寸错误: %gx%g", geo.Width, geo.Height)
	}
	geo = resolve(t, "Letter margin 1in")
	if geo.Width != 215.9 || !eq(geo.Margin.Left, 25.4) {
		t.Fatalf("Letter 版式错误: %+v", geo)
	}
	if _, err := ResolveGeometry(&dsl.PageSpec{Size: "B5"}); err == nil {
		t.Fatalf("未知尺寸应报错")
	}
	if geo, err := ResolveGeometry(nil); err != nil || geo != DefaultGeometry() {
		t.Fatalf("空描述应返回默认版式")
	}
}

func TestGeometryContentBox(t *testing.T) {
	geo := Geometry{Width: 200, Height: 300, Margin: Margin{Top: 10, Right: 20, Bottom: 30, Left: 40}}
	if geo.ContentWidth() != 140 || geo.ContentTop() != 10 || geo.ContentBottom() != 270 {
		t.Fatalf("内容区域计算错误: w=%g top=%g bottom=%g", geo.ContentWidth(), geo.ContentTop(), geo.ContentBottom())
	}
}
