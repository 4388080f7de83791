package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 9, 11, 18, 72, 1000}
	for _, pt := range samples {
		back := Length{Value: pt, Unit: UnitPT}.ToMM() * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

// TestParseLength 覆盖常见单位与无单位数字。
func TestParseLength(t *testing.T) {
	cases := []struct {
		in     string
		wantMM float64
		unit   Unit
	}{
		{"20mm", 20, UnitMM},
		{"2.54cm", 25.4, UnitCM},
		{"1in", 25.4, UnitIN},
		{"72pt", 72 * PtToMm, UnitPT},
		{" 15 ", 15, UnitNone},
		{"10MM", 10, UnitMM},
	}
	for _, c := range cases {
		l, ok := ParseLength(c.in)
		if !ok {
			t.Fatalf("%q 应可解析", c.in)
		}
		if l.Unit != c.unit {
			t.Fatalf("%q 单位错误: got=%v want=%v", c.in, l.Unit, c.unit)
		}
		if diff := math.Abs(l.ToMM() - c.wantMM); diff > 1e-9 {
			t.Fatalf("%q 转 mm 错误: got=%g want=%g", c.in, l.ToMM(), c.wantMM)
		}
	}
	for _, bad := range []string{"", "mm", "abc", "1.2.3pt"} {
		if _, ok := ParseLength(bad); ok {
			t.Fatalf("%q 不应被解析", bad)
		}
	}
}

// TestLengthToPT 验证字号换算：无单位按 pt 理解。
func TestLengthToPT(t *testing.T) {
	if got := (Length{Value: 18}).ToPT(); got != 18 {
		t.Fatalf("无单位 18 应为 18pt，实际 %g", got)
	}
	if got := (Length{Value: 18, Unit: UnitPT}).ToPT(); got != 18 {
		t.Fatalf("18pt 应保持不变，实际 %g", got)
	}
	if got := (Length{Value: 1, Unit: UnitIN}).ToPT(); math.Abs(got-72) > 1e-3 {
		t.Fatalf("1in 应约为 72pt，实际 %g", got)
	}
	if UnitCM.String() != "cm" || UnitNone.String() != "" {
		t.Fatalf("Unit.String 结果错误")
	}
}
