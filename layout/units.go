package layout

import (
	"strconv"
	"strings"
)

// Unit 记录长度值书写时的单位（页面描述或配置文件）。
type Unit int

const (
	UnitNone Unit = iota // 无单位：由调用方决定按 mm 还是 pt 理解
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

var unitSuffixes = []struct {
	suffix string
	unit   Unit
	mm     float64 // 每单位对应的毫米数
}{
	{"mm", UnitMM, 1},
	{"cm", UnitCM, 10},
	{"in", UnitIN, 25.4},
	{"pt", UnitPT, PtToMm},
}

// String returns the suffix used when writing the unit.
func (u Unit) String() string {
	for _, s := range unitSuffixes {
		if s.unit == u {
			return s.suffix
		}
	}
	return ""
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToMM 换算为毫米；无单位的值原样视为毫米。
func (l Length) ToMM() float64 {
	for _, s := range unitSuffixes {
		if s.unit == l.Unit {
			return l.Value * s.mm
		}
	}
	return l.Value
}

// ToPT 换算为点；无单位的值原样视为点（用于字号）。
func (l Length) ToPT() float64 {
	if l.Unit == UnitNone || l.Unit == UnitPT {
		return l.Value
	}
	return l.ToMM() * MmToPt
}

// ParseLength 解析 "20mm"、"18pt"、"1in" 或纯数字。
// ok 为 false 表示数值部分无法解析。
func ParseLength(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitNone
	for _, s := range unitSuffixes {
		if strings.HasSuffix(v, s.suffix) {
			unit = s.unit
			v = strings.TrimSpace(strings.TrimSuffix(v, s.suffix))
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}
