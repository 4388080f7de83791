package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Style 选择内置字体的字重。
type Style string

const (
	Regular Style = "regular"
	Bold    Style = "bold"
)

// Family 是内置字体在渲染器中注册的族名。
const Family = "Go"

// Load 返回内置 Go 字体的 TTF 数据，style 不区分大小写。
func Load(style Style) ([]byte, error) {
	switch Style(strings.ToLower(string(style))) {
	case Regular, "":
		return goregular.TTF, nil
	case Bold:
		return gobold.TTF, nil
	default:
		return nil, fmt.Errorf("没有内置字体样式 %s", style)
	}
}
