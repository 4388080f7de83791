package canvasrenderer

import (
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/quire/fonts"
)

// textColor 是正文颜色，接近黑色以减轻打印时的对比。
var textColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}

// loadFamily 注册内置的常规与粗体字体。每个 Typesetter/Surface 各持有一份，
// 不在包级共享。
func loadFamily() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(fonts.Family)
	for _, f := range []struct {
		style fonts.Style
		cs    canvas.FontStyle
	}{
		{fonts.Regular, canvas.FontRegular},
		{fonts.Bold, canvas.FontBold},
	} {
		data, err := fonts.Load(f.style)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, f.cs); err != nil {
			return nil, fmt.Errorf("加载 %s 字体失败: %w", f.style, err)
		}
	}
	return family, nil
}

func fontStyle(bold bool) canvas.FontStyle {
	if bold {
		return canvas.FontBold
	}
	return canvas.FontRegular
}
