package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/greentrain/pkg/utils"
)

// Align 文字水平对齐方式
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) textAlign() text.Align {
	switch a {
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// DrawText 绘制单行文字，(x, y) 为对齐点，垂直方向居中
// 字体为 nil 时不绘制；内置字体无法显示的表情符号会被移除
func DrawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, align Align) {
	if face == nil {
		return
	}
	s = utils.SanitizeText(s)
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align.textAlign()
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// DrawTextShadow 带阴影的文字
func DrawTextShadow(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, align Align) {
	DrawText(dst, s, face, x+2, y+2, color.RGBA{0, 0, 0, 120}, align)
	DrawText(dst, s, face, x, y, c, align)
}

// DrawWrappedText 在 maxWidth 内自动换行绘制文字
// y 为第一行的中心；返回实际占用的总高度
func DrawWrappedText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y, maxWidth float64, c color.Color, align Align) float64 {
	if face == nil {
		return 0
	}
	lines := utils.WrapText(utils.SanitizeText(s), face, maxWidth)
	lineHeight := face.Size * 1.3
	for i, line := range lines {
		DrawText(dst, line, face, x, y+float64(i)*lineHeight, c, align)
	}
	return float64(len(lines)) * lineHeight
}

// WrappedHeight 计算换行后的文字高度（不绘制）
func WrappedHeight(s string, face *text.GoTextFace, maxWidth float64) float64 {
	if face == nil {
		return 0
	}
	lines := utils.WrapText(utils.SanitizeText(s), face, maxWidth)
	return float64(len(lines)) * face.Size * 1.3
}

// MeasureText 测量单行文字宽度
func MeasureText(s string, face *text.GoTextFace) float64 {
	if face == nil {
		return 0
	}
	w, _ := text.Measure(utils.SanitizeText(s), face, 0)
	return w
}
