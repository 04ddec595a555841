package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/utils"
)

// DrawSpeechBubble 引导气泡，尾巴指向左下方的角色
// isError 为 true 时使用红色边框；返回气泡高度
func DrawSpeechBubble(dst *ebiten.Image, x, y, w float64, msg string, face *text.GoTextFace, isError bool) float64 {
	const padding = 18.0
	textH := WrappedHeight(msg, face, w-padding*2)
	h := math.Max(64, textH+padding*2)

	border := ColorSuccess
	if isError {
		border = ColorError
	}

	FillRoundedRect(dst, x+4, y+6, w, h, 22, ColorShadow)
	FillPolygon(dst, []Point{{x + 40, y + h - 2}, {x + 10, y + h + 34}, {x + 80, y + h - 2}}, border)
	FillRoundedRect(dst, x, y, w, h, 22, ColorWhite)
	StrokeRoundedRect(dst, x, y, w, h, 22, 4, border)

	var face0 float64
	if face != nil {
		face0 = face.Size * 1.3 / 2
	}
	DrawWrappedText(dst, msg, face, x+padding, y+padding+face0, w-padding*2, ColorInk, AlignLeft)
	return h
}

// DrawHeader 站点标题横幅
func DrawHeader(dst *ebiten.Image, title string, c color.RGBA, face *text.GoTextFace) {
	w := math.Max(420, MeasureText(title, face)+80)
	x := (float64(config.ScreenWidth) - w) / 2
	y := config.HeaderY - config.HeaderHeight/2
	FillRoundedRect(dst, x+4, y+6, w, config.HeaderHeight, config.HeaderHeight/2, ColorShadow)
	FillRoundedRect(dst, x, y, w, config.HeaderHeight, config.HeaderHeight/2, c)
	StrokeRoundedRect(dst, x, y, w, config.HeaderHeight, config.HeaderHeight/2, 3, utils.Lighten(c, 0.4))
	DrawTextShadow(dst, title, face, x+w/2, config.HeaderY, ColorWhite, AlignCenter)
}

// DrawProgressCounter 站点进度 "N / M"
func DrawProgressCounter(dst *ebiten.Image, done, total int, c color.RGBA, face *text.GoTextFace) {
	x, y := config.ProgressCounterX, config.ProgressCounterY
	w, h := 130.0, 48.0
	FillRoundedRect(dst, x, y, w, h, h/2, utils.WithAlpha(ColorWhite, 0.9))
	StrokeRoundedRect(dst, x, y, w, h, h/2, 3, c)

	frac := 0.0
	if total > 0 {
		frac = float64(done) / float64(total)
	}
	FillCircle(dst, x+h/2, y+h/2, 14, utils.WithAlpha(c, 0.25))
	if frac > 0 {
		FillStar(dst, x+h/2, y+h/2, 12+4*frac, 6, 5, 0, c)
	}
	DrawText(dst, fmt.Sprintf("%d / %d", done, total), face, x+h+(w-h)/2-4, y+h/2, ColorInk, AlignCenter)
}

// DrawBadge 圆形成就徽章，带图标和标签
func DrawBadge(dst *ebiten.Image, cx, cy, r float64, glyph, label string, c color.RGBA, face *text.GoTextFace) {
	FillCircle(dst, cx+3, cy+5, r, ColorShadow)
	FillCircle(dst, cx, cy, r, c)
	FillCircle(dst, cx, cy, r*0.82, utils.Lighten(c, 0.55))
	DrawIcon(dst, glyph, cx, cy, r*1.1)
	if label != "" {
		w := MeasureText(label, face) + 24
		FillRoundedRect(dst, cx-w/2, cy+r+8, w, 30, 15, utils.WithAlpha(ColorWhite, 0.9))
		DrawText(dst, label, face, cx, cy+r+23, ColorInk, AlignCenter)
	}
}

// Logo 游戏标题（两行），首次绘制时渲染到离屏图像，之后只做缩放
type Logo struct {
	line1, line2 string
	small, large *text.GoTextFace
	image        *ebiten.Image
	w, h         float64
}

// NewLogo 创建标题
func NewLogo(line1, line2 string, small, large *text.GoTextFace) *Logo {
	return &Logo{line1: line1, line2: line2, small: small, large: large}
}

func (l *Logo) render() {
	l.w = math.Max(MeasureText(l.line2, l.large), MeasureText(l.line1, l.small)) + 160
	l.h = 170
	l.image = ebiten.NewImage(int(l.w)+20, int(l.h)+20)

	w, h := l.w, l.h
	FillRoundedRect(l.image, 8, 12, w, h, 40, ColorShadow)
	FillRoundedRect(l.image, 0, 0, w, h, 40, color.RGBA{22, 163, 74, 255})
	StrokeRoundedRect(l.image, 6, 6, w-12, h-12, 34, 4, color.RGBA{187, 247, 208, 255})
	DrawText(l.image, l.line1, l.small, w/2, 48, color.RGBA{254, 249, 195, 255}, AlignCenter)
	DrawTextShadow(l.image, l.line2, l.large, w/2, 110, ColorWhite, AlignCenter)
	drawPine(l.image, 45, h-50, 50)
	drawPine(l.image, w-45, h-50, 50)
}

// Draw 以 (cx, cy) 为中心绘制，appear ∈ [0, 1] 为弹入动画进度
func (l *Logo) Draw(dst *ebiten.Image, cx, cy, appear float64) {
	s := utils.EaseOutBack(utils.Clamp01(appear))
	if s <= 0 {
		return
	}
	if l.image == nil {
		l.render()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-l.w/2, -l.h/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(l.image, op)
}

// Dispose 释放离屏图像
func (l *Logo) Dispose() {
	if l.image != nil {
		l.image.Deallocate()
		l.image = nil
	}
}

// DrawPanel 半透明白色面板
func DrawPanel(dst *ebiten.Image, x, y, w, h float64) {
	FillRoundedRect(dst, x+5, y+8, w, h, 28, ColorShadow)
	FillRoundedRect(dst, x, y, w, h, 28, color.RGBA{255, 255, 255, 235})
}
