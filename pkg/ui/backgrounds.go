package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/utils"
)

const (
	screenW = float64(config.ScreenWidth)
	screenH = float64(config.ScreenHeight)
)

// mixRGBA 在两种颜色间插值
func mixRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp01(t)
	return color.RGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

// DrawClouds 漂浮的云（视差：远处的云更小更慢）
func DrawClouds(dst *ebiten.Image, elapsed float64, tint color.RGBA) {
	layers := []struct {
		y, scale, speed, offset float64
	}{
		{70, 0.6, 12, 0},
		{130, 0.8, 20, 500},
		{90, 1.0, 30, 900},
	}
	for _, l := range layers {
		span := screenW + 300
		x := math.Mod(l.offset+elapsed*l.speed, span) - 150
		s := l.scale
		FillEllipse(dst, x, l.y, 70*s, 26*s, tint)
		FillEllipse(dst, x-40*s, l.y+8*s, 45*s, 20*s, tint)
		FillEllipse(dst, x+45*s, l.y+6*s, 50*s, 22*s, tint)
	}
}

// DrawLandscape 开始画面与地图的全景背景
// progress ∈ [0, 1]：山丘从干旱的黄褐色逐渐变绿
func DrawLandscape(dst *ebiten.Image, progress, elapsed float64) {
	progress = utils.Clamp01(progress)
	FillVerticalGradient(dst, 0, 0, screenW, screenH*0.7,
		mixRGBA(color.RGBA{203, 213, 225, 255}, color.RGBA{56, 189, 248, 255}, progress),
		color.RGBA{224, 242, 254, 255}, 24)
	DrawClouds(dst, elapsed, color.RGBA{255, 255, 255, 220})

	far := mixRGBA(color.RGBA{180, 150, 110, 255}, color.RGBA{74, 222, 128, 255}, progress)
	near := mixRGBA(color.RGBA{161, 120, 82, 255}, color.RGBA{22, 163, 74, 255}, progress)

	FillEllipse(dst, screenW*0.2, screenH*0.78, screenW*0.4, screenH*0.25, far)
	FillEllipse(dst, screenW*0.8, screenH*0.8, screenW*0.45, screenH*0.28, far)
	FillRect(dst, 0, screenH*0.8, screenW, screenH*0.2, near)
	FillEllipse(dst, screenW*0.5, screenH*0.86, screenW*0.6, screenH*0.12, near)

	// 进度越高，山丘上的树越多
	trees := int(progress * 12)
	for i := 0; i < trees; i++ {
		x := 60 + float64(i)*screenW/12
		y := screenH*0.8 - 10 + 8*math.Sin(float64(i)*1.7)
		drawPine(dst, x, y, 50)
	}
}

// DrawForestBackdrop 植树站点背景
// completed 时天空更蓝并出现鸟和蝴蝶
func DrawForestBackdrop(dst *ebiten.Image, completed bool, elapsed float64) {
	top := color.RGBA{186, 230, 253, 255}
	if completed {
		top = color.RGBA{56, 189, 248, 255}
	}
	FillVerticalGradient(dst, 0, 0, screenW, screenH*0.55, top, color.RGBA{240, 253, 244, 255}, 20)
	DrawClouds(dst, elapsed, color.RGBA{255, 255, 255, 200})
	FillEllipse(dst, screenW*0.15, screenH*0.58, screenW*0.3, screenH*0.12, color.RGBA{134, 239, 172, 255})
	FillEllipse(dst, screenW*0.75, screenH*0.57, screenW*0.35, screenH*0.13, color.RGBA{134, 239, 172, 255})
	FillRect(dst, 0, screenH*0.55, screenW, screenH*0.45, ColorGrass)
	FillRect(dst, 0, screenH*0.8, screenW, screenH*0.2, color.RGBA{34, 197, 94, 255})

	if completed {
		for i := 0; i < 3; i++ {
			x := math.Mod(elapsed*60+float64(i)*400, screenW+100) - 50
			y := 120 + float64(i)*40 + utils.Bob(elapsed+float64(i), 1.2, 12)
			drawBird(dst, x, y, 40)
		}
		for i := 0; i < 4; i++ {
			x := 150 + float64(i)*300 + utils.Bob(elapsed+float64(i), 3, 30)
			y := screenH*0.45 + utils.Bob(elapsed*1.3+float64(i), 1.5, 20)
			drawButterfly(dst, x, y, 30)
		}
	}
}

// RiverBand 河流的垂直范围
const (
	RiverTop    = 0.12
	RiverBottom = 0.66
)

// DrawRiverBackdrop 河流站点背景
// 未完成时河水浑浊，完成后变清澈并有鱼游动
func DrawRiverBackdrop(dst *ebiten.Image, completed bool, elapsed float64) {
	FillRect(dst, 0, 0, screenW, screenH, color.RGBA{187, 247, 208, 255})

	water := color.RGBA{120, 113, 80, 255}
	deep := color.RGBA{87, 83, 58, 255}
	if completed {
		water = color.RGBA{56, 189, 248, 255}
		deep = color.RGBA{14, 165, 233, 255}
	}
	y0, y1 := screenH*RiverTop, screenH*RiverBottom
	FillVerticalGradient(dst, 0, y0, screenW, y1-y0, water, deep, 16)

	// 水波
	for row := 0; row < 4; row++ {
		y := y0 + 40 + float64(row)*(y1-y0-60)/3
		for i := 0; i < 8; i++ {
			x := math.Mod(float64(i)*180+elapsed*25*float64(row%2*2-1)+2000, screenW+100) - 50
			Line(dst, x, y, x+50, y, 3, color.RGBA{255, 255, 255, 80})
		}
	}

	if completed {
		for i := 0; i < 3; i++ {
			x := math.Mod(elapsed*70+float64(i)*450, screenW+120) - 60
			y := y0 + 80 + float64(i)*90 + utils.Bob(elapsed+float64(i), 2, 10)
			drawFish(dst, x, y, 46)
		}
	}

	FillRect(dst, 0, y1, screenW, screenH-y1, color.RGBA{134, 239, 172, 255})
}

// DrawCityBackdrop 能源站点背景
// 未完成时天空被烟雾笼罩，完成后变晴朗
func DrawCityBackdrop(dst *ebiten.Image, completed bool, elapsed float64) {
	top := color.RGBA{148, 163, 184, 255}
	bottom := color.RGBA{203, 213, 225, 255}
	if completed {
		top = color.RGBA{56, 189, 248, 255}
		bottom = color.RGBA{224, 242, 254, 255}
	}
	FillVerticalGradient(dst, 0, 0, screenW, screenH*0.8, top, bottom, 20)

	if completed {
		drawSunIcon(dst, screenW*0.9, 90, 110)
	} else {
		for i := 0; i < 5; i++ {
			x := math.Mod(float64(i)*280+elapsed*15, screenW+200) - 100
			FillEllipse(dst, x, 110+float64(i%2)*50, 140, 40, color.RGBA{100, 116, 139, 110})
		}
	}

	// 远景楼群
	skyline := color.RGBA{100, 116, 139, 255}
	if completed {
		skyline = color.RGBA{125, 211, 252, 255}
	}
	for i := 0; i < 10; i++ {
		h := 120 + float64((i*53)%110)
		FillRect(dst, float64(i)*130, screenH*0.8-h, 110, h, skyline)
	}
	FillRect(dst, 0, screenH*0.8, screenW, screenH*0.2, color.RGBA{71, 85, 105, 255})
	for i := 0; i < 16; i++ {
		FillRect(dst, float64(i)*90+20, screenH*0.89, 50, 6, color.RGBA{250, 204, 21, 255})
	}
}

// DrawMountainBackdrop 动物站点背景
func DrawMountainBackdrop(dst *ebiten.Image, completed bool, elapsed float64) {
	top := color.RGBA{165, 180, 252, 255}
	if completed {
		top = color.RGBA{96, 165, 250, 255}
	}
	FillVerticalGradient(dst, 0, 0, screenW, screenH*0.6, top, color.RGBA{236, 254, 255, 255}, 20)
	DrawClouds(dst, elapsed, color.RGBA{255, 255, 255, 180})

	rock := color.RGBA{120, 113, 108, 255}
	FillPolygon(dst, []Point{{-100, screenH * 0.62}, {screenW * 0.3, screenH * 0.12}, {screenW * 0.65, screenH * 0.62}}, rock)
	FillPolygon(dst, []Point{{screenW * 0.4, screenH * 0.62}, {screenW * 0.75, screenH * 0.2}, {screenW + 100, screenH * 0.62}}, utils.Darken(rock, 0.15))
	// 雪顶
	FillPolygon(dst, []Point{{screenW * 0.3, screenH * 0.12}, {screenW * 0.36, screenH * 0.2}, {screenW * 0.24, screenH * 0.2}}, ColorWhite)
	FillPolygon(dst, []Point{{screenW * 0.75, screenH * 0.2}, {screenW * 0.8, screenH * 0.27}, {screenW * 0.7, screenH * 0.27}}, ColorWhite)

	FillRect(dst, 0, screenH*0.6, screenW, screenH*0.4, color.RGBA{74, 222, 128, 255})
	if completed {
		drawEagle(dst, math.Mod(elapsed*50, screenW+100)-50, 140+utils.Bob(elapsed, 2.5, 15), 60)
	}
}

// DrawCelebrationBackdrop 奖励与终点画面的放射状背景
func DrawCelebrationBackdrop(dst *ebiten.Image, base color.RGBA, elapsed float64) {
	FillVerticalGradient(dst, 0, 0, screenW, screenH, utils.Lighten(base, 0.3), utils.Darken(base, 0.2), 24)
	cx, cy := screenW/2, screenH*0.42
	rays := 16
	for i := 0; i < rays; i += 2 {
		a0 := elapsed*0.15 + float64(i)*2*math.Pi/float64(rays)
		a1 := a0 + 2*math.Pi/float64(rays)
		FillPolygon(dst, []Point{
			{cx, cy},
			{cx + math.Cos(a0)*1200, cy + math.Sin(a0)*1200},
			{cx + math.Cos(a1)*1200, cy + math.Sin(a1)*1200},
		}, color.RGBA{255, 255, 255, 28})
	}
}
