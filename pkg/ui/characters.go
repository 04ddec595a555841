package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/greentrain/pkg/utils"
)

// 角色基础尺寸（SizeMedium）
const (
	sunRadius   = 70.0
	earthRadius = 80.0
	trainLength = 300.0
)

// drawFace 绘制眼睛和嘴巴
// 开心时是笑脸加腮红，否则是担忧的表情
func drawFace(dst *ebiten.Image, cx, cy, r float64, happy bool) {
	eyeDX, eyeY := r*0.32, cy-r*0.12
	if happy {
		// 眯眼
		for _, dx := range []float64{-eyeDX, eyeDX} {
			var p vector.Path
			p.Arc(float32(cx+dx), float32(eyeY+r*0.05), float32(r*0.12), math.Pi*1.15, math.Pi*1.85, vector.Clockwise)
			strokePath(dst, &p, r*0.06, ColorInk)
		}
		FillEllipse(dst, cx-r*0.5, cy+r*0.12, r*0.13, r*0.08, color.RGBA{244, 114, 182, 160})
		FillEllipse(dst, cx+r*0.5, cy+r*0.12, r*0.13, r*0.08, color.RGBA{244, 114, 182, 160})
	} else {
		FillCircle(dst, cx-eyeDX, eyeY, r*0.09, ColorInk)
		FillCircle(dst, cx+eyeDX, eyeY, r*0.09, ColorInk)
	}

	var mouth vector.Path
	if happy {
		mouth.Arc(float32(cx), float32(cy+r*0.1), float32(r*0.3), math.Pi*0.15, math.Pi*0.85, vector.Clockwise)
	} else {
		mouth.Arc(float32(cx), float32(cy+r*0.48), float32(r*0.22), math.Pi*1.2, math.Pi*1.8, vector.Clockwise)
	}
	strokePath(dst, &mouth, r*0.07, ColorInk)
}

// DrawSun 太阳角色，光芒缓慢旋转
func DrawSun(dst *ebiten.Image, cx, cy float64, props CharacterProps, elapsed float64) {
	r := sunRadius * props.Size.Scale()
	rot := elapsed * 0.4
	outer := r * 1.45
	if props.Happy {
		outer = r * (1.45 + 0.08*math.Sin(elapsed*4))
	}
	FillStar(dst, cx, cy, outer, r*1.05, 12, rot, color.RGBA{251, 191, 36, 255})
	FillCircle(dst, cx, cy, r, color.RGBA{253, 224, 71, 255})
	FillCircle(dst, cx-r*0.3, cy-r*0.35, r*0.25, color.RGBA{254, 240, 138, 180})
	drawFace(dst, cx, cy, r, props.Happy)
}

// DrawEarth 地球角色
// 开心时大陆更绿，否则偏黄褐色
func DrawEarth(dst *ebiten.Image, cx, cy float64, props CharacterProps, elapsed float64) {
	r := earthRadius * props.Size.Scale()
	cy += utils.Bob(elapsed, 3, r*0.05)

	ocean := color.RGBA{59, 130, 246, 255}
	land := color.RGBA{34, 197, 94, 255}
	if !props.Happy {
		ocean = color.RGBA{96, 165, 250, 255}
		land = color.RGBA{202, 138, 4, 255}
	}

	FillCircle(dst, cx, cy, r, ocean)
	FillEllipse(dst, cx-r*0.35, cy-r*0.35, r*0.35, r*0.25, land)
	FillEllipse(dst, cx+r*0.4, cy+r*0.1, r*0.3, r*0.4, land)
	FillEllipse(dst, cx-r*0.3, cy+r*0.5, r*0.3, r*0.18, land)
	StrokeCircle(dst, cx, cy, r, r*0.05, color.RGBA{30, 64, 175, 255})
	drawFace(dst, cx, cy, r*0.8, props.Happy)
}

// TrainProps 火车渲染属性
type TrainProps struct {
	CharacterProps

	// Color 车头颜色（通常是所选角色的颜色）
	Color color.RGBA

	// Moving 车轮转动、冒出烟雾
	Moving bool
}

// DrawTrain 绿色火车，(x, y) 为车头底部中心
func DrawTrain(dst *ebiten.Image, x, y float64, props TrainProps, elapsed float64) {
	s := props.Size.Scale()
	length := trainLength * s
	bodyH := 90 * s
	wheelR := 22 * s

	bounce := 0.0
	if props.Moving {
		bounce = math.Abs(math.Sin(elapsed*10)) * 3 * s
	}
	top := y - wheelR - bodyH - bounce

	engine := props.Color
	if engine.A == 0 {
		engine = color.RGBA{22, 163, 74, 255}
	}

	// 车厢
	carX := x - length*0.55
	FillRoundedRect(dst, carX, top+bodyH*0.2, length*0.42, bodyH*0.8, 10*s, color.RGBA{250, 204, 21, 255})
	FillRoundedRect(dst, carX+length*0.05, top+bodyH*0.32, length*0.12, bodyH*0.3, 6*s, color.RGBA{224, 242, 254, 255})
	FillRoundedRect(dst, carX+length*0.24, top+bodyH*0.32, length*0.12, bodyH*0.3, 6*s, color.RGBA{224, 242, 254, 255})
	Line(dst, carX+length*0.42, top+bodyH*0.8, x-length*0.08, top+bodyH*0.8, 4*s, ColorInk)

	// 车头
	headX := x - length*0.1
	FillRoundedRect(dst, headX, top+bodyH*0.3, length*0.45, bodyH*0.7, 12*s, engine)
	FillRoundedRect(dst, headX, top-bodyH*0.15, length*0.2, bodyH*0.55, 8*s, utils.Darken(engine, 0.2))
	FillRoundedRect(dst, headX+length*0.03, top-bodyH*0.05, length*0.14, bodyH*0.3, 5*s, color.RGBA{224, 242, 254, 255})
	FillRect(dst, headX+length*0.3, top, length*0.07, bodyH*0.32, ColorInk)
	FillPolygon(dst, []Point{
		{headX + length*0.45, top + bodyH*0.55},
		{headX + length*0.55, top + bodyH},
		{headX + length*0.45, top + bodyH},
	}, color.RGBA{239, 68, 68, 255})
	FillCircle(dst, headX+length*0.44, top+bodyH*0.45, 8*s, ColorHighlight)

	// 烟雾
	if props.Moving {
		for i := 0; i < 3; i++ {
			t := math.Mod(elapsed*0.8+float64(i)/3, 1)
			alpha := 1 - t
			FillCircle(dst,
				headX+length*0.335-t*length*0.25,
				top-t*90*s,
				(10+t*18)*s,
				utils.WithAlpha(color.RGBA{241, 245, 249, 255}, alpha*0.8))
		}
	}

	// 车轮
	spin := 0.0
	if props.Moving {
		spin = elapsed * 8
	}
	for _, wx := range []float64{carX + length*0.1, carX + length*0.32, headX + length*0.1, headX + length*0.34} {
		FillCircle(dst, wx, y-wheelR, wheelR, ColorInk)
		FillCircle(dst, wx, y-wheelR, wheelR*0.45, ColorLocked)
		Line(dst, wx, y-wheelR, wx+math.Cos(spin)*wheelR*0.9, y-wheelR+math.Sin(spin)*wheelR*0.9, 3*s, ColorLocked)
	}

	if props.Happy {
		FillStar(dst, headX+length*0.1, top-bodyH*0.35, 12*s, 5*s, 5, elapsed, ColorHighlight)
	}
}
