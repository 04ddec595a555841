package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/station"
	"github.com/gonewx/greentrain/pkg/utils"
)

// EntityStyle 站点实体的瞬时视觉状态（由场景的效果系统计算）
type EntityStyle struct {
	// ShakeX 拒绝时的水平抖动偏移
	ShakeX float64

	// Flash 成功高亮强度 [0, 1]
	Flash float64

	// Hover 拖拽物悬停在可接受的目标上
	Hover bool

	// Wrong 悬停的拖拽物与目标不匹配（投放会被拒绝）
	Wrong bool
}

// outline 根据悬停状态返回描边颜色，没有描边时返回 false
func (st EntityStyle) outline() (color.RGBA, bool) {
	switch {
	case st.Wrong:
		return ColorError, true
	case st.Hover:
		return ColorHighlight, true
	default:
		return color.RGBA{}, false
	}
}

// drawFlash 成功高亮光环
func drawFlash(dst *ebiten.Image, cx, cy, r, intensity float64) {
	if intensity <= 0 {
		return
	}
	FillCircle(dst, cx, cy, r*(1+0.3*(1-intensity)), utils.WithAlpha(ColorHighlight, 0.45*intensity))
}

// DrawSpot 种植点：土堆加当前状态（空、已播种、已长成）
func DrawSpot(dst *ebiten.Image, cx, cy float64, state station.SpotState, label string, face *text.GoTextFace, st EntityStyle, elapsed float64) {
	cx += st.ShakeX
	r := config.SpotRadius

	drawFlash(dst, cx, cy, r*1.3, st.Flash)
	FillEllipse(dst, cx, cy+r*0.35, r*1.05, r*0.45, utils.Darken(ColorSoil, 0.2))
	FillEllipse(dst, cx, cy+r*0.25, r, r*0.4, ColorSoil)
	if c, ok := st.outline(); ok {
		StrokeCircle(dst, cx, cy, r, 4, c)
	}

	switch state {
	case station.SpotEmpty:
		FillEllipse(dst, cx, cy+r*0.25, r*0.45, r*0.15, color.RGBA{87, 56, 33, 255})
	case station.SpotSeeded:
		for i := -1; i <= 1; i++ {
			FillEllipse(dst, cx+float64(i)*r*0.25, cy+r*0.22, r*0.08, r*0.05, color.RGBA{234, 179, 8, 255})
		}
		sway := math.Sin(elapsed*2) * 0.1
		drawSeedling(dst, cx+sway*10, cy-r*0.1, r*0.6)
	case station.SpotGrown:
		FillRect(dst, cx-r*0.1, cy-r*0.4, r*0.2, r*0.7, ColorWood)
		FillCircle(dst, cx, cy-r*0.9, r*0.6, ColorLeaf)
		FillCircle(dst, cx-r*0.4, cy-r*0.6, r*0.4, ColorLeaf)
		FillCircle(dst, cx+r*0.4, cy-r*0.6, r*0.4, ColorLeaf)
		FillCircle(dst, cx-r*0.15, cy-r*1.05, r*0.22, color.RGBA{74, 222, 128, 255})
	}

	if label != "" {
		tag := ColorInk
		if state == station.SpotGrown {
			tag = ColorSuccess
		}
		w := MeasureText(label, face) + 20
		FillRoundedRect(dst, cx-w/2, cy+r*0.8, w, 28, 14, utils.WithAlpha(ColorWhite, 0.9))
		DrawText(dst, label, face, cx, cy+r*0.8+14, tag, AlignCenter)
	}
}

// DrawToolChip 工具拖拽源（种子袋 / 水壶），badge 为左上角的编号
func DrawToolChip(dst *ebiten.Image, cx, cy float64, tool station.Tool, label, badge string, face *text.GoTextFace, dimmed bool) {
	s := config.ToolChipSize
	bg := color.RGBA{254, 243, 199, 255}
	if tool == station.ToolWater {
		bg = color.RGBA{224, 242, 254, 255}
	}
	if dimmed {
		bg = utils.WithAlpha(bg, 0.5)
	}
	FillRoundedRect(dst, cx-s/2+4, cy-s/2+6, s, s, 18, ColorShadow)
	FillRoundedRect(dst, cx-s/2, cy-s/2, s, s, 18, bg)
	StrokeRoundedRect(dst, cx-s/2, cy-s/2, s, s, 18, 3, ColorWhite)

	if tool == station.ToolWater {
		drawDroplet(dst, cx, cy-8, s*0.5)
	} else {
		drawSeedling(dst, cx, cy-8, s*0.5)
	}
	DrawText(dst, label, face, cx, cy+s*0.32, ColorInk, AlignCenter)

	if badge != "" {
		FillCircle(dst, cx-s/2+6, cy-s/2+6, 14, ColorInk)
		DrawText(dst, badge, face, cx-s/2+6, cy-s/2+6, ColorWhite, AlignCenter)
	}
}

// DrawTrash 漂浮的垃圾
func DrawTrash(dst *ebiten.Image, cx, cy float64, item station.TrashItem, st EntityStyle, elapsed float64) {
	cx += st.ShakeX
	cy += utils.Bob(elapsed+float64(item.ID), 2.4, 6)
	r := config.TrashRadius

	drawFlash(dst, cx, cy, r*1.2, st.Flash)
	FillCircle(dst, cx, cy+r*0.15, r, color.RGBA{255, 255, 255, 60})
	ring := color.RGBA{255, 255, 255, 200}
	if st.ShakeX != 0 {
		ring = ColorError
	}
	StrokeCircle(dst, cx, cy+r*0.15, r, 3, ring)
	DrawIcon(dst, item.Glyph, cx, cy, r*1.5)
}

// DrawBin 垃圾桶投放目标
func DrawBin(dst *ebiten.Image, area dnd.Rect, category station.Category, label string, face *text.GoTextFace, st EntityStyle) {
	x, y, w, h := area.X+st.ShakeX, area.Y, area.W, area.H
	body := color.RGBA{37, 99, 235, 255}
	if category == station.Organic {
		body = color.RGBA{22, 163, 74, 255}
	}
	if st.Wrong {
		body = mixRGBA(body, ColorError, 0.6)
	}

	FillRoundedRect(dst, x+4, y+8, w, h, 16, ColorShadow)
	FillPolygon(dst, []Point{{x + w*0.05, y + h*0.2}, {x + w*0.95, y + h*0.2}, {x + w*0.85, y + h}, {x + w*0.15, y + h}}, body)
	FillRoundedRect(dst, x, y, w, h*0.22, 10, utils.Darken(body, 0.2))
	if c, ok := st.outline(); ok {
		StrokeRoundedRect(dst, x-4, y-4, w+8, h+8, 18, 5, c)
	}
	if st.Flash > 0 {
		FillRoundedRect(dst, x, y, w, h, 16, utils.WithAlpha(ColorHighlight, 0.4*st.Flash))
	}

	// 回收标志或叶子
	cx, cy := x+w/2, y+h*0.5
	if category == station.Recyclable {
		for i := 0; i < 3; i++ {
			a := float64(i)*2*math.Pi/3 - math.Pi/2
			FillPolygon(dst, rotatedRect(cx+math.Cos(a)*18, cy+math.Sin(a)*18, 26, 8, a+math.Pi/2), ColorWhite)
		}
	} else {
		FillPolygon(dst, rotatedRect(cx, cy, 40, 18, -0.6), color.RGBA{187, 247, 208, 255})
	}
	DrawTextShadow(dst, label, face, x+w/2, y+h*0.82, ColorWhite, AlignCenter)
}

// BuildingSize 返回建筑的尺寸
func BuildingSize(kind station.BuildingKind) (float64, float64) {
	if kind == station.TallBuilding {
		return config.TallBuildingWidth, config.TallBuildingHeight
	}
	return config.HouseWidth, config.HouseHeight
}

// DrawBuilding 城市建筑，(x, y) 为屋顶左上角
// 亮灯的窗户为黄色，关灯后为深蓝；装好太阳能板后屋顶显示面板
func DrawBuilding(dst *ebiten.Image, x, y float64, b station.Building, st EntityStyle) {
	x += st.ShakeX
	w, h := BuildingSize(b.Kind)
	roof := config.RoofHeight

	wall := color.RGBA{203, 213, 225, 255}
	if b.Kind == station.House {
		wall = color.RGBA{254, 215, 170, 255}
	}

	FillRect(dst, x+6, y+roof+6, w, h-roof, ColorShadow)
	FillRect(dst, x, y+roof, w, h-roof, wall)

	// 屋顶（投放太阳能板的区域）
	roofColor := color.RGBA{185, 28, 28, 255}
	if b.Kind == station.TallBuilding {
		roofColor = color.RGBA{71, 85, 105, 255}
	}
	if b.Kind == station.House {
		FillPolygon(dst, []Point{{x - 10, y + roof}, {x + w/2, y - roof*0.4}, {x + w + 10, y + roof}}, roofColor)
	} else {
		FillRect(dst, x-6, y+roof*0.4, w+12, roof*0.6, roofColor)
	}
	if c, ok := st.outline(); ok {
		StrokeRoundedRect(dst, x-8, y-roof*0.5, w+16, roof*1.6, 8, 4, c)
	}
	if b.HasPanel {
		drawSolarPanel(dst, x+w/2, y+roof*0.35, w*0.6, roof*0.7, -0.15)
	}
	drawFlash(dst, x+w/2, y+roof/2, w*0.6, st.Flash)

	// 窗户
	window := color.RGBA{30, 58, 138, 255}
	if b.LightsOn {
		window = color.RGBA{253, 224, 71, 255}
	}
	cols, rows := 2, 2
	if b.Kind == station.TallBuilding {
		rows = 5
	}
	ww, wh := w*0.24, (h-roof)*0.6/float64(rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			wx := x + w*0.15 + float64(c)*w*0.46
			wy := y + roof + 14 + float64(r)*(wh+10)
			FillRect(dst, wx, wy, ww, wh*0.85, window)
			if b.LightsOn {
				FillRect(dst, wx-3, wy-3, ww+6, wh*0.85+6, color.RGBA{253, 224, 71, 50})
			}
		}
	}
	if b.Kind == station.House {
		FillRoundedRect(dst, x+w*0.4, y+h-40, w*0.2, 40, 4, ColorWood)
	}

	// 电灯开关
	sx, sy := x+w/2, y+h-16
	if b.Kind == station.TallBuilding {
		sy = y + h - 24
	}
	FillRoundedRect(dst, sx-14, sy-10, 28, 20, 6, ColorInk)
	knob := ColorSuccess
	if !b.LightsOn {
		knob = ColorLocked
	}
	offset := 6.0
	if !b.LightsOn {
		offset = -6
	}
	FillCircle(dst, sx+offset, sy, 7, knob)
}

// drawSolarPanel 太阳能板（倾斜的网格）
func drawSolarPanel(dst *ebiten.Image, cx, cy, w, h, tilt float64) {
	FillPolygon(dst, rotatedRect(cx, cy, w, h, tilt), color.RGBA{30, 64, 175, 255})
	for i := 1; i < 4; i++ {
		dx := -w/2 + float64(i)*w/4
		x0 := cx + dx*math.Cos(tilt) - (-h/2)*math.Sin(tilt)
		y0 := cy + dx*math.Sin(tilt) + (-h/2)*math.Cos(tilt)
		x1 := cx + dx*math.Cos(tilt) - (h/2)*math.Sin(tilt)
		y1 := cy + dx*math.Sin(tilt) + (h/2)*math.Cos(tilt)
		Line(dst, x0, y0, x1, y1, 2, color.RGBA{147, 197, 253, 255})
	}
	Line(dst, cx-w/2*math.Cos(tilt), cy-w/2*math.Sin(tilt), cx+w/2*math.Cos(tilt), cy+w/2*math.Sin(tilt), 2, color.RGBA{147, 197, 253, 255})
}

// DrawSolarPanelChip 太阳能板拖拽源
func DrawSolarPanelChip(dst *ebiten.Image, cx, cy float64, label string, face *text.GoTextFace) {
	w, h := config.PanelChipWidth, config.PanelChipHeight
	FillRoundedRect(dst, cx-w/2+4, cy-h/2+6, w, h+24, 14, ColorShadow)
	FillRoundedRect(dst, cx-w/2, cy-h/2, w, h+24, 14, color.RGBA{254, 249, 195, 255})
	drawSolarPanel(dst, cx, cy, w*0.75, h*0.6, 0)
	DrawText(dst, label, face, cx, cy+h/2+8, ColorInk, AlignCenter)
}

// DrawAnimalCage 笼子里的动物
func DrawAnimalCage(dst *ebiten.Image, cx, cy float64, a station.Animal, face *text.GoTextFace, st EntityStyle) {
	cx += st.ShakeX
	s := config.CageSize
	FillRoundedRect(dst, cx-s/2+4, cy-s/2+6, s, s, 12, ColorShadow)
	FillRoundedRect(dst, cx-s/2, cy-s/2, s, s, 12, color.RGBA{254, 243, 199, 255})
	DrawIcon(dst, a.Glyph, cx, cy-6, s*0.7)
	for i := 0; i < 5; i++ {
		x := cx - s/2 + 8 + float64(i)*(s-16)/4
		Line(dst, x, cy-s/2, x, cy+s/2, 4, color.RGBA{100, 116, 139, 220})
	}
	StrokeRoundedRect(dst, cx-s/2, cy-s/2, s, s, 12, 5, color.RGBA{71, 85, 105, 255})
	DrawText(dst, a.Name, face, cx, cy+s/2+16, ColorInk, AlignCenter)
}

// DrawHabitat 栖息地投放区域，rescued 为已放归该区域的动物
func DrawHabitat(dst *ebiten.Image, area dnd.Rect, habitat station.Habitat, label string, rescued []station.Animal, face *text.GoTextFace, st EntityStyle, elapsed float64) {
	x, y, w, h := area.X+st.ShakeX, area.Y, area.W, area.H
	bg := color.RGBA{187, 247, 208, 230}
	if habitat == station.Sky {
		bg = color.RGBA{186, 230, 253, 230}
	}
	if st.Wrong {
		bg = mixRGBA(bg, ColorError, 0.4)
	}
	FillRoundedRect(dst, x, y, w, h, 24, bg)
	if c, ok := st.outline(); ok {
		StrokeRoundedRect(dst, x, y, w, h, 24, 5, c)
	} else {
		StrokeRoundedRect(dst, x, y, w, h, 24, 3, ColorWhite)
	}
	if st.Flash > 0 {
		FillRoundedRect(dst, x, y, w, h, 24, utils.WithAlpha(ColorHighlight, 0.35*st.Flash))
	}

	if habitat == station.Tree {
		drawPine(dst, x+50, y+h*0.55, 80)
		drawPine(dst, x+w-50, y+h*0.55, 70)
	} else {
		drawCloudPuff(dst, x+60, y+50, 0.6)
		drawCloudPuff(dst, x+w-70, y+h-50, 0.5)
	}
	DrawTextShadow(dst, label, face, x+w/2, y+24, ColorWhite, AlignCenter)

	// 放归的动物排成一行
	if n := len(rescued); n > 0 {
		spacing := math.Min(80, (w-40)/float64(n))
		startX := x + w/2 - spacing*float64(n-1)/2
		for i, a := range rescued {
			ay := y + h*0.6 + utils.Bob(elapsed+float64(i)*0.4, 1.6, 6)
			DrawIcon(dst, a.Glyph, startX+float64(i)*spacing, ay, 64)
		}
	}
}

func drawCloudPuff(dst *ebiten.Image, cx, cy, s float64) {
	c := color.RGBA{255, 255, 255, 230}
	FillEllipse(dst, cx, cy, 60*s, 24*s, c)
	FillEllipse(dst, cx-35*s, cy+6*s, 40*s, 18*s, c)
	FillEllipse(dst, cx+38*s, cy+5*s, 42*s, 20*s, c)
}

// DrawPayloadPreview 拖拽预览，始终绘制在最上层
func DrawPayloadPreview(dst *ebiten.Image, p dnd.Payload, cx, cy float64, face *text.GoTextFace) {
	shadow := utils.WithAlpha(color.RGBA{0, 0, 0, 255}, 0.25)
	FillEllipse(dst, cx+6, cy+config.ToolChipSize*0.45, 40, 10, shadow)

	switch p.Kind {
	case dnd.KindTool:
		DrawToolChip(dst, cx, cy, station.Tool(p.Tag), p.Label, "", face, false)
	case dnd.KindSolarPanel:
		drawSolarPanel(dst, cx, cy, config.PanelChipWidth*0.8, config.PanelChipHeight*0.6, -0.1)
	case dnd.KindTrash:
		FillCircle(dst, cx, cy, config.TrashRadius, color.RGBA{255, 255, 255, 120})
		DrawIcon(dst, p.Glyph, cx, cy, config.TrashRadius*1.6)
	case dnd.KindAnimal:
		FillCircle(dst, cx, cy, config.CageSize*0.45, color.RGBA{254, 243, 199, 220})
		DrawIcon(dst, p.Glyph, cx, cy, config.CageSize*0.75)
	default:
		FillCircle(dst, cx, cy, 20, ColorHighlight)
	}
}
