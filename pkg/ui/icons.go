package ui

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// IconDrawer 在 (cx, cy) 为中心、边长约 size 的区域内绘制图标
type IconDrawer func(dst *ebiten.Image, cx, cy, size float64)

// icons 内容配置中出现的表情符号对应的矢量图标
// 内置字体不含表情字形，所以每个用到的符号都有一个矢量版本
var icons = map[string]IconDrawer{
	"🐦": drawBird,
	"🦋": drawButterfly,
	"🌲": drawPine,
	"🌳": drawPine,
	"🌱": drawSeedling,
	"🐠": drawFish,
	"🐟": drawFish,
	"🦀": drawCrab,
	"🐙": drawOctopus,
	"☀": drawSunIcon,
	"💡": drawBulb,
	"🌬": drawWind,
	"🦥": drawSloth,
	"🐒": drawMonkey,
	"🦍": drawGorilla,
	"🦅": drawEagle,
	"🦜": drawParrot,
	"🧴": drawBottle,
	"🍌": drawBanana,
	"🥫": drawCan,
	"🍎": drawApple,
	"🥤": drawCup,
	"🦴": drawBone,
	"💃": drawDancer,
	"🤠": drawCowboy,
	"🔭": drawTelescope,
	"💧": drawDroplet,
	"🔥": drawFlame,
}

// iconKey 去掉变体选择符，"☀️" 与 "☀" 视为同一图标
func iconKey(glyph string) string {
	return strings.TrimSpace(strings.ReplaceAll(glyph, "\uFE0F", ""))
}

// HasIcon 是否有对应的矢量图标
func HasIcon(glyph string) bool {
	_, ok := icons[iconKey(glyph)]
	return ok
}

// DrawIcon 绘制表情符号对应的矢量图标，没有对应图标时绘制一颗星
func DrawIcon(dst *ebiten.Image, glyph string, cx, cy, size float64) {
	if d, ok := icons[iconKey(glyph)]; ok {
		d(dst, cx, cy, size)
		return
	}
	FillStar(dst, cx, cy, size*0.45, size*0.2, 5, 0, ColorHighlight)
}

// rotatedRect 以 (cx, cy) 为中心、旋转 angle 弧度的矩形顶点
func rotatedRect(cx, cy, w, h, angle float64) []Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	hw, hh := w/2, h/2
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	pts := make([]Point, 4)
	for i, c := range corners {
		pts[i] = Point{cx + c[0]*cos - c[1]*sin, cy + c[0]*sin + c[1]*cos}
	}
	return pts
}

func eye(dst *ebiten.Image, x, y, r float64) {
	FillCircle(dst, x, y, r, ColorWhite)
	FillCircle(dst, x+r*0.2, y, r*0.55, ColorInk)
}

func drawBird(dst *ebiten.Image, cx, cy, s float64) {
	body := color.RGBA{59, 130, 246, 255}
	FillEllipse(dst, cx, cy+s*0.05, s*0.32, s*0.24, body)
	FillCircle(dst, cx+s*0.24, cy-s*0.15, s*0.16, body)
	FillPolygon(dst, []Point{{cx + s*0.38, cy - s*0.18}, {cx + s*0.5, cy - s*0.12}, {cx + s*0.38, cy - s*0.08}}, color.RGBA{251, 191, 36, 255})
	FillEllipse(dst, cx-s*0.05, cy, s*0.18, s*0.1, color.RGBA{37, 99, 235, 255})
	FillPolygon(dst, []Point{{cx - s*0.28, cy}, {cx - s*0.5, cy - s*0.1}, {cx - s*0.45, cy + s*0.12}}, body)
	eye(dst, cx+s*0.28, cy-s*0.18, s*0.05)
}

func drawButterfly(dst *ebiten.Image, cx, cy, s float64) {
	wing := color.RGBA{249, 115, 22, 255}
	wing2 := color.RGBA{251, 146, 60, 255}
	FillEllipse(dst, cx-s*0.2, cy-s*0.14, s*0.2, s*0.18, wing)
	FillEllipse(dst, cx+s*0.2, cy-s*0.14, s*0.2, s*0.18, wing)
	FillEllipse(dst, cx-s*0.16, cy+s*0.16, s*0.14, s*0.13, wing2)
	FillEllipse(dst, cx+s*0.16, cy+s*0.16, s*0.14, s*0.13, wing2)
	FillEllipse(dst, cx, cy, s*0.05, s*0.3, ColorInk)
	Line(dst, cx, cy-s*0.28, cx-s*0.1, cy-s*0.44, 2, ColorInk)
	Line(dst, cx, cy-s*0.28, cx+s*0.1, cy-s*0.44, 2, ColorInk)
}

func drawPine(dst *ebiten.Image, cx, cy, s float64) {
	FillRect(dst, cx-s*0.06, cy+s*0.25, s*0.12, s*0.22, ColorWood)
	for i, w := range []float64{0.42, 0.34, 0.24} {
		top := cy - s*0.48 + float64(i)*s*0.18
		base := top + s*0.42
		FillPolygon(dst, []Point{{cx, top}, {cx + s*w, base}, {cx - s*w, base}}, ColorLeaf)
	}
}

func drawSeedling(dst *ebiten.Image, cx, cy, s float64) {
	Line(dst, cx, cy+s*0.4, cx, cy-s*0.05, s*0.06, ColorLeaf)
	FillPolygon(dst, rotatedRect(cx-s*0.17, cy-s*0.12, s*0.34, s*0.16, -0.5), ColorGrass)
	FillPolygon(dst, rotatedRect(cx+s*0.17, cy-s*0.2, s*0.34, s*0.16, 0.5), ColorGrass)
}

func drawFish(dst *ebiten.Image, cx, cy, s float64) {
	body := color.RGBA{251, 146, 60, 255}
	FillPolygon(dst, []Point{{cx - s*0.28, cy}, {cx - s*0.5, cy - s*0.2}, {cx - s*0.5, cy + s*0.2}}, body)
	FillEllipse(dst, cx, cy, s*0.34, s*0.22, body)
	FillRect(dst, cx-s*0.05, cy-s*0.2, s*0.08, s*0.4, color.RGBA{255, 255, 255, 200})
	eye(dst, cx+s*0.2, cy-s*0.05, s*0.06)
}

func drawCrab(dst *ebiten.Image, cx, cy, s float64) {
	red := color.RGBA{220, 38, 38, 255}
	for i := -1; i <= 1; i += 2 {
		fi := float64(i)
		for k := 0; k < 3; k++ {
			ly := cy + float64(k)*s*0.08
			Line(dst, cx+fi*s*0.2, ly, cx+fi*s*0.45, ly+s*0.14, s*0.04, red)
		}
		Line(dst, cx+fi*s*0.2, cy-s*0.05, cx+fi*s*0.34, cy-s*0.28, s*0.05, red)
		FillCircle(dst, cx+fi*s*0.36, cy-s*0.32, s*0.1, red)
	}
	FillEllipse(dst, cx, cy, s*0.3, s*0.2, red)
	eye(dst, cx-s*0.09, cy-s*0.16, s*0.05)
	eye(dst, cx+s*0.09, cy-s*0.16, s*0.05)
}

func drawOctopus(dst *ebiten.Image, cx, cy, s float64) {
	purple := color.RGBA{168, 85, 247, 255}
	for i := 0; i < 5; i++ {
		x := cx - s*0.3 + float64(i)*s*0.15
		FillEllipse(dst, x, cy+s*0.25, s*0.06, s*0.2, purple)
	}
	FillEllipse(dst, cx, cy-s*0.08, s*0.32, s*0.3, purple)
	eye(dst, cx-s*0.11, cy-s*0.08, s*0.07)
	eye(dst, cx+s*0.11, cy-s*0.08, s*0.07)
}

func drawSunIcon(dst *ebiten.Image, cx, cy, s float64) {
	FillStar(dst, cx, cy, s*0.5, s*0.3, 10, 0, color.RGBA{251, 191, 36, 255})
	FillCircle(dst, cx, cy, s*0.28, color.RGBA{253, 224, 71, 255})
}

func drawBulb(dst *ebiten.Image, cx, cy, s float64) {
	FillCircle(dst, cx, cy-s*0.1, s*0.3, color.RGBA{253, 224, 71, 255})
	FillRect(dst, cx-s*0.14, cy+s*0.15, s*0.28, s*0.12, color.RGBA{234, 179, 8, 255})
	FillRoundedRect(dst, cx-s*0.12, cy+s*0.27, s*0.24, s*0.16, s*0.04, color.RGBA{100, 116, 139, 255})
}

func drawWind(dst *ebiten.Image, cx, cy, s float64) {
	c := color.RGBA{147, 197, 253, 255}
	for i, w := range []float64{0.8, 0.6, 0.7} {
		y := cy - s*0.25 + float64(i)*s*0.25
		x0 := cx - s*0.4
		Line(dst, x0, y, x0+s*w, y, s*0.07, c)
		StrokeCircle(dst, x0+s*w, y-s*0.06, s*0.06, s*0.05, c)
	}
}

func drawSloth(dst *ebiten.Image, cx, cy, s float64) {
	fur := color.RGBA{161, 120, 82, 255}
	FillCircle(dst, cx, cy, s*0.42, fur)
	FillEllipse(dst, cx, cy+s*0.04, s*0.3, s*0.24, color.RGBA{231, 206, 170, 255})
	FillEllipse(dst, cx-s*0.12, cy, s*0.1, s*0.06, color.RGBA{92, 64, 40, 255})
	FillEllipse(dst, cx+s*0.12, cy, s*0.1, s*0.06, color.RGBA{92, 64, 40, 255})
	FillCircle(dst, cx-s*0.12, cy, s*0.03, ColorInk)
	FillCircle(dst, cx+s*0.12, cy, s*0.03, ColorInk)
	FillEllipse(dst, cx, cy+s*0.12, s*0.05, s*0.035, ColorInk)
}

func drawMonkey(dst *ebiten.Image, cx, cy, s float64) {
	fur := color.RGBA{120, 72, 40, 255}
	face := color.RGBA{245, 208, 160, 255}
	FillCircle(dst, cx-s*0.36, cy, s*0.13, fur)
	FillCircle(dst, cx+s*0.36, cy, s*0.13, fur)
	FillCircle(dst, cx, cy, s*0.38, fur)
	FillEllipse(dst, cx, cy+s*0.06, s*0.26, s*0.24, face)
	eye(dst, cx-s*0.1, cy-s*0.04, s*0.06)
	eye(dst, cx+s*0.1, cy-s*0.04, s*0.06)
	Line(dst, cx-s*0.08, cy+s*0.16, cx+s*0.08, cy+s*0.16, 2, ColorInk)
}

func drawGorilla(dst *ebiten.Image, cx, cy, s float64) {
	fur := color.RGBA{55, 65, 81, 255}
	FillCircle(dst, cx, cy, s*0.4, fur)
	FillEllipse(dst, cx, cy+s*0.08, s*0.26, s*0.2, color.RGBA{107, 114, 128, 255})
	FillRect(dst, cx-s*0.22, cy-s*0.12, s*0.44, s*0.06, color.RGBA{31, 41, 55, 255})
	eye(dst, cx-s*0.1, cy-s*0.02, s*0.05)
	eye(dst, cx+s*0.1, cy-s*0.02, s*0.05)
}

func drawEagle(dst *ebiten.Image, cx, cy, s float64) {
	dark := color.RGBA{68, 44, 30, 255}
	FillPolygon(dst, []Point{{cx - s*0.5, cy - s*0.05}, {cx - s*0.1, cy - s*0.12}, {cx - s*0.12, cy + s*0.12}}, dark)
	FillPolygon(dst, []Point{{cx + s*0.5, cy - s*0.05}, {cx + s*0.1, cy - s*0.12}, {cx + s*0.12, cy + s*0.12}}, dark)
	FillEllipse(dst, cx, cy+s*0.1, s*0.16, s*0.3, dark)
	FillCircle(dst, cx, cy-s*0.2, s*0.14, ColorWhite)
	FillPolygon(dst, []Point{{cx + s*0.08, cy - s*0.2}, {cx + s*0.22, cy - s*0.14}, {cx + s*0.08, cy - s*0.1}}, color.RGBA{251, 191, 36, 255})
	FillCircle(dst, cx+s*0.03, cy-s*0.23, s*0.03, ColorInk)
}

func drawParrot(dst *ebiten.Image, cx, cy, s float64) {
	FillPolygon(dst, []Point{{cx - s*0.05, cy + s*0.2}, {cx - s*0.2, cy + s*0.5}, {cx + s*0.05, cy + s*0.48}}, color.RGBA{37, 99, 235, 255})
	FillEllipse(dst, cx, cy+s*0.05, s*0.2, s*0.3, color.RGBA{22, 163, 74, 255})
	FillCircle(dst, cx+s*0.02, cy-s*0.24, s*0.16, color.RGBA{220, 38, 38, 255})
	FillPolygon(dst, []Point{{cx + s*0.14, cy - s*0.28}, {cx + s*0.3, cy - s*0.2}, {cx + s*0.14, cy - s*0.14}}, color.RGBA{250, 204, 21, 255})
	eye(dst, cx+s*0.06, cy-s*0.28, s*0.04)
}

func drawBottle(dst *ebiten.Image, cx, cy, s float64) {
	FillRoundedRect(dst, cx-s*0.18, cy-s*0.2, s*0.36, s*0.62, s*0.08, color.RGBA{56, 189, 248, 230})
	FillRect(dst, cx-s*0.08, cy-s*0.4, s*0.16, s*0.22, color.RGBA{56, 189, 248, 230})
	FillRect(dst, cx-s*0.1, cy-s*0.48, s*0.2, s*0.1, color.RGBA{37, 99, 235, 255})
	FillRect(dst, cx-s*0.18, cy, s*0.36, s*0.14, ColorWhite)
}

func drawBanana(dst *ebiten.Image, cx, cy, s float64) {
	yellow := color.RGBA{250, 204, 21, 255}
	pts := make([]Point, 0, 24)
	for i := 0; i <= 10; i++ {
		a := math.Pi*0.15 + float64(i)/10*math.Pi*0.7
		pts = append(pts, Point{cx + math.Cos(a)*s*0.42, cy - s*0.25 + math.Sin(a)*s*0.55})
	}
	for i := 10; i >= 0; i-- {
		a := math.Pi*0.15 + float64(i)/10*math.Pi*0.7
		pts = append(pts, Point{cx + math.Cos(a)*s*0.3, cy - s*0.25 + math.Sin(a)*s*0.38})
	}
	FillPolygon(dst, pts, yellow)
	FillCircle(dst, pts[0].X, pts[0].Y, s*0.04, ColorWood)
}

func drawCan(dst *ebiten.Image, cx, cy, s float64) {
	FillRect(dst, cx-s*0.22, cy-s*0.32, s*0.44, s*0.64, color.RGBA{148, 163, 184, 255})
	FillEllipse(dst, cx, cy-s*0.32, s*0.22, s*0.07, color.RGBA{203, 213, 225, 255})
	FillEllipse(dst, cx, cy+s*0.32, s*0.22, s*0.07, color.RGBA{148, 163, 184, 255})
	FillRect(dst, cx-s*0.22, cy-s*0.14, s*0.44, s*0.28, color.RGBA{220, 38, 38, 255})
}

func drawApple(dst *ebiten.Image, cx, cy, s float64) {
	red := color.RGBA{220, 38, 38, 255}
	FillCircle(dst, cx-s*0.13, cy+s*0.05, s*0.3, red)
	FillCircle(dst, cx+s*0.13, cy+s*0.05, s*0.3, red)
	Line(dst, cx, cy-s*0.22, cx+s*0.04, cy-s*0.42, s*0.05, ColorWood)
	FillPolygon(dst, rotatedRect(cx+s*0.14, cy-s*0.34, s*0.2, s*0.1, -0.4), ColorLeaf)
}

func drawCup(dst *ebiten.Image, cx, cy, s float64) {
	FillPolygon(dst, []Point{{cx - s*0.26, cy - s*0.3}, {cx + s*0.26, cy - s*0.3}, {cx + s*0.18, cy + s*0.42}, {cx - s*0.18, cy + s*0.42}}, color.RGBA{244, 63, 94, 255})
	FillRect(dst, cx-s*0.3, cy-s*0.36, s*0.6, s*0.08, ColorWhite)
	Line(dst, cx+s*0.05, cy-s*0.36, cx+s*0.16, cy-s*0.52, s*0.05, color.RGBA{250, 204, 21, 255})
}

func drawBone(dst *ebiten.Image, cx, cy, s float64) {
	bone := color.RGBA{241, 245, 249, 255}
	FillPolygon(dst, rotatedRect(cx, cy, s*0.7, s*0.16, -0.5), bone)
	for _, d := range []float64{-1, 1} {
		ex := cx + d*math.Cos(-0.5)*s*0.35
		ey := cy + d*math.Sin(-0.5)*s*0.35
		FillCircle(dst, ex-s*0.06, ey-s*0.06, s*0.1, bone)
		FillCircle(dst, ex+s*0.06, ey+s*0.06, s*0.1, bone)
	}
}

func drawDancer(dst *ebiten.Image, cx, cy, s float64) {
	FillPolygon(dst, []Point{{cx, cy - s*0.15}, {cx + s*0.35, cy + s*0.45}, {cx - s*0.35, cy + s*0.45}}, color.RGBA{225, 29, 72, 255})
	FillCircle(dst, cx, cy-s*0.3, s*0.14, color.RGBA{214, 162, 120, 255})
	FillCircle(dst, cx+s*0.1, cy-s*0.4, s*0.07, ColorInk)
	Line(dst, cx, cy-s*0.1, cx+s*0.35, cy-s*0.35, s*0.05, color.RGBA{214, 162, 120, 255})
}

func drawCowboy(dst *ebiten.Image, cx, cy, s float64) {
	FillCircle(dst, cx, cy+s*0.1, s*0.3, color.RGBA{253, 186, 116, 255})
	FillEllipse(dst, cx, cy-s*0.15, s*0.48, s*0.08, color.RGBA{146, 64, 14, 255})
	FillRoundedRect(dst, cx-s*0.22, cy-s*0.45, s*0.44, s*0.3, s*0.08, color.RGBA{180, 83, 9, 255})
	FillCircle(dst, cx-s*0.1, cy+s*0.06, s*0.04, ColorInk)
	FillCircle(dst, cx+s*0.1, cy+s*0.06, s*0.04, ColorInk)
	Line(dst, cx-s*0.1, cy+s*0.22, cx+s*0.1, cy+s*0.22, 2, ColorInk)
}

func drawTelescope(dst *ebiten.Image, cx, cy, s float64) {
	FillPolygon(dst, rotatedRect(cx, cy-s*0.12, s*0.8, s*0.2, -0.5), color.RGBA{99, 102, 241, 255})
	Line(dst, cx, cy, cx-s*0.25, cy+s*0.45, s*0.05, ColorInk)
	Line(dst, cx, cy, cx+s*0.25, cy+s*0.45, s*0.05, ColorInk)
	Line(dst, cx, cy, cx, cy+s*0.45, s*0.05, ColorInk)
}

func drawDroplet(dst *ebiten.Image, cx, cy, s float64) {
	blue := color.RGBA{56, 189, 248, 255}
	FillCircle(dst, cx, cy+s*0.12, s*0.28, blue)
	FillPolygon(dst, []Point{{cx, cy - s*0.45}, {cx + s*0.26, cy + s*0.04}, {cx - s*0.26, cy + s*0.04}}, blue)
	FillCircle(dst, cx-s*0.1, cy+s*0.1, s*0.06, color.RGBA{255, 255, 255, 180})
}

func drawFlame(dst *ebiten.Image, cx, cy, s float64) {
	FillCircle(dst, cx, cy+s*0.15, s*0.3, color.RGBA{249, 115, 22, 255})
	FillPolygon(dst, []Point{{cx, cy - s*0.48}, {cx + s*0.28, cy + s*0.05}, {cx - s*0.28, cy + s*0.05}}, color.RGBA{249, 115, 22, 255})
	FillCircle(dst, cx, cy+s*0.2, s*0.16, color.RGBA{253, 224, 71, 255})
}
