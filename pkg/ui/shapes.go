// Package ui 提供矢量绘制的界面元素
//
// 游戏不带图片资源，角色、背景、站点实体和按钮都用 vector 包绘制。
// 所有渲染函数只读取传入的属性，不修改任何游戏状态。
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point 多边形顶点
type Point struct {
	X, Y float64
}

// fillPath 用纯色填充路径
func fillPath(dst *ebiten.Image, path *vector.Path, c color.Color) {
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, path, &vector.FillOptions{}, drawOp)
}

// strokePath 用纯色描边路径
func strokePath(dst *ebiten.Image, path *vector.Path, width float64, c color.Color) {
	strokeOp := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c)
	vector.StrokePath(dst, path, strokeOp, drawOp)
}

// roundedRectPath 构造圆角矩形路径
func roundedRectPath(x, y, w, h, r float64) *vector.Path {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	var path vector.Path
	x0, y0, x1, y1 := float32(x), float32(y), float32(x+w), float32(y+h)
	rr := float32(r)

	path.MoveTo(x0+rr, y0)
	path.LineTo(x1-rr, y0)
	path.Arc(x1-rr, y0+rr, rr, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(x1, y1-rr)
	path.Arc(x1-rr, y1-rr, rr, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(x0+rr, y1)
	path.Arc(x0+rr, y1-rr, rr, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(x0, y0+rr)
	path.Arc(x0+rr, y0+rr, rr, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
	return &path
}

// FillRoundedRect 填充圆角矩形
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	fillPath(dst, roundedRectPath(x, y, w, h, r), c)
}

// StrokeRoundedRect 圆角矩形描边
func StrokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, width float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	strokePath(dst, roundedRectPath(x, y, w, h, r), width, c)
}

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), c, true)
}

// FillCircle 填充圆
func FillCircle(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.FillCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeCircle 圆描边
func StrokeCircle(dst *ebiten.Image, cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

// Line 绘制线段
func Line(dst *ebiten.Image, x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// FillPolygon 填充多边形
func FillPolygon(dst *ebiten.Image, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	fillPath(dst, &path, c)
}

// EllipsePoints 返回椭圆上的 n 个点（顺时针）
func EllipsePoints(cx, cy, rx, ry float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = Point{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	return pts
}

// FillEllipse 填充椭圆
func FillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, c color.Color) {
	FillPolygon(dst, EllipsePoints(cx, cy, rx, ry, 40), c)
}

// StarPoints 返回星形顶点
//
// 参数：
//   - points: 角的数量
//   - outer, inner: 外圈和内圈半径
//   - rotation: 旋转角（弧度），0 时第一个角朝上
func StarPoints(cx, cy, outer, inner float64, points int, rotation float64) []Point {
	pts := make([]Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rotation - math.Pi/2 + float64(i)*math.Pi/float64(points)
		pts = append(pts, Point{cx + math.Cos(a)*r, cy + math.Sin(a)*r})
	}
	return pts
}

// FillStar 填充星形
func FillStar(dst *ebiten.Image, cx, cy, outer, inner float64, points int, rotation float64, c color.Color) {
	FillPolygon(dst, StarPoints(cx, cy, outer, inner, points, rotation), c)
}

// FillVerticalGradient 用水平条带近似竖直渐变
func FillVerticalGradient(dst *ebiten.Image, x, y, w, h float64, top, bottom color.RGBA, bands int) {
	if bands < 1 {
		bands = 1
	}
	bandH := h / float64(bands)
	for i := 0; i < bands; i++ {
		t := float64(i) / math.Max(1, float64(bands-1))
		c := color.RGBA{
			R: lerpByte(top.R, bottom.R, t),
			G: lerpByte(top.G, bottom.G, t),
			B: lerpByte(top.B, bottom.B, t),
			A: lerpByte(top.A, bottom.A, t),
		}
		// 多画 1 像素避免条带之间出现缝隙
		FillRect(dst, x, y+float64(i)*bandH, w, bandH+1, c)
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
