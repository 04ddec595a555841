package dnd

// Shape 命中区域
type Shape interface {
	Contains(x, y float64) bool
	Center() (float64, float64)
}

// Rect 矩形区域（左上角 + 尺寸）
type Rect struct {
	X, Y, W, H float64
}

// RectAround 以 (cx, cy) 为中心构造矩形
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center 矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Circle 圆形区域
type Circle struct {
	X, Y, R float64
}

// Contains 点是否在圆内（含边界）
func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Center 圆心
func (c Circle) Center() (float64, float64) {
	return c.X, c.Y
}
