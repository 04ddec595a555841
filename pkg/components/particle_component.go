package components

import "image/color"

// ParticleShape 粒子形状
type ParticleShape int

const (
	// ShapeRect 矩形彩纸
	ShapeRect ParticleShape = iota
	// ShapeCircle 圆点（水花、光点）
	ShapeCircle
	// ShapeLeaf 叶片（椭圆）
	ShapeLeaf
)

// ParticleComponent 单个装饰粒子的运行时状态
// 位置由 PositionComponent 保存，寿命由 LifetimeComponent 管理
type ParticleComponent struct {
	// 速度（像素/秒）
	VelocityX float64
	VelocityY float64

	// Gravity 纵向加速度（像素/秒²）
	Gravity float64

	// Drag 速度衰减系数（每秒），0 表示不衰减
	Drag float64

	// 旋转（度）
	Rotation      float64
	RotationSpeed float64

	// Size 粒子尺寸（像素）
	Size float64

	// Color 粒子颜色
	Color color.RGBA

	// Alpha 当前透明度 0-1，生命末段淡出
	Alpha float64

	// Shape 绘制形状
	Shape ParticleShape
}
