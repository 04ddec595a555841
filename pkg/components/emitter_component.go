package components

import "image/color"

// EmitterComponent 持续发射粒子的发射器
// 位置由 PositionComponent 给出，粒子在 [X-SpreadX, X+SpreadX] 范围内生成
//
// 用于奖励画面和终点画面的彩纸、植树站点的飘落叶片等装饰效果
type EmitterComponent struct {
	// Active 是否正在发射
	Active bool

	// Age 发射器运行时间（秒）
	Age float64

	// Duration 总持续时间（秒），0 表示无限
	Duration float64

	// SpawnRate 每秒生成的粒子数
	SpawnRate float64

	// SpawnDebt 累计的待生成粒子数（小数部分跨帧保留）
	SpawnDebt float64

	// SpreadX, SpreadY 生成位置的随机范围（像素）
	SpreadX float64
	SpreadY float64

	// 初速度范围（像素/秒）
	MinVelocityX, MaxVelocityX float64
	MinVelocityY, MaxVelocityY float64

	// Gravity 粒子重力加速度
	Gravity float64

	// MinSize, MaxSize 粒子尺寸范围
	MinSize, MaxSize float64

	// ParticleLifetime 单个粒子的寿命（秒）
	ParticleLifetime float64

	// Palette 随机选择的颜色
	Palette []color.RGBA

	// Shape 粒子形状
	Shape ParticleShape

	// TotalLaunched 已生成的粒子总数
	TotalLaunched int
}
