package components

import "image/color"

// FlashEffectComponent 高亮闪光效果组件
// 正确投放时让目标短暂发光
//
// 与 ShakeComponent 一样通过 TargetKey 关联目标，由 FlashEffectSystem 驱动
type FlashEffectComponent struct {
	// TargetKey 被高亮对象的键
	TargetKey string

	// Duration 闪光持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Intensity 当前强度（0.0 - 1.0），随时间衰减
	Intensity float64

	// Color 高亮颜色
	Color color.RGBA

	// IsActive 是否激活
	IsActive bool
}
