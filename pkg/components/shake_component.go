package components

// ShakeComponent 错误投放的抖动标记
//
// 挂在独立的效果实体上，通过 TargetKey 关联场景中的拖拽目标或拖拽源
// （如 "spot:3"、"trash:5"）。与 LifetimeComponent 配合使用：
// 生命周期结束时实体被删除，标记自动清除。
type ShakeComponent struct {
	// TargetKey 被标记对象的键
	TargetKey string

	// Amplitude 抖动幅度（像素）
	Amplitude float64

	// Frequency 抖动频率（次/秒）
	Frequency float64
}
