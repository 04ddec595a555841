package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理短暂存在的表现层实体（抖动标记、闪光、彩纸粒子）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Progress 返回生命周期进度 [0, 1]
func (l *LifetimeComponent) Progress() float64 {
	if l.MaxLifetime <= 0 {
		return 1
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p > 1 {
		return 1
	}
	return p
}

// Reset 重新开始计时
func (l *LifetimeComponent) Reset() {
	l.CurrentLifetime = 0
	l.IsExpired = false
}
