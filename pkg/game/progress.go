package game

// Progress 旅程进度
//
// 不变量：
//   - Completed[i] 为 true 时 i < Current
//   - 站点严格按 1→4 的顺序完成
//   - Current 只在重新开始时减小
type Progress struct {
	// Completed 每个站点是否已完成（下标 0 对应站点1）
	Completed [StationCount]bool

	// Current 已完成的最后一个站点编号，0 表示尚未完成任何站点
	Current int
}

// IsCompleted 站点是否已完成
func (p Progress) IsCompleted(id int) bool {
	return validStation(id) && p.Completed[id-1]
}

// IsUnlocked 站点是否是下一个可进入的站点
func (p Progress) IsUnlocked(id int) bool {
	return validStation(id) && id == p.Current+1
}

// CompletedCount 已完成站点数
func (p Progress) CompletedCount() int {
	n := 0
	for _, done := range p.Completed {
		if done {
			n++
		}
	}
	return n
}

// AllComplete 是否全部完成
func (p Progress) AllComplete() bool {
	return p.CompletedCount() == StationCount
}

// Fraction 完成比例 [0, 1]
func (p Progress) Fraction() float64 {
	return float64(p.CompletedCount()) / StationCount
}

// complete 标记站点完成，只接受下一个站点
func (p *Progress) complete(id int) bool {
	if !p.IsUnlocked(id) {
		return false
	}
	p.Completed[id-1] = true
	p.Current = id
	return true
}
