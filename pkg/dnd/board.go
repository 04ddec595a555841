package dnd

import (
	"log"

	"github.com/google/uuid"
)

// Source 拖拽源
type Source struct {
	// Key 唯一键，如 "tool:seed"、"trash:3"
	Key string

	// Area 可以按下开始拖拽的区域
	Area Shape

	// Payload 拖拽内容
	Payload Payload

	// Enabled 返回 false 时不可拖拽（如已清理的垃圾），nil 表示始终可用
	Enabled func() bool
}

// Target 投放目标
type Target struct {
	// Key 唯一键，如 "spot:2"、"bin:organic"
	Key string

	// Area 命中区域
	Area Shape

	// Accepts 接受的拖拽类型，其他类型的拖拽经过时视为不存在
	Accepts Kind

	// Tag 目标标签（垃圾桶类别、栖息地），用于悬停提示
	Tag string

	// ID 目标对应的实体编号（种植点、建筑），没有时为 0
	ID int

	// Enabled 返回 false 时不接受投放，nil 表示始终可用
	Enabled func() bool
}

// Drop 一次落在接受目标上的投放
type Drop struct {
	SessionID uuid.UUID
	SourceKey string
	Payload   Payload
	Target    *Target
	X, Y      float64
}

// Board 拖拽源 / 投放目标注册表
// 后注册的元素位于上层，命中检测时优先
type Board struct {
	session *Session
	sources []*Source
	targets []*Target
}

// NewBoard 创建绑定到会话的拖放面板
func NewBoard(session *Session) *Board {
	return &Board{session: session}
}

// Session 返回面板使用的会话
func (b *Board) Session() *Session {
	return b.session
}

// AddSource 注册拖拽源
func (b *Board) AddSource(s Source) *Source {
	src := &s
	b.sources = append(b.sources, src)
	return src
}

// AddTarget 注册投放目标
func (b *Board) AddTarget(t Target) *Target {
	tgt := &t
	b.targets = append(b.targets, tgt)
	return tgt
}

// Sources 返回全部拖拽源（注册顺序）
func (b *Board) Sources() []*Source {
	return b.sources
}

// Targets 返回全部投放目标（注册顺序）
func (b *Board) Targets() []*Target {
	return b.targets
}

// Clear 移除所有拖拽源和目标，并放弃进行中的拖拽
func (b *Board) Clear() {
	b.session.Cancel()
	b.sources = nil
	b.targets = nil
}

// SourceAt 返回 (x, y) 处最上层的可用拖拽源
func (b *Board) SourceAt(x, y float64) *Source {
	for i := len(b.sources) - 1; i >= 0; i-- {
		s := b.sources[i]
		if enabled(s.Enabled) && s.Area.Contains(x, y) {
			return s
		}
	}
	return nil
}

// TargetAt 返回 (x, y) 处最上层接受 kind 的可用目标
func (b *Board) TargetAt(x, y float64, kind Kind) *Target {
	for i := len(b.targets) - 1; i >= 0; i-- {
		t := b.targets[i]
		if t.Accepts == kind && enabled(t.Enabled) && t.Area.Contains(x, y) {
			return t
		}
	}
	return nil
}

// Press 在 (x, y) 按下指针，命中拖拽源时开始拖拽
// 返回被拖起的拖拽源；没有命中或已有拖拽进行中时返回 nil
func (b *Board) Press(x, y float64) *Source {
	src := b.SourceAt(x, y)
	if src == nil {
		return nil
	}
	cx, cy := src.Area.Center()
	if !b.session.Begin(src.Key, src.Payload, x, y, x-cx, y-cy) {
		return nil
	}
	return src
}

// Move 拖拽中移动指针
func (b *Board) Move(x, y float64) {
	b.session.Move(x, y)
}

// Hover 返回当前拖拽位置下接受该拖拽类型的目标
func (b *Board) Hover() *Target {
	p, ok := b.session.Payload()
	if !ok {
		return nil
	}
	x, y := b.session.Position()
	return b.TargetAt(x, y, p.Kind)
}

// Release 在 (x, y) 松开指针，结束拖拽
// 落在接受目标上时返回投放信息；落在空白处或没有拖拽时返回 nil（不做任何处理）
func (b *Board) Release(x, y float64) *Drop {
	if !b.session.Active() {
		return nil
	}
	b.session.Move(x, y)

	id := b.session.ID()
	sourceKey := b.session.SourceKey()
	p, _ := b.session.End()

	target := b.TargetAt(x, y, p.Kind)
	if target == nil {
		log.Printf("[DnD] %s 投放在空白处 (session %s)", p, id)
		return nil
	}

	log.Printf("[DnD] %s 投放到 %s (session %s)", p, target.Key, id)
	return &Drop{
		SessionID: id,
		SourceKey: sourceKey,
		Payload:   p,
		Target:    target,
		X:         x,
		Y:         y,
	}
}

// Cancel 放弃进行中的拖拽
func (b *Board) Cancel() {
	b.session.Cancel()
}

func enabled(f func() bool) bool {
	return f == nil || f()
}
