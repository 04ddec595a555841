package dnd

import (
	"log"

	"github.com/google/uuid"
)

// Session 全局唯一的拖拽会话
//
// 同一时刻最多只有一个拖拽在进行：拖拽进行中再次 Begin 会失败。
// 应用持有一个 Session 并传给各个场景，拖拽预览层从这里读取当前内容。
type Session struct {
	id        uuid.UUID
	payload   Payload
	sourceKey string
	active    bool

	// 当前指针位置
	x, y float64

	// 指针相对拖拽源中心的偏移，预览按此偏移绘制，避免"跳到"指针下
	offsetX, offsetY float64
}

// NewSession 创建空闲的拖拽会话
func NewSession() *Session {
	return &Session{}
}

// Begin 开始拖拽
// 已有拖拽进行中时返回 false，不改变当前会话
func (s *Session) Begin(sourceKey string, p Payload, x, y, offsetX, offsetY float64) bool {
	if s.active {
		log.Printf("[DnD] 忽略开始拖拽 %s: 会话 %s 仍在进行", p, s.id)
		return false
	}

	s.id = uuid.New()
	s.payload = p
	s.sourceKey = sourceKey
	s.active = true
	s.x, s.y = x, y
	s.offsetX, s.offsetY = offsetX, offsetY
	log.Printf("[DnD] 开始拖拽 %s 来自 %s (session %s)", p, sourceKey, s.id)
	return true
}

// Move 更新指针位置
func (s *Session) Move(x, y float64) {
	if !s.active {
		return
	}
	s.x, s.y = x, y
}

// End 结束拖拽并返回被拖拽的内容
func (s *Session) End() (Payload, bool) {
	if !s.active {
		return Payload{}, false
	}
	p := s.payload
	s.reset()
	return p, true
}

// Cancel 放弃当前拖拽（如场景切换）
func (s *Session) Cancel() {
	if s.active {
		log.Printf("[DnD] 取消拖拽 %s (session %s)", s.payload, s.id)
	}
	s.reset()
}

// Active 是否有拖拽进行中
func (s *Session) Active() bool {
	return s.active
}

// ID 当前会话ID，空闲时为 uuid.Nil
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Payload 当前拖拽内容
func (s *Session) Payload() (Payload, bool) {
	return s.payload, s.active
}

// SourceKey 当前拖拽源的键
func (s *Session) SourceKey() string {
	return s.sourceKey
}

// Position 当前指针位置
func (s *Session) Position() (float64, float64) {
	return s.x, s.y
}

// PreviewCenter 拖拽预览的中心位置
func (s *Session) PreviewCenter() (float64, float64) {
	return s.x - s.offsetX, s.y - s.offsetY
}

func (s *Session) reset() {
	s.id = uuid.Nil
	s.payload = Payload{}
	s.sourceKey = ""
	s.active = false
	s.offsetX, s.offsetY = 0, 0
}
