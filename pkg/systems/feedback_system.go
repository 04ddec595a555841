package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/ecs"
)

// FeedbackSystem 创建并查询投放反馈效果
//
// 错误投放：为目标创建一个带 ShakeComponent 和 LifetimeComponent 的效果实体，
// RejectionTTL 秒后自动清除；同一目标再次被拒绝时重新计时，不会叠加。
// 正确投放：创建一个 FlashEffectComponent 实体。
type FeedbackSystem struct {
	entityManager *ecs.EntityManager
	flashes       *FlashEffectSystem
}

// NewFeedbackSystem 创建反馈系统
func NewFeedbackSystem(em *ecs.EntityManager, flashes *FlashEffectSystem) *FeedbackSystem {
	return &FeedbackSystem{
		entityManager: em,
		flashes:       flashes,
	}
}

// Reject 标记目标为"被拒绝"，返回效果实体ID
func (s *FeedbackSystem) Reject(targetKey string) ecs.EntityID {
	if id, ok := s.findShake(targetKey); ok {
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			lifetime.Reset()
			log.Printf("[Feedback] 重新计时拒绝标记: %s", targetKey)
			return id
		}
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.ShakeComponent{
		TargetKey: targetKey,
		Amplitude: config.RejectionShakeAmplitude,
		Frequency: 6,
	})
	ecs.AddComponent(s.entityManager, id, &components.LifetimeComponent{
		MaxLifetime: config.RejectionTTL,
	})
	log.Printf("[Feedback] 拒绝标记: %s (entity %d)", targetKey, id)
	return id
}

// Accept 高亮目标，返回效果实体ID
func (s *FeedbackSystem) Accept(targetKey string, c color.RGBA) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.FlashEffectComponent{
		TargetKey: targetKey,
		Duration:  config.SuccessFlashTTL,
		Intensity: 1,
		Color:     c,
		IsActive:  true,
	})
	return id
}

// IsRejected 目标当前是否带有拒绝标记
func (s *FeedbackSystem) IsRejected(targetKey string) bool {
	_, ok := s.findShake(targetKey)
	return ok
}

// ShakeOffset 返回目标当前的水平抖动偏移，抖动随时间衰减
func (s *FeedbackSystem) ShakeOffset(targetKey string) float64 {
	id, ok := s.findShake(targetKey)
	if !ok {
		return 0
	}
	shake, _ := ecs.GetComponent[*components.ShakeComponent](s.entityManager, id)
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
	if !ok {
		return 0
	}

	// 只在前半段抖动，后半段保持静止的红色标记
	p := lifetime.Progress() * 2
	if p >= 1 {
		return 0
	}
	phase := lifetime.CurrentLifetime * shake.Frequency * 2 * math.Pi
	return math.Sin(phase) * shake.Amplitude * (1 - p)
}

// FlashIntensity 返回目标当前的高亮强度
func (s *FeedbackSystem) FlashIntensity(targetKey string) float64 {
	return s.flashes.Intensity(targetKey)
}

// findShake 查找目标未过期的抖动实体
func (s *FeedbackSystem) findShake(targetKey string) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith2[*components.ShakeComponent, *components.LifetimeComponent](s.entityManager)
	for _, id := range entities {
		shake, _ := ecs.GetComponent[*components.ShakeComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if shake.TargetKey == targetKey && !lifetime.IsExpired {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}
