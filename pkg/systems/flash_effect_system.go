package systems

import (
	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/utils"
)

// FlashEffectSystem 高亮闪光效果系统
// 管理正确投放后目标高亮的强度衰减
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪光效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 更新所有闪光效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, entity := range entities {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flash.IsActive {
			continue
		}

		flash.Elapsed += dt
		if flash.Elapsed >= flash.Duration {
			// 闪光结束，删除效果实体
			flash.IsActive = false
			flash.Intensity = 0
			s.entityManager.DestroyEntity(entity)
			continue
		}

		flash.Intensity = 1 - utils.EaseOutQuad(flash.Elapsed/flash.Duration)
	}
}

// Intensity 返回指定目标当前的高亮强度，没有高亮时返回 0
func (s *FlashEffectSystem) Intensity(targetKey string) float64 {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)
	best := 0.0
	for _, entity := range entities {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flash.IsActive || flash.TargetKey != targetKey {
			continue
		}
		if flash.Intensity > best {
			best = flash.Intensity
		}
	}
	return best
}
