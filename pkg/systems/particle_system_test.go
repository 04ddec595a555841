package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
)

var testPalette = []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}}

// TestEmitterSpawnRate 发射器按速率生成粒子，小数部分跨帧累计
func TestEmitterSpawnRate(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewParticleSystem(em, 1)

	id := ps.NewEmitter(100, 0, components.EmitterComponent{
		SpawnRate:        30,
		ParticleLifetime: 5,
		MinSize:          4,
		MaxSize:          8,
		Palette:          testPalette,
	})

	// 60 帧，每帧 1/60 秒，总共 1 秒
	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
	}

	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, id)
	if emitter.TotalLaunched < 29 || emitter.TotalLaunched > 30 {
		t.Errorf("TotalLaunched = %d, want about 30", emitter.TotalLaunched)
	}

	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](em)
	if len(particles) != emitter.TotalLaunched {
		t.Errorf("particle entities = %d, TotalLaunched = %d", len(particles), emitter.TotalLaunched)
	}
}

// TestEmitterDuration 有限持续时间的发射器到期后停止
func TestEmitterDuration(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewParticleSystem(em, 1)

	id := ps.NewEmitter(0, 0, components.EmitterComponent{
		SpawnRate:        10,
		Duration:         0.5,
		ParticleLifetime: 5,
	})

	for i := 0; i < 120; i++ {
		ps.Update(1.0 / 60)
	}

	emitter, _ := ecs.GetComponent[*components.EmitterComponent](em, id)
	if emitter.Active {
		t.Error("emitter should be inactive after its duration")
	}
	if emitter.TotalLaunched > 5 {
		t.Errorf("TotalLaunched = %d, want at most 5", emitter.TotalLaunched)
	}
}

// TestParticleGravityAndFade 粒子受重力下落，生命末段淡出并最终被删除
func TestParticleGravityAndFade(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewParticleSystem(em, 7)
	lifetimes := NewLifetimeSystem(em)

	ps.Burst(200, 200, 5, 100, testPalette, components.ShapeRect)
	ids := ecs.GetEntitiesWith1[*components.ParticleComponent](em)
	if len(ids) != 5 {
		t.Fatalf("Burst created %d particles, want 5", len(ids))
	}

	first := ids[0]
	startPos, _ := ecs.GetComponent[*components.PositionComponent](em, first)
	startY := startPos.Y

	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
		lifetimes.Update(1.0 / 60)
		em.RemoveMarkedEntities()
	}

	if em.Exists(first) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, first)
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, first)
		if pos.Y <= startY {
			t.Errorf("particle should fall under gravity: start %.1f, now %.1f", startY, pos.Y)
		}
		if p.Alpha >= 1 {
			t.Errorf("particle alpha near end of life = %.2f, want < 1", p.Alpha)
		}
	}

	// 最长寿命 1.3 秒，再推进 1 秒后必定全部删除
	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
		lifetimes.Update(1.0 / 60)
		em.RemoveMarkedEntities()
	}
	if left := ecs.GetEntitiesWith1[*components.ParticleComponent](em); len(left) != 0 {
		t.Errorf("particles left = %d, want 0", len(left))
	}
}
