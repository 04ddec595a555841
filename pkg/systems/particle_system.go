package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
)

// ParticleSystem 管理装饰粒子与发射器
//
// 处理分两个阶段：
//  1. 更新发射器（按发射速率生成粒子，检查持续时间）
//  2. 更新粒子（速度积分、重力、旋转、淡出）
//
// 粒子的删除由 LifetimeSystem 负责。
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewParticleSystem 创建粒子系统，seed 固定时粒子轨迹可复现
func NewParticleSystem(em *ecs.EntityManager, seed int64) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Update 处理当前帧的发射器和粒子
func (ps *ParticleSystem) Update(dt float64) {
	ps.updateEmitters(dt)
	ps.updateParticles(dt)
}

// NewEmitter 在指定位置创建发射器实体
func (ps *ParticleSystem) NewEmitter(x, y float64, emitter components.EmitterComponent) ecs.EntityID {
	id := ps.EntityManager.CreateEntity()
	e := emitter
	e.Active = true
	ecs.AddComponent(ps.EntityManager, id, &e)
	ecs.AddComponent(ps.EntityManager, id, &components.PositionComponent{X: x, Y: y})
	return id
}

// Burst 在指定位置一次性生成 count 个粒子，向四周散开
func (ps *ParticleSystem) Burst(x, y float64, count int, speed float64, palette []color.RGBA, shape components.ParticleShape) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + ps.rng.Float64()*0.5)
		ps.spawn(x, y, &components.ParticleComponent{
			VelocityX:     math.Cos(angle) * v,
			VelocityY:     math.Sin(angle)*v - speed*0.3,
			Gravity:       420,
			Drag:          1.5,
			RotationSpeed: ps.between(-360, 360),
			Size:          ps.between(6, 12),
			Color:         ps.pick(palette),
			Alpha:         1,
			Shape:         shape,
		}, 0.9+ps.rng.Float64()*0.4)
	}
}

// updateEmitters 按发射速率生成粒子
func (ps *ParticleSystem) updateEmitters(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.EmitterComponent,
		*components.PositionComponent,
	](ps.EntityManager)

	for _, id := range entities {
		emitter, _ := ecs.GetComponent[*components.EmitterComponent](ps.EntityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)
		if !emitter.Active {
			continue
		}

		emitter.Age += dt
		if emitter.Duration > 0 && emitter.Age >= emitter.Duration {
			emitter.Active = false
			continue
		}

		emitter.SpawnDebt += emitter.SpawnRate * dt
		for emitter.SpawnDebt >= 1 {
			emitter.SpawnDebt--
			ps.spawnFromEmitter(emitter, pos)
		}
	}
}

// spawnFromEmitter 按发射器参数生成一个粒子
func (ps *ParticleSystem) spawnFromEmitter(emitter *components.EmitterComponent, pos *components.PositionComponent) {
	x := pos.X + ps.between(-emitter.SpreadX, emitter.SpreadX)
	y := pos.Y + ps.between(-emitter.SpreadY, emitter.SpreadY)

	ps.spawn(x, y, &components.ParticleComponent{
		VelocityX:     ps.between(emitter.MinVelocityX, emitter.MaxVelocityX),
		VelocityY:     ps.between(emitter.MinVelocityY, emitter.MaxVelocityY),
		Gravity:       emitter.Gravity,
		Rotation:      ps.between(0, 360),
		RotationSpeed: ps.between(-180, 180),
		Size:          ps.between(emitter.MinSize, emitter.MaxSize),
		Color:         ps.pick(emitter.Palette),
		Alpha:         1,
		Shape:         emitter.Shape,
	}, emitter.ParticleLifetime)
	emitter.TotalLaunched++
}

// spawn 创建粒子实体
func (ps *ParticleSystem) spawn(x, y float64, p *components.ParticleComponent, lifetime float64) ecs.EntityID {
	id := ps.EntityManager.CreateEntity()
	ecs.AddComponent(ps.EntityManager, id, p)
	ecs.AddComponent(ps.EntityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(ps.EntityManager, id, &components.LifetimeComponent{MaxLifetime: lifetime})
	return id
}

// updateParticles 粒子运动积分与淡出
func (ps *ParticleSystem) updateParticles(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](ps.EntityManager)

	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)

		if p.Drag > 0 {
			factor := math.Max(0, 1-p.Drag*dt)
			p.VelocityX *= factor
			p.VelocityY *= factor
		}
		p.VelocityY += p.Gravity * dt

		pos.X += p.VelocityX * dt
		pos.Y += p.VelocityY * dt
		p.Rotation = math.Mod(p.Rotation+p.RotationSpeed*dt, 360)

		// 生命最后 30% 线性淡出
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](ps.EntityManager, id); ok {
			progress := lifetime.Progress()
			if progress > 0.7 {
				p.Alpha = math.Max(0, 1-(progress-0.7)/0.3)
			}
		}
	}
}

func (ps *ParticleSystem) between(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + ps.rng.Float64()*(max-min)
}

func (ps *ParticleSystem) pick(palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return palette[ps.rng.Intn(len(palette))]
}
