package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/systems"
	"github.com/gonewx/greentrain/pkg/utils"
)

// uiLayer 场景的 ECS 世界：按钮、装饰粒子和投放反馈效果
// 每个场景创建自己的世界，场景销毁时整体丢弃
type uiLayer struct {
	entityManager *ecs.EntityManager

	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	lifetimeSystem     *systems.LifetimeSystem
	flashSystem        *systems.FlashEffectSystem
	feedbackSystem     *systems.FeedbackSystem
	particleSystem     *systems.ParticleSystem
	renderSystem       *systems.RenderSystem
}

// newUILayer 创建场景的 ECS 世界和系统
func newUILayer(drag *utils.DragManager, seed int64) *uiLayer {
	em := ecs.NewEntityManager()
	flashes := systems.NewFlashEffectSystem(em)
	return &uiLayer{
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em, drag),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		lifetimeSystem:     systems.NewLifetimeSystem(em),
		flashSystem:        flashes,
		feedbackSystem:     systems.NewFeedbackSystem(em, flashes),
		particleSystem:     systems.NewParticleSystem(em, seed),
		renderSystem:       systems.NewRenderSystem(em),
	}
}

// update 推进按钮、效果和粒子
// 按钮回调可能触发画面切换，放在最后执行
func (l *uiLayer) update(dt float64) {
	l.particleSystem.Update(dt)
	l.flashSystem.Update(dt)
	l.lifetimeSystem.Update(dt)
	l.entityManager.RemoveMarkedEntities()
	l.buttonSystem.Update(dt)
}

// drawParticles 绘制装饰粒子
func (l *uiLayer) drawParticles(screen *ebiten.Image) {
	l.renderSystem.DrawParticles(screen)
}

// drawButtons 绘制所有按钮
func (l *uiLayer) drawButtons(screen *ebiten.Image) {
	l.buttonRenderSystem.Draw(screen)
}

// buttonSpec 新按钮的外观
type buttonSpec struct {
	label  string
	face   *text.GoTextFace
	cx, cy float64
	w, h   float64
	color  color.RGBA
	pulse  bool
}

// addButton 以 (cx, cy) 为中心创建按钮实体
func (l *uiLayer) addButton(b buttonSpec, onClick func()) ecs.EntityID {
	id := l.entityManager.CreateEntity()
	ecs.AddComponent(l.entityManager, id, &components.PositionComponent{
		X: b.cx - b.w/2,
		Y: b.cy - b.h/2,
	})
	ecs.AddComponent(l.entityManager, id, &components.ButtonComponent{
		Text:    b.label,
		Font:    b.face,
		Width:   b.w,
		Height:  b.h,
		Color:   b.color,
		Pulse:   b.pulse,
		Enabled: true,
		OnClick: onClick,
	})
	return id
}

// button 取按钮组件
func (l *uiLayer) button(id ecs.EntityID) (*components.ButtonComponent, bool) {
	return ecs.GetComponent[*components.ButtonComponent](l.entityManager, id)
}

// setButtonEnabled 启用或禁用按钮
func (l *uiLayer) setButtonEnabled(id ecs.EntityID, enabled bool) {
	if b, ok := l.button(id); ok {
		b.Enabled = enabled
	}
}

// confetti 在屏幕顶部持续撒彩纸
func (l *uiLayer) confetti(width, duration float64, palette []color.RGBA) ecs.EntityID {
	return l.particleSystem.NewEmitter(width/2, -20, components.EmitterComponent{
		Duration:         duration,
		SpawnRate:        45,
		SpreadX:          width / 2,
		MinVelocityX:     -60,
		MaxVelocityX:     60,
		MinVelocityY:     80,
		MaxVelocityY:     200,
		Gravity:          90,
		MinSize:          8,
		MaxSize:          14,
		ParticleLifetime: 4.5,
		Palette:          palette,
		Shape:            components.ShapeRect,
	})
}

// confettiPalette 庆祝彩纸颜色
var confettiPalette = []color.RGBA{
	{250, 204, 21, 255},
	{34, 197, 94, 255},
	{56, 189, 248, 255},
	{244, 63, 94, 255},
	{249, 115, 22, 255},
}

// rect 场景中的矩形区域（卡片、箭头）
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// clicked 本帧是否在 r 内完成了一次点击（按下和松开都在 r 内）
func clicked(drag *utils.DragManager, r rect) bool {
	if !drag.JustEnded() {
		return false
	}
	info := drag.GetInfo()
	return r.contains(float64(info.StartX), float64(info.StartY)) &&
		r.contains(float64(info.CurrentX), float64(info.CurrentY))
}

// hovered 指针当前是否在 r 内
func hovered(drag *utils.DragManager, r rect) bool {
	return r.contains(drag.PointerPosition())
}
