package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 渲染圆角按钮背景（悬停变亮，按下下沉，禁用变灰）
//   - 渲染按钮文字（自动居中，带阴影效果）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y, w, h := pos.X, pos.Y, button.Width, button.Height
	if button.Pulse && button.State != components.UIDisabled {
		scale := 1 + 0.06*(1-utils.Pulse(button.Elapsed, 1.4, 1))
		x -= w * (scale - 1) / 2
		y -= h * (scale - 1) / 2
		w *= scale
		h *= scale
	}

	base := button.Color
	pressOffset := 0.0
	switch button.State {
	case components.UIHovered:
		base = utils.Lighten(base, 0.15)
	case components.UIClicked:
		base = utils.Darken(base, 0.1)
		pressOffset = 3
	case components.UIDisabled:
		base = ui.ColorLocked
	}

	radius := h / 2
	ui.FillRoundedRect(screen, x+3, y+7, w, h, radius, ui.ColorShadow)
	ui.FillRoundedRect(screen, x, y+pressOffset, w, h, radius, base)
	ui.StrokeRoundedRect(screen, x, y+pressOffset, w, h, radius, 3, utils.Lighten(base, 0.35))

	textColor := button.TextColor
	if textColor == (color.RGBA{}) {
		textColor = ui.ColorWhite
	}
	ui.DrawTextShadow(screen, button.Text, button.Font, x+w/2, y+h/2+pressOffset-1, textColor, ui.AlignCenter)
}
