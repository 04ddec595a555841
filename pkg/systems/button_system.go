package systems

import (
	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测点击（按下和松开都在同一按钮内时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	drag          *utils.DragManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, drag *utils.DragManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		drag:          drag,
	}
}

// Update 更新按钮交互状态
// DragManager 需在本帧已经 Update 过
func (s *ButtonSystem) Update(deltaTime float64) {
	px, py := s.drag.PointerPosition()
	info := s.drag.GetInfo()
	pressing := info.State == utils.DragStateStarted || info.State == utils.DragStateDragging
	released := info.State == utils.DragStateEnded

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	var clicked []func()
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		button.Elapsed += deltaTime

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		pressedInside := isInButton(float64(info.StartX), float64(info.StartY), pos, button)
		hovered := isInButton(px, py, pos, button)

		switch {
		case released && pressedInside && hovered:
			// 松开瞬间触发回调
			if button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.State = components.UIHovered
		case pressing && pressedInside && hovered:
			button.State = components.UIClicked
		case hovered:
			button.State = components.UIHovered
		default:
			button.State = components.UINormal
		}
	}

	// 遍历结束后再执行回调，回调中可能销毁按钮
	for _, onClick := range clicked {
		onClick()
	}
}

// isInButton 检测点是否在按钮范围内
func isInButton(x, y float64, pos *components.PositionComponent, button *components.ButtonComponent) bool {
	return x >= pos.X &&
		x <= pos.X+button.Width &&
		y >= pos.Y &&
		y <= pos.Y+button.Height
}
