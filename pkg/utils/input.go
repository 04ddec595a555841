// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 指针输入源
// 同时抽象鼠标和触摸，测试中可以用脚本化的输入替换
type PointerSource interface {
	// Pointer 返回指针是否按下以及当前位置（逻辑屏幕坐标）
	// 松开后返回最后一次已知的位置
	Pointer() (pressed bool, x, y int)
}

// EbitenPointer 从 Ebitengine 读取鼠标和触摸输入
// 触摸优先：跟踪第一根按下的手指，直到它离开屏幕
type EbitenPointer struct {
	touchID  ebiten.TouchID
	tracking bool
	lastX    int
	lastY    int
}

// Pointer 实现 PointerSource
func (p *EbitenPointer) Pointer() (bool, int, int) {
	if p.tracking {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == p.touchID {
				p.lastX, p.lastY = ebiten.TouchPosition(id)
				return true, p.lastX, p.lastY
			}
		}
		// 手指已离开，使用最后一次触摸位置
		p.tracking = false
		return false, p.lastX, p.lastY
	}

	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		p.touchID = touchIDs[0]
		p.tracking = true
		p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
		return true, p.lastX, p.lastY
	}

	p.lastX, p.lastY = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), p.lastX, p.lastY
}

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// String 返回状态名称
func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "none"
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标），结束时为释放位置
	CurrentX, CurrentY int
}

// DragManager 拖拽管理器
// 每帧调用一次 Update，把按下/移动/松开转换为一帧一次的状态事件：
//
//	None → Started → Dragging ... → Ended → None
//
// Started 和 Ended 各只持续一帧。
type DragManager struct {
	source     PointerSource
	info       DragInfo
	wasPressed bool

	// pointerX, pointerY 最近一次读取的指针位置（用于悬停检测）
	pointerX, pointerY int
}

// NewDragManager 创建读取指定输入源的拖拽管理器
func NewDragManager(source PointerSource) *DragManager {
	return &DragManager{source: source}
}

// 全局拖拽管理器实例（读取真实输入）
var globalDragManager = NewDragManager(&EbitenPointer{})

// GetDragManager 获取全局拖拽管理器
func GetDragManager() *DragManager {
	return globalDragManager
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	pressed, x, y := dm.source.Pointer()
	dm.pointerX, dm.pointerY = x, y

	switch dm.info.State {
	case DragStateNone:
		dm.checkDragStart(pressed, x, y)

	case DragStateStarted, DragStateDragging:
		dm.info.CurrentX, dm.info.CurrentY = x, y
		if pressed {
			dm.info.State = DragStateDragging
		} else {
			dm.info.State = DragStateEnded
		}

	case DragStateEnded:
		// 结束状态只持续一帧
		dm.Reset()
		dm.checkDragStart(pressed, x, y)
	}

	dm.wasPressed = pressed
}

// checkDragStart 只在按下的那一帧开始拖拽
func (dm *DragManager) checkDragStart(pressed bool, x, y int) {
	if !pressed || dm.wasPressed {
		return
	}
	dm.info = DragInfo{
		State:    DragStateStarted,
		StartX:   x,
		StartY:   y,
		CurrentX: x,
		CurrentY: y,
	}
}

// Reset 重置拖拽状态
// 指针仍按下时不会立即开始新的拖拽，必须先松开
func (dm *DragManager) Reset() {
	dm.info = DragInfo{State: DragStateNone}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// Position 当前指针位置
func (dm *DragManager) Position() (float64, float64) {
	return float64(dm.info.CurrentX), float64(dm.info.CurrentY)
}

// PointerPosition 最近一次读取的指针位置，不论是否按下
func (dm *DragManager) PointerPosition() (float64, float64) {
	return float64(dm.pointerX), float64(dm.pointerY)
}

// JustPressedAt 本帧是否按下，以及按下位置（用于按钮点击）
func (dm *DragManager) JustPressedAt() (bool, float64, float64) {
	if dm.info.State != DragStateStarted {
		return false, 0, 0
	}
	return true, float64(dm.info.StartX), float64(dm.info.StartY)
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}
