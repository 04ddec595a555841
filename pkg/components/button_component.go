package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的外观、文字、状态和回调，与 PositionComponent（左上角）一起使用
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 矢量绘制的圆角按钮，文字自动居中
//   - 支持点击回调
type ButtonComponent struct {
	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA

	// ===== 外观 =====
	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64
	// Color 按钮底色
	Color color.RGBA
	// Pulse 是否显示呼吸动画（吸引注意力的主要操作）
	Pulse bool
	// Elapsed 动画累计时间（秒），由 ButtonSystem 推进
	Elapsed float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
