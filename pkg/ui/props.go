package ui

import "image/color"

// Size 角色尺寸档位
type Size int

const (
	// SizeSmall 小尺寸（地图角落、奖励画面的配角）
	SizeSmall Size = iota
	// SizeMedium 中等尺寸（站点场景）
	SizeMedium
	// SizeLarge 大尺寸（开始画面、终点画面）
	SizeLarge
)

// Scale 返回相对中等尺寸的缩放系数
func (s Size) Scale() float64 {
	switch s {
	case SizeSmall:
		return 0.6
	case SizeLarge:
		return 1.5
	default:
		return 1.0
	}
}

// CharacterProps 角色渲染属性
type CharacterProps struct {
	// Happy 开心表情（站点完成、奖励画面）
	Happy bool
	Size  Size
}

// 通用配色
var (
	ColorWhite     = color.RGBA{255, 255, 255, 255}
	ColorInk       = color.RGBA{30, 41, 59, 255}
	ColorShadow    = color.RGBA{0, 0, 0, 70}
	ColorLocked    = color.RGBA{148, 163, 184, 255}
	ColorSuccess   = color.RGBA{34, 197, 94, 255}
	ColorError     = color.RGBA{239, 68, 68, 255}
	ColorHighlight = color.RGBA{250, 204, 21, 255}
	ColorSky       = color.RGBA{125, 211, 252, 255}
	ColorGrass     = color.RGBA{74, 222, 128, 255}
	ColorSoil      = color.RGBA{146, 100, 62, 255}
	ColorWood      = color.RGBA{120, 72, 40, 255}
	ColorLeaf      = color.RGBA{22, 163, 74, 255}
)
