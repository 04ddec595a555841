// Package dnd 实现站点共用的拖放交互模型
//
// 拖拽源携带带类型标签的不可变 Payload，投放目标只接受一种 Kind。
// 全局唯一的拖拽会话由 Session 保存，Board 负责拖拽源 / 投放目标的注册与命中检测。
// 本包不依赖 Ebitengine，指针事件由 utils.DragManager 转发进来。
package dnd

import "fmt"

// Kind 拖拽内容的类型标签
type Kind int

const (
	// KindTool 植树站点的工具（种子 / 水）
	KindTool Kind = iota + 1
	// KindTrash 河流站点的垃圾
	KindTrash
	// KindSolarPanel 能源站点的太阳能板
	KindSolarPanel
	// KindAnimal 动物站点的动物
	KindAnimal
)

// String 返回类型名，用于日志
func (k Kind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindTrash:
		return "trash"
	case KindSolarPanel:
		return "solar-panel"
	case KindAnimal:
		return "animal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Payload 拖拽内容
// 创建后不再修改，拖拽过程中按值传递
type Payload struct {
	Kind Kind

	// ID 实体编号（垃圾、动物），工具和太阳能板为 0
	ID int

	// Tag 匹配用的标签：工具种类、垃圾类别或栖息地
	Tag string

	// Glyph, Label 拖拽预览显示的内容
	Glyph string
	Label string
}

// String 返回便于日志阅读的描述
func (p Payload) String() string {
	if p.ID != 0 {
		return fmt.Sprintf("%s#%d(%s)", p.Kind, p.ID, p.Tag)
	}
	return fmt.Sprintf("%s(%s)", p.Kind, p.Tag)
}
