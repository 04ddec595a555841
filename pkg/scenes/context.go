package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/utils"
)

// Context 所有场景共享的运行时对象
// 由 app 在启动时创建一次，场景只读取其中的指针，不替换它们
type Context struct {
	// Journey 旅程编排器，场景只通过它的操作切换画面
	Journey *game.Journey

	// Stations, Content 嵌入的布局与文字配置
	Stations *config.StationsConfig
	Content  *config.JourneyConfig

	Resources *game.ResourceManager
	Audio     *game.AudioManager

	// Drag 指针输入，每帧由 app 在场景 Update 之前更新
	Drag *utils.DragManager

	// Session 全局唯一的拖拽会话，站点场景的 Board 绑定到它
	Session *dnd.Session
}

// fontSet 场景常用的几种字号
type fontSet struct {
	huge   *text.GoTextFace
	title  *text.GoTextFace
	button *text.GoTextFace
	body   *text.GoTextFace
	small  *text.GoTextFace
}

// fonts 从资源管理器取字体，加载失败的字号为 nil（绘制时跳过文字）
func (c *Context) fonts() fontSet {
	rm := c.Resources
	if rm == nil {
		return fontSet{}
	}
	return fontSet{
		huge:   rm.GetFont(game.FontBold, 60),
		title:  rm.GetFont(game.FontBold, 30),
		button: rm.GetFont(game.FontBold, 26),
		body:   rm.GetFont(game.FontRegular, 22),
		small:  rm.GetFont(game.FontRegular, 17),
	}
}

// playSound 播放音效，没有音频管理器时忽略
func (c *Context) playSound(id game.SoundID) {
	c.Audio.PlaySound(id)
}

// hexColor 解析配置中的颜色，格式错误时使用 fallback
func hexColor(s string, fallback color.RGBA) color.RGBA {
	return utils.MustHexColor(s, fallback)
}
