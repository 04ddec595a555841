package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// 角色卡片布局
const (
	avatarCardWidth  = 260.0
	avatarCardHeight = 320.0
	avatarCardGap    = 30.0
	avatarCardY      = 230.0
)

// AvatarSelectionScene 角色选择画面
// 点击任意角色卡片即选定角色并进入地图
type AvatarSelectionScene struct {
	ctx     *Context
	layer   *uiLayer
	fonts   fontSet
	avatars []game.Avatar
	cards   []rect
	hover   int
	elapsed float64
}

// NewAvatarSelectionScene 创建角色选择画面
func NewAvatarSelectionScene(ctx *Context) *AvatarSelectionScene {
	s := &AvatarSelectionScene{
		ctx:     ctx,
		layer:   newUILayer(ctx.Drag, 2),
		fonts:   ctx.fonts(),
		avatars: game.AvatarsFromConfig(ctx.Content),
		hover:   -1,
	}

	n := float64(len(s.avatars))
	total := n*avatarCardWidth + (n-1)*avatarCardGap
	x := (config.ScreenWidth - total) / 2
	for range s.avatars {
		s.cards = append(s.cards, rect{x: x, y: avatarCardY, w: avatarCardWidth, h: avatarCardHeight})
		x += avatarCardWidth + avatarCardGap
	}

	log.Printf("[AvatarSelectionScene] %d 个角色", len(s.avatars))
	return s
}

// Update 处理卡片悬停和点击
func (s *AvatarSelectionScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.layer.update(deltaTime)

	s.hover = -1
	for i, card := range s.cards {
		if hovered(s.ctx.Drag, card) {
			s.hover = i
		}
		if clicked(s.ctx.Drag, card) {
			s.selectAvatar(i)
			return
		}
	}
}

// selectAvatar 选定第 i 个角色
func (s *AvatarSelectionScene) selectAvatar(i int) {
	if i < 0 || i >= len(s.avatars) {
		return
	}
	if s.ctx.Journey.SelectAvatar(s.avatars[i]) {
		s.ctx.playSound(game.SoundAccept)
	}
}

// Draw 绘制标题、提示和角色卡片
func (s *AvatarSelectionScene) Draw(screen *ebiten.Image) {
	ui.DrawLandscape(screen, 0, s.elapsed)

	sel := s.ctx.Content.AvatarSelection
	ui.DrawPanel(screen, 140, 60, config.ScreenWidth-280, 130)
	ui.DrawText(screen, sel.Heading, s.fonts.huge, config.ScreenWidth/2, 105, ui.ColorLeaf, ui.AlignCenter)
	ui.DrawText(screen, sel.Prompt, s.fonts.body, config.ScreenWidth/2, 160, ui.ColorInk, ui.AlignCenter)

	for i, a := range s.avatars {
		s.drawCard(screen, s.cards[i], a, i == s.hover)
	}
}

// drawCard 角色卡片：彩色圆形头像、名字和描述
func (s *AvatarSelectionScene) drawCard(screen *ebiten.Image, r rect, a game.Avatar, hover bool) {
	c := hexColor(a.Color, ui.ColorLeaf)
	y := r.y
	if hover {
		y -= 12
	}

	ui.FillRoundedRect(screen, r.x+5, y+8, r.w, r.h, 28, ui.ColorShadow)
	ui.FillRoundedRect(screen, r.x, y, r.w, r.h, 28, ui.ColorWhite)
	border := utils.Lighten(c, 0.3)
	if hover {
		border = ui.ColorHighlight
	}
	ui.StrokeRoundedRect(screen, r.x, y, r.w, r.h, 28, 6, border)

	cx := r.x + r.w/2
	bob := 0.0
	if hover {
		bob = utils.Bob(s.elapsed, 0.8, 6)
	}
	ui.FillCircle(screen, cx, y+110+bob, 78, utils.Lighten(c, 0.6))
	ui.FillCircle(screen, cx, y+110+bob, 66, c)
	ui.DrawIcon(screen, a.Glyph, cx, y+110+bob, 92)

	ui.DrawText(screen, a.Name, s.fonts.title, cx, y+222, ui.ColorInk, ui.AlignCenter)
	ui.DrawWrappedText(screen, a.Description, s.fonts.small, cx, y+262, r.w-40, utils.Darken(c, 0.2), ui.AlignCenter)
}
