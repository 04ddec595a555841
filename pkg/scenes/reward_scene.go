package scenes

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// RewardScene 站点完成后的奖励画面
// 按钮确认奖励：记录进度，返回地图（最后一站进入终点画面）
type RewardScene struct {
	ctx     *Context
	layer   *uiLayer
	fonts   fontSet
	station int
	header  config.StationHeader

	button  ecs.EntityID
	elapsed float64
}

// NewRewardScene 创建站点 id 的奖励画面
func NewRewardScene(ctx *Context, id int) *RewardScene {
	header, _ := ctx.Stations.Header(id)
	s := &RewardScene{
		ctx:     ctx,
		layer:   newUILayer(ctx.Drag, int64(10+id)),
		fonts:   ctx.fonts(),
		station: id,
		header:  header,
	}

	base := hexColor(header.Color, ui.ColorLeaf)
	s.button = s.layer.addButton(buttonSpec{
		label: header.Reward.Button,
		face:  s.fonts.button,
		cx:    config.ScreenWidth / 2,
		cy:    610,
		w:     math.Max(340, ui.MeasureText(header.Reward.Button, s.fonts.button)+80),
		h:     76,
		color: utils.Darken(base, 0.1),
		pulse: true,
	}, s.onContinue)

	s.layer.confetti(config.ScreenWidth, 3, confettiPalette)
	ctx.playSound(game.SoundFanfare)

	log.Printf("[RewardScene] 站点 %d 奖励", id)
	return s
}

// onContinue 确认奖励
func (s *RewardScene) onContinue() {
	if s.ctx.Journey.AcknowledgeReward(s.station) {
		s.ctx.playSound(game.SoundClick)
	}
}

// Update 推进彩纸和按钮
func (s *RewardScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.layer.update(deltaTime)
}

// Draw 绘制庆祝背景、标题、说明和跳动的图标
func (s *RewardScene) Draw(screen *ebiten.Image) {
	base := hexColor(s.header.Color, ui.ColorLeaf)
	ui.DrawCelebrationBackdrop(screen, base, s.elapsed)

	reward := s.header.Reward
	ui.DrawPanel(screen, 190, 70, config.ScreenWidth-380, 470)
	ui.DrawText(screen, reward.Title, s.fonts.huge, config.ScreenWidth/2, 130, utils.Darken(base, 0.15), ui.AlignCenter)
	ui.DrawText(screen, reward.Headline, s.fonts.title, config.ScreenWidth/2, 195, ui.ColorInk, ui.AlignCenter)
	ui.DrawWrappedText(screen, reward.Body, s.fonts.body, config.ScreenWidth/2, 245, config.ScreenWidth-480, ui.ColorInk, ui.AlignCenter)

	// 庆祝图标依次跳动
	n := len(reward.Glyphs)
	for i, glyph := range reward.Glyphs {
		x := config.ScreenWidth/2 + (float64(i)-float64(n-1)/2)*150
		y := 380 - math.Abs(math.Sin(s.elapsed*3+float64(i)*0.7))*30
		ui.FillCircle(screen, x, 400, 52, utils.Lighten(base, 0.7))
		ui.DrawIcon(screen, glyph, x, y, 84)
	}

	ui.DrawEarth(screen, 120, config.ScreenHeight-110, ui.CharacterProps{Happy: true, Size: ui.SizeSmall}, s.elapsed)
	ui.DrawSun(screen, config.ScreenWidth-120, 110, ui.CharacterProps{Happy: true, Size: ui.SizeSmall}, s.elapsed)

	s.layer.drawButtons(screen)
	s.layer.drawParticles(screen)
}
