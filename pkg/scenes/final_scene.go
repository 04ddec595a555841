package scenes

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// FinalScene 旅程终点的庆祝画面
type FinalScene struct {
	ctx     *Context
	layer   *uiLayer
	fonts   fontSet
	elapsed float64
}

// NewFinalScene 创建终点画面，彩纸持续飘落直到离开
func NewFinalScene(ctx *Context) *FinalScene {
	s := &FinalScene{
		ctx:   ctx,
		layer: newUILayer(ctx.Drag, 99),
		fonts: ctx.fonts(),
	}

	final := ctx.Content.Final
	s.layer.addButton(buttonSpec{
		label: final.ReplayButton,
		face:  s.fonts.button,
		cx:    config.ScreenWidth / 2,
		cy:    640,
		w:     math.Max(320, ui.MeasureText(final.ReplayButton, s.fonts.button)+80),
		h:     72,
		color: ui.ColorLeaf,
		pulse: true,
	}, s.onReplay)

	s.layer.confetti(config.ScreenWidth, 0, confettiPalette)
	ctx.playSound(game.SoundFanfare)

	log.Printf("[FinalScene] 旅程完成")
	return s
}

// onReplay 重新开始旅程
func (s *FinalScene) onReplay() {
	s.ctx.playSound(game.SoundClick)
	s.ctx.Journey.Restart()
}

// Update 推进彩纸和按钮
func (s *FinalScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.layer.update(deltaTime)
}

// Draw 绘制标题、总结、成就徽章和结束语
func (s *FinalScene) Draw(screen *ebiten.Image) {
	ui.DrawCelebrationBackdrop(screen, ui.ColorLeaf, s.elapsed)
	s.layer.drawParticles(screen)

	final := s.ctx.Content.Final
	ui.DrawEarth(screen, config.ScreenWidth/2, 120, ui.CharacterProps{Happy: true, Size: ui.SizeMedium}, s.elapsed)
	ui.DrawTextShadow(screen, final.Headline, s.fonts.huge, config.ScreenWidth/2, 215, ui.ColorWhite, ui.AlignCenter)
	ui.DrawTextShadow(screen, final.Subtitle, s.fonts.title, config.ScreenWidth/2, 262, ui.ColorWhite, ui.AlignCenter)

	for i, line := range final.Summary {
		ui.DrawText(screen, line, s.fonts.body, config.ScreenWidth/2, 305+float64(i)*30, ui.ColorWhite, ui.AlignCenter)
	}

	n := len(final.Badges)
	for i, b := range final.Badges {
		x := config.ScreenWidth/2 + (float64(i)-float64(n-1)/2)*220
		appear := utils.EaseOutBack(utils.Clamp01(s.elapsed*2 - float64(i)*0.4))
		if appear <= 0 {
			continue
		}
		r := 52 * appear
		ui.DrawBadge(screen, x, 440, r, b.Glyph, b.Label, hexColor(b.Color, ui.ColorHighlight), s.fonts.small)
	}

	ui.DrawTextShadow(screen, final.Closing, s.fonts.title, config.ScreenWidth/2, 565, ui.ColorHighlight, ui.AlignCenter)

	avatar, _ := s.ctx.Journey.Avatar()
	trainX := math.Mod(s.elapsed*160, config.ScreenWidth+600) - 300
	ui.DrawTrain(screen, trainX, config.ScreenHeight-4, ui.TrainProps{
		CharacterProps: ui.CharacterProps{Happy: true, Size: ui.SizeSmall},
		Color:          hexColor(avatar.Color, ui.ColorLeaf),
		Moving:         true,
	}, s.elapsed)

	s.layer.drawButtons(screen)
}
