package scenes

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/ui"
)

// StartScene 开始画面
// 显示标题、副标题和"开始"按钮，点击后进入角色选择
type StartScene struct {
	ctx   *Context
	layer *uiLayer
	fonts fontSet
	logo  *ui.Logo

	playButton ecs.EntityID
	elapsed    float64
}

// NewStartScene 创建开始画面
func NewStartScene(ctx *Context) *StartScene {
	s := &StartScene{
		ctx:   ctx,
		layer: newUILayer(ctx.Drag, 1),
		fonts: ctx.fonts(),
	}
	title := ctx.Content.Title
	s.logo = ui.NewLogo(title.Line1, title.Line2, s.fonts.title, s.fonts.huge)

	s.playButton = s.layer.addButton(buttonSpec{
		label: title.PlayButton,
		face:  s.fonts.button,
		cx:    config.ScreenWidth / 2,
		cy:    500,
		w:     300,
		h:     80,
		color: ui.ColorSuccess,
		pulse: true,
	}, s.onPlayClicked)

	log.Printf("[StartScene] Initialized")
	return s
}

// onPlayClicked 进入角色选择
func (s *StartScene) onPlayClicked() {
	s.ctx.playSound(game.SoundClick)
	s.ctx.Journey.Start()
}

// Update 推进动画和按钮
func (s *StartScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.layer.update(deltaTime)
}

// Draw 绘制开始画面
func (s *StartScene) Draw(screen *ebiten.Image) {
	ui.DrawLandscape(screen, 0, s.elapsed)
	ui.DrawSun(screen, config.ScreenWidth-150, 120, ui.CharacterProps{Happy: true, Size: ui.SizeLarge}, s.elapsed)

	// 火车从左到右循环驶过
	span := float64(config.ScreenWidth) + 600
	trainX := math.Mod(s.elapsed*140, span) - 300
	ui.DrawTrain(screen, trainX, config.ScreenHeight-30, ui.TrainProps{
		CharacterProps: ui.CharacterProps{Happy: true, Size: ui.SizeMedium},
		Moving:         true,
	}, s.elapsed)

	s.logo.Draw(screen, config.ScreenWidth/2, 210, s.elapsed/0.8)

	title := s.ctx.Content.Title
	ui.DrawTextShadow(screen, title.Tagline, s.fonts.title, config.ScreenWidth/2, 380, ui.ColorWhite, ui.AlignCenter)
	s.layer.drawButtons(screen)

	ui.DrawText(screen, title.CreditsRole, s.fonts.small, 24, config.ScreenHeight-52, ui.ColorWhite, ui.AlignLeft)
	ui.DrawTextShadow(screen, title.CreditsName, s.fonts.body, 24, config.ScreenHeight-26, ui.ColorWhite, ui.AlignLeft)
}

// Dispose 释放标题图像
func (s *StartScene) Dispose() {
	s.logo.Dispose()
}
