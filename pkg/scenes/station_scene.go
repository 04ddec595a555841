package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/station"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// stationGame 站点引擎的只读视图，四个站点的引擎都满足
type stationGame interface {
	Hint() station.Hint
	Complete() bool
	Progress() (int, int)
}

// stationHooks 各站点场景自己实现的部分
type stationHooks interface {
	// handleDrop 把落在目标上的投放交给站点引擎
	handleDrop(drop *dnd.Drop) station.DropResult

	// handleClick 按下时没有命中拖拽源，ok 为 false 表示该位置没有可点击的实体
	handleClick(x, y float64) (key string, res station.DropResult, ok bool)

	// wouldReject 把 p 投放到 t 上是否会被拒绝（悬停时显示红色提示）
	wouldReject(p dnd.Payload, t *dnd.Target) bool

	// drawWorld 绘制背景和站点实体
	drawWorld(screen *ebiten.Image)
}

// stationScene 四个站点场景共用的部分
//
// 职责：
//   - 把 DragManager 的按下 / 移动 / 松开事件转发给 dnd.Board
//   - 根据引擎返回的判定结果触发反馈（高亮、抖动、粒子、音效）
//   - 绘制标题、进度、引导气泡和最上层的拖拽预览
//   - 完成后显示"继续"按钮，点击后进入奖励画面
//
// 站点状态在场景创建时从布局配置生成，场景销毁时丢弃。
type stationScene struct {
	ctx    *Context
	id     int
	header config.StationHeader
	theme  color.RGBA
	game   stationGame
	hooks  stationHooks

	board *dnd.Board
	layer *uiLayer
	fonts fontSet

	// guideX, guideY 引导气泡左上角，站点布局拥挤时由具体场景调整
	guideX, guideY float64

	continueButton ecs.EntityID
	hasContinue    bool
	elapsed        float64
}

// newStationScene 创建站点场景的公共部分
func newStationScene(ctx *Context, id int, g stationGame, hooks stationHooks) *stationScene {
	header, _ := ctx.Stations.Header(id)

	// 上一个画面遗留的拖拽一律放弃
	ctx.Session.Cancel()

	s := &stationScene{
		ctx:    ctx,
		id:     id,
		header: header,
		theme:  hexColor(header.Color, ui.ColorLeaf),
		game:   g,
		hooks:  hooks,
		board:  dnd.NewBoard(ctx.Session),
		layer:  newUILayer(ctx.Drag, int64(id)),
		fonts:  ctx.fonts(),
		guideX: config.HintBubbleX,
		guideY: config.HintBubbleY,
	}
	if g.Complete() {
		s.showContinue()
	}

	done, total := g.Progress()
	log.Printf("[StationScene] 站点 %d 开始 (%d/%d)", id, done, total)
	return s
}

// Update 处理指针事件，然后推进效果和按钮
func (s *stationScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.handlePointer()
	s.layer.update(deltaTime)
}

// handlePointer 把指针事件转成拖拽操作
func (s *stationScene) handlePointer() {
	drag := s.ctx.Drag
	x, y := drag.Position()

	switch drag.GetState() {
	case utils.DragStateStarted:
		if src := s.board.Press(x, y); src != nil {
			s.ctx.playSound(game.SoundPickup)
			return
		}
		if key, res, ok := s.hooks.handleClick(x, y); ok {
			s.applyResult(key, "", res, x, y)
		}

	case utils.DragStateDragging:
		s.board.Move(x, y)

	case utils.DragStateEnded:
		// 落在空白处时 Release 返回 nil，不做任何处理
		if drop := s.board.Release(x, y); drop != nil {
			res := s.hooks.handleDrop(drop)
			s.applyResult(drop.Target.Key, drop.SourceKey, res, x, y)
		}
	}
}

// applyResult 根据判定结果触发反馈
func (s *stationScene) applyResult(targetKey, sourceKey string, res station.DropResult, x, y float64) {
	switch res.Verdict {
	case station.VerdictAccepted:
		s.layer.feedbackSystem.Accept(targetKey, ui.ColorHighlight)
		s.layer.particleSystem.Burst(x, y, 16, 280, []color.RGBA{s.theme, ui.ColorHighlight, ui.ColorWhite}, components.ShapeCircle)
		s.ctx.playSound(game.SoundAccept)

	case station.VerdictRejected:
		s.layer.feedbackSystem.Reject(targetKey)
		if sourceKey != "" {
			s.layer.feedbackSystem.Reject(sourceKey)
		}
		s.ctx.playSound(game.SoundReject)
	}

	if res.Completed {
		s.onComplete()
	}
}

// onComplete 站点完成：庆祝效果并显示"继续"按钮
func (s *stationScene) onComplete() {
	log.Printf("[StationScene] 站点 %d 完成", s.id)
	s.ctx.playSound(game.SoundComplete)
	s.layer.confetti(config.ScreenWidth, 2.5, []color.RGBA{s.theme, ui.ColorHighlight, utils.Lighten(s.theme, 0.5)})
	s.showContinue()
}

// showContinue 创建"继续"按钮（只创建一次）
func (s *stationScene) showContinue() {
	if s.hasContinue {
		return
	}
	s.hasContinue = true
	label := s.header.ContinueButton
	s.continueButton = s.layer.addButton(buttonSpec{
		label: label,
		face:  s.fonts.button,
		cx:    config.ScreenWidth / 2,
		cy:    config.ContinueButtonY,
		w:     math.Max(config.ContinueButtonWidth, ui.MeasureText(label, s.fonts.button)+80),
		h:     config.ContinueButtonHeight,
		color: utils.Darken(s.theme, 0.1),
		pulse: true,
	}, s.onContinue)
}

// onContinue 进入奖励画面
func (s *stationScene) onContinue() {
	if s.ctx.Journey.CompleteStationGame(s.id) {
		s.ctx.playSound(game.SoundClick)
	}
}

// style 返回实体 key 当前的视觉状态
func (s *stationScene) style(key string) ui.EntityStyle {
	fb := s.layer.feedbackSystem
	st := ui.EntityStyle{
		ShakeX: fb.ShakeOffset(key),
		Flash:  fb.FlashIntensity(key),
	}
	if t := s.board.Hover(); t != nil && t.Key == key {
		p, _ := s.board.Session().Payload()
		if s.hooks.wouldReject(p, t) {
			st.Wrong = true
		} else {
			st.Hover = true
		}
	}
	return st
}

// dragging 拖拽源 key 是否正被拖起
func (s *stationScene) dragging(key string) bool {
	session := s.board.Session()
	return session.Active() && session.SourceKey() == key
}

// handleClick 默认没有可点击的实体
func (s *stationScene) handleClick(x, y float64) (string, station.DropResult, bool) {
	return "", station.DropResult{}, false
}

// Draw 绘制站点：世界、HUD、粒子、按钮，最后是拖拽预览
func (s *stationScene) Draw(screen *ebiten.Image) {
	s.hooks.drawWorld(screen)

	ui.DrawHeader(screen, s.header.Title, s.theme, s.fonts.title)
	done, total := s.game.Progress()
	ui.DrawProgressCounter(screen, done, total, s.theme, s.fonts.body)
	s.drawGuide(screen)

	s.layer.drawParticles(screen)
	s.layer.drawButtons(screen)
	s.drawDragPreview(screen)
}

// drawGuide 太阳向导和引导气泡
func (s *stationScene) drawGuide(screen *ebiten.Image) {
	hint := s.game.Hint()
	h := ui.DrawSpeechBubble(screen, s.guideX, s.guideY, config.HintBubbleWidth, hint.Text, s.fonts.body, hint.IsError)
	ui.DrawSun(screen, s.guideX-20, s.guideY+h+70, ui.CharacterProps{
		Happy: !hint.IsError,
		Size:  ui.SizeSmall,
	}, s.elapsed)
}

// drawDragPreview 拖拽预览始终在最上层
func (s *stationScene) drawDragPreview(screen *ebiten.Image) {
	session := s.board.Session()
	p, ok := session.Payload()
	if !ok {
		return
	}
	cx, cy := session.PreviewCenter()
	ui.DrawPayloadPreview(screen, p, cx, cy, s.fonts.small)
}

// Dispose 放弃进行中的拖拽，站点状态随场景一起丢弃
func (s *stationScene) Dispose() {
	s.board.Clear()
	log.Printf("[StationScene] 站点 %d 离开", s.id)
}

// screenPos 百分比坐标转为像素坐标
func screenPos(p config.Position) (float64, float64) {
	return config.PercentToScreen(p.X, p.Y)
}
