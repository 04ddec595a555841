package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// cardState 地图卡片的三种状态
type cardState int

const (
	cardLocked cardState = iota
	cardUnlocked
	cardCompleted
)

// MapScene 任务地图
// 站点卡片分页显示；只有下一个未完成的站点可以进入
type MapScene struct {
	ctx      *Context
	layer    *uiLayer
	fonts    fontSet
	stations []config.StationCardConfig
	perPage  int
	page     int

	prevButton ecs.EntityID
	nextButton ecs.EntityID

	hover   int
	elapsed float64
}

// NewMapScene 创建地图画面，初始页为包含下一个站点的那一页
func NewMapScene(ctx *Context) *MapScene {
	s := &MapScene{
		ctx:      ctx,
		layer:    newUILayer(ctx.Drag, 3),
		fonts:    ctx.fonts(),
		stations: ctx.Content.Map.Stations,
		perPage:  ctx.Content.Map.StationsPerPage,
		hover:    -1,
	}
	if s.perPage <= 0 {
		s.perPage = 2
	}
	s.page = s.pageOf(ctx.Journey.Progress().Current + 1)

	arrowY := config.MapCardY + config.MapCardHeight/2
	s.prevButton = s.layer.addButton(buttonSpec{
		label: "<",
		face:  s.fonts.title,
		cx:    60,
		cy:    arrowY,
		w:     config.MapArrowSize,
		h:     config.MapArrowSize,
		color: ui.ColorLeaf,
	}, func() { s.turnPage(-1) })
	s.nextButton = s.layer.addButton(buttonSpec{
		label: ">",
		face:  s.fonts.title,
		cx:    config.ScreenWidth - 60,
		cy:    arrowY,
		w:     config.MapArrowSize,
		h:     config.MapArrowSize,
		color: ui.ColorLeaf,
	}, func() { s.turnPage(1) })
	s.updateArrows()

	log.Printf("[MapScene] 进度 %d/%d，第 %d 页", ctx.Journey.Progress().CompletedCount(), game.StationCount, s.page+1)
	return s
}

// pageCount 总页数
func (s *MapScene) pageCount() int {
	return (len(s.stations) + s.perPage - 1) / s.perPage
}

// pageOf 返回站点所在页，超出范围时取最后一页
func (s *MapScene) pageOf(stationID int) int {
	page := (stationID - 1) / s.perPage
	if last := s.pageCount() - 1; page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// turnPage 前后翻页
func (s *MapScene) turnPage(delta int) {
	next := s.page + delta
	if next < 0 || next >= s.pageCount() {
		return
	}
	s.page = next
	s.ctx.playSound(game.SoundClick)
	s.updateArrows()
}

func (s *MapScene) updateArrows() {
	s.layer.setButtonEnabled(s.prevButton, s.page > 0)
	s.layer.setButtonEnabled(s.nextButton, s.page < s.pageCount()-1)
}

// visible 当前页显示的站点下标
func (s *MapScene) visible() []int {
	var out []int
	for i := s.page * s.perPage; i < len(s.stations) && i < (s.page+1)*s.perPage; i++ {
		out = append(out, i)
	}
	return out
}

// cardRect 当前页第 slot 张卡片的位置
func (s *MapScene) cardRect(slot, count int) rect {
	total := float64(count)*config.MapCardWidth + float64(count-1)*config.MapCardGap
	x := (config.ScreenWidth-total)/2 + float64(slot)*(config.MapCardWidth+config.MapCardGap)
	return rect{x: x, y: config.MapCardY, w: config.MapCardWidth, h: config.MapCardHeight}
}

// stateOf 站点卡片状态
func (s *MapScene) stateOf(id int) cardState {
	p := s.ctx.Journey.Progress()
	switch {
	case p.IsCompleted(id):
		return cardCompleted
	case p.IsUnlocked(id):
		return cardUnlocked
	default:
		return cardLocked
	}
}

// Update 处理卡片点击
func (s *MapScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.layer.update(deltaTime)

	s.hover = -1
	idx := s.visible()
	for slot, i := range idx {
		r := s.cardRect(slot, len(idx))
		if hovered(s.ctx.Drag, r) {
			s.hover = i
		}
		if clicked(s.ctx.Drag, r) {
			s.onCardClicked(s.stations[i].ID)
			return
		}
	}
}

// onCardClicked 进入站点；锁定或已完成的卡片只给出抖动反馈
func (s *MapScene) onCardClicked(id int) {
	if s.ctx.Journey.SelectStation(id) {
		s.ctx.playSound(game.SoundClick)
		return
	}
	s.layer.feedbackSystem.Reject(cardKey(id))
	s.ctx.playSound(game.SoundReject)
}

func cardKey(id int) string {
	return fmt.Sprintf("card:%d", id)
}

// Draw 绘制地图
func (s *MapScene) Draw(screen *ebiten.Image) {
	progress := s.ctx.Journey.Progress()
	ui.DrawLandscape(screen, progress.Fraction(), s.elapsed)

	mapCfg := s.ctx.Content.Map
	ui.DrawTextShadow(screen, mapCfg.Heading, s.fonts.huge, config.ScreenWidth/2, 110, ui.ColorWhite, ui.AlignCenter)
	s.drawDriverBadge(screen)

	idx := s.visible()
	for slot, i := range idx {
		s.drawCard(screen, s.cardRect(slot, len(idx)), s.stations[i], i == s.hover)
	}
	s.drawPageDots(screen)

	footer := fmt.Sprintf(mapCfg.ProgressFormat, progress.CompletedCount(), game.StationCount)
	w := ui.MeasureText(footer, s.fonts.body) + 60
	ui.FillRoundedRect(screen, (config.ScreenWidth-w)/2, 560, w, 48, 24, utils.WithAlpha(ui.ColorWhite, 0.9))
	ui.DrawText(screen, footer, s.fonts.body, config.ScreenWidth/2, 584, ui.ColorInk, ui.AlignCenter)

	// 火车沿轨道按进度前进
	trainX := 180 + progress.Fraction()*(config.ScreenWidth-360)
	avatar, _ := s.ctx.Journey.Avatar()
	ui.DrawTrain(screen, trainX, config.ScreenHeight-20, ui.TrainProps{
		CharacterProps: ui.CharacterProps{Happy: true, Size: ui.SizeSmall},
		Color:          hexColor(avatar.Color, ui.ColorLeaf),
	}, s.elapsed)

	s.layer.drawButtons(screen)
	s.layer.drawParticles(screen)
}

// drawDriverBadge 左上角的司机徽章
func (s *MapScene) drawDriverBadge(screen *ebiten.Image) {
	avatar, ok := s.ctx.Journey.Avatar()
	if !ok {
		return
	}
	c := hexColor(avatar.Color, ui.ColorLeaf)
	ui.FillRoundedRect(screen, 20, 20, 300, 76, 38, utils.WithAlpha(ui.ColorWhite, 0.92))
	ui.StrokeRoundedRect(screen, 20, 20, 300, 76, 38, 3, c)
	ui.FillCircle(screen, 58, 58, 30, c)
	ui.DrawIcon(screen, avatar.Glyph, 58, 58, 44)
	ui.DrawText(screen, s.ctx.Content.Map.DriverLabel, s.fonts.small, 100, 44, ui.ColorLocked, ui.AlignLeft)
	ui.DrawText(screen, avatar.Name, s.fonts.body, 100, 72, ui.ColorInk, ui.AlignLeft)
}

// drawCard 站点卡片
func (s *MapScene) drawCard(screen *ebiten.Image, r rect, st config.StationCardConfig, hover bool) {
	state := s.stateOf(st.ID)
	c := hexColor(st.Color, ui.ColorLeaf)
	shake := s.layer.feedbackSystem.ShakeOffset(cardKey(st.ID))

	x, y, w, h := r.x+shake, r.y, r.w, r.h
	if state == cardUnlocked {
		// 呼吸缩放吸引注意
		grow := 10 * (1 - utils.Pulse(s.elapsed, 1.4, 1))
		x, y, w, h = x-grow/2, y-grow/2, w+grow, h+grow
	}

	face := c
	if state == cardLocked {
		face = ui.ColorLocked
	}
	ui.FillRoundedRect(screen, x+6, y+10, w, h, 30, ui.ColorShadow)
	ui.FillRoundedRect(screen, x, y, w, h, 30, ui.ColorWhite)
	ui.FillRoundedRect(screen, x, y, w, h*0.5, 30, face)
	ui.FillRect(screen, x, y+h*0.3, w, h*0.2, face)

	border := utils.Lighten(face, 0.4)
	if hover && state == cardUnlocked {
		border = ui.ColorHighlight
	}
	if s.layer.feedbackSystem.IsRejected(cardKey(st.ID)) {
		border = ui.ColorError
	}
	ui.StrokeRoundedRect(screen, x, y, w, h, 30, 6, border)

	// 站点编号
	cx := x + w/2
	ui.FillCircle(screen, cx, y+h*0.25, 52, utils.Lighten(face, 0.3))
	ui.DrawText(screen, fmt.Sprintf("%d", st.ID), s.fonts.huge, cx, y+h*0.25, ui.ColorWhite, ui.AlignCenter)

	ui.DrawText(screen, st.Name, s.fonts.title, cx, y+h*0.64, ui.ColorInk, ui.AlignCenter)
	ui.DrawText(screen, st.Theme, s.fonts.body, cx, y+h*0.78, utils.Darken(face, 0.2), ui.AlignCenter)

	switch state {
	case cardCompleted:
		drawCheck(screen, x+w-44, y+44, 30)
	case cardLocked:
		drawLock(screen, x+w-44, y+44, 26)
	}
}

// drawPageDots 页码圆点
func (s *MapScene) drawPageDots(screen *ebiten.Image) {
	n := s.pageCount()
	if n <= 1 {
		return
	}
	startX := config.ScreenWidth/2 - float64(n-1)*14
	for i := 0; i < n; i++ {
		c := utils.WithAlpha(ui.ColorWhite, 0.5)
		if i == s.page {
			c = ui.ColorWhite
		}
		ui.FillCircle(screen, startX+float64(i)*28, config.MapCardY+config.MapCardHeight+36, 8, c)
	}
}

// drawCheck 绿色圆底的对勾
func drawCheck(screen *ebiten.Image, cx, cy, r float64) {
	ui.FillCircle(screen, cx, cy, r, ui.ColorSuccess)
	ui.StrokeCircle(screen, cx, cy, r, 3, ui.ColorWhite)
	ui.Line(screen, cx-r*0.45, cy, cx-r*0.1, cy+r*0.35, 6, ui.ColorWhite)
	ui.Line(screen, cx-r*0.1, cy+r*0.35, cx+r*0.5, cy-r*0.35, 6, ui.ColorWhite)
}

// drawLock 锁形图标
func drawLock(screen *ebiten.Image, cx, cy, s float64) {
	ink := color.RGBA{71, 85, 105, 255}
	ui.StrokeCircle(screen, cx, cy-s*0.35, s*0.45, 5, ink)
	ui.FillRoundedRect(screen, cx-s*0.7, cy-s*0.25, s*1.4, s*1.1, 6, ink)
	ui.FillCircle(screen, cx, cy+s*0.25, s*0.16, ui.ColorLocked)
}
