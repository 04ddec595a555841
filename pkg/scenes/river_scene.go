package scenes

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/station"
	"github.com/gonewx/greentrain/pkg/ui"
)

// RiverScene 站点2：把漂浮的垃圾分到正确的垃圾桶
type RiverScene struct {
	*stationScene
	game *station.River
	cfg  config.RiverConfig
}

// NewRiverScene 从布局配置创建站点2
func NewRiverScene(ctx *Context) *RiverScene {
	cfg := ctx.Stations.River
	s := &RiverScene{
		game: station.NewRiver(cfg),
		cfg:  cfg,
	}
	s.stationScene = newStationScene(ctx, cfg.ID, s.game, s)
	s.register()
	return s
}

func trashKey(id int) string           { return fmt.Sprintf("trash:%d", id) }
func binKey(c station.Category) string { return "bin:" + string(c) }

// register 注册垃圾拖拽源和垃圾桶目标
// 已清理的垃圾不能再拖起
func (s *RiverScene) register() {
	for _, item := range s.game.Items() {
		id := item.ID
		x, y := config.PercentToScreen(item.X, item.Y)
		s.board.AddSource(dnd.Source{
			Key:  trashKey(id),
			Area: dnd.Circle{X: x, Y: y, R: config.TrashRadius * 1.2},
			Payload: dnd.Payload{
				Kind:  dnd.KindTrash,
				ID:    id,
				Tag:   string(item.Category),
				Glyph: item.Glyph,
				Label: item.Label,
			},
			Enabled: func() bool {
				it, ok := s.game.Entity(id)
				return ok && !it.Cleaned
			},
		})
	}

	for _, bin := range s.cfg.Bins {
		x, y := screenPos(bin.Position)
		s.board.AddTarget(dnd.Target{
			Key:     binKey(station.Category(bin.Category)),
			Area:    dnd.RectAround(x, y, config.BinWidth, config.BinHeight),
			Accepts: dnd.KindTrash,
			Tag:     bin.Category,
		})
	}
}

// handleDrop 垃圾投放到垃圾桶
func (s *RiverScene) handleDrop(drop *dnd.Drop) station.DropResult {
	return s.game.DropInBin(drop.Payload.ID, station.Category(drop.Target.Tag))
}

// wouldReject 垃圾类别与垃圾桶类别不同
func (s *RiverScene) wouldReject(p dnd.Payload, t *dnd.Target) bool {
	return p.Tag != t.Tag
}

// drawWorld 河流、垃圾和垃圾桶
func (s *RiverScene) drawWorld(screen *ebiten.Image) {
	complete := s.game.Complete()
	ui.DrawRiverBackdrop(screen, complete, s.elapsed)

	for _, item := range s.game.Remaining() {
		key := trashKey(item.ID)
		if s.dragging(key) {
			continue
		}
		x, y := config.PercentToScreen(item.X, item.Y)
		ui.DrawTrash(screen, x, y, item, s.style(key), s.elapsed)
	}

	for _, bin := range s.cfg.Bins {
		x, y := screenPos(bin.Position)
		category := station.Category(bin.Category)
		area := dnd.RectAround(x, y, config.BinWidth, config.BinHeight)
		ui.DrawBin(screen, area, category, bin.Label, s.fonts.body, s.style(binKey(category)))
	}

	// 清理掉的垃圾越多，回来的鱼越多
	done, _ := s.game.Progress()
	for i := 0; i < done; i++ {
		span := float64(config.ScreenWidth) + 160
		x := math.Mod(s.elapsed*(60+float64(i)*12)+float64(i)*240, span) - 80
		y := config.ScreenHeight*ui.RiverTop + 80 + float64(i%3)*90 + math.Sin(s.elapsed*3+float64(i))*10
		ui.DrawIcon(screen, "🐟", x, y, 40)
	}
}
