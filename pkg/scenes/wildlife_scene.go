package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/station"
	"github.com/gonewx/greentrain/pkg/ui"
)

// WildlifeScene 站点4：把被困的动物拖回它们的栖息地
type WildlifeScene struct {
	*stationScene
	game *station.Wildlife
	cfg  config.WildlifeConfig
}

// NewWildlifeScene 从布局配置创建站点4
func NewWildlifeScene(ctx *Context) *WildlifeScene {
	cfg := ctx.Stations.Wildlife
	s := &WildlifeScene{
		game: station.NewWildlife(cfg),
		cfg:  cfg,
	}
	s.stationScene = newStationScene(ctx, cfg.ID, s.game, s)

	// 栖息地占满了画面下方，引导气泡放到笼子和栖息地之间
	s.guideX = (config.ScreenWidth - config.HintBubbleWidth) / 2
	s.guideY = 286

	s.register()
	return s
}

func animalKey(id int) string             { return fmt.Sprintf("animal:%d", id) }
func habitatKey(h station.Habitat) string { return "habitat:" + string(h) }

// register 注册动物拖拽源和栖息地目标
// 已回家的动物不能再拖起
func (s *WildlifeScene) register() {
	for _, a := range s.game.Animals() {
		id := a.ID
		x, y := config.PercentToScreen(a.X, a.Y)
		s.board.AddSource(dnd.Source{
			Key:  animalKey(id),
			Area: dnd.RectAround(x, y, config.CageSize, config.CageSize),
			Payload: dnd.Payload{
				Kind:  dnd.KindAnimal,
				ID:    id,
				Tag:   string(a.Habitat),
				Glyph: a.Glyph,
				Label: a.Name,
			},
			Enabled: func() bool {
				cur, ok := s.game.Entity(id)
				return ok && !cur.Rescued
			},
		})
	}

	for _, h := range s.cfg.Habitats {
		x, y := screenPos(h.Position)
		s.board.AddTarget(dnd.Target{
			Key:     habitatKey(station.Habitat(h.Habitat)),
			Area:    dnd.RectAround(x, y, config.HabitatWidth, config.HabitatHeight),
			Accepts: dnd.KindAnimal,
			Tag:     h.Habitat,
		})
	}
}

// handleDrop 动物投放到栖息地
func (s *WildlifeScene) handleDrop(drop *dnd.Drop) station.DropResult {
	return s.game.Release(drop.Payload.ID, station.Habitat(drop.Target.Tag))
}

// wouldReject 动物的栖息地与目标不同
func (s *WildlifeScene) wouldReject(p dnd.Payload, t *dnd.Target) bool {
	return p.Tag != t.Tag
}

// drawWorld 山地、栖息地和笼子里的动物
func (s *WildlifeScene) drawWorld(screen *ebiten.Image) {
	ui.DrawMountainBackdrop(screen, s.game.Complete(), s.elapsed)

	for _, h := range s.cfg.Habitats {
		x, y := screenPos(h.Position)
		habitat := station.Habitat(h.Habitat)
		area := dnd.RectAround(x, y, config.HabitatWidth, config.HabitatHeight)
		ui.DrawHabitat(screen, area, habitat, h.Label, s.game.RescuedIn(habitat), s.fonts.body, s.style(habitatKey(habitat)), s.elapsed)
	}

	for _, a := range s.game.Animals() {
		key := animalKey(a.ID)
		if a.Rescued || s.dragging(key) {
			continue
		}
		x, y := config.PercentToScreen(a.X, a.Y)
		ui.DrawAnimalCage(screen, x, y, a, s.fonts.small, s.style(key))
	}
}
