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

// ReforestationScene 站点1：把种子和水拖到种植点上
type ReforestationScene struct {
	*stationScene
	game *station.Reforestation
	cfg  config.ReforestationConfig
}

// NewReforestationScene 从布局配置创建站点1
func NewReforestationScene(ctx *Context) *ReforestationScene {
	cfg := ctx.Stations.Reforestation
	s := &ReforestationScene{
		game: station.NewReforestation(cfg),
		cfg:  cfg,
	}
	s.stationScene = newStationScene(ctx, cfg.ID, s.game, s)
	s.register()
	return s
}

func toolKey(kind string) string { return "tool:" + kind }
func spotKey(id int) string      { return fmt.Sprintf("spot:%d", id) }

// register 注册工具拖拽源和种植点目标
func (s *ReforestationScene) register() {
	for _, tool := range s.cfg.Tools {
		x, y := screenPos(tool.Position)
		s.board.AddSource(dnd.Source{
			Key:  toolKey(tool.Kind),
			Area: dnd.RectAround(x, y, config.ToolChipSize, config.ToolChipSize),
			Payload: dnd.Payload{
				Kind:  dnd.KindTool,
				Tag:   tool.Kind,
				Label: tool.Label,
			},
		})
	}

	for _, spot := range s.game.Spots() {
		x, y := config.PercentToScreen(spot.X, spot.Y)
		s.board.AddTarget(dnd.Target{
			Key:     spotKey(spot.ID),
			Area:    dnd.Circle{X: x, Y: y, R: config.SpotRadius * 1.3},
			Accepts: dnd.KindTool,
			ID:      spot.ID,
		})
	}
}

// handleDrop 工具投放到种植点
func (s *ReforestationScene) handleDrop(drop *dnd.Drop) station.DropResult {
	return s.game.ApplyTool(drop.Target.ID, station.Tool(drop.Payload.Tag))
}

// wouldReject 只有 空地+种子 和 已播种+水 是有效组合
func (s *ReforestationScene) wouldReject(p dnd.Payload, t *dnd.Target) bool {
	spot, ok := s.game.Entity(t.ID)
	if !ok {
		return false
	}
	tool := station.Tool(p.Tag)
	switch spot.State {
	case station.SpotEmpty:
		return tool != station.ToolSeed
	case station.SpotSeeded:
		return tool != station.ToolWater
	default:
		return true
	}
}

// drawWorld 森林背景、种植点和工具
func (s *ReforestationScene) drawWorld(screen *ebiten.Image) {
	complete := s.game.Complete()
	ui.DrawForestBackdrop(screen, complete, s.elapsed)

	for _, spot := range s.game.Spots() {
		x, y := config.PercentToScreen(spot.X, spot.Y)
		label := s.cfg.SpotLabel(spot.State.String())
		ui.DrawSpot(screen, x, y, spot.State, label, s.fonts.small, s.style(spotKey(spot.ID)), s.elapsed)
	}

	for i, tool := range s.cfg.Tools {
		x, y := screenPos(tool.Position)
		ui.DrawToolChip(screen, x, y, station.Tool(tool.Kind), tool.Label, fmt.Sprintf("%d", i+1), s.fonts.small, s.dragging(toolKey(tool.Kind)))
	}

	if complete {
		s.drawReturningAnimals(screen)
	}
}

// drawReturningAnimals 完成后鸟和蝴蝶飞回森林
func (s *ReforestationScene) drawReturningAnimals(screen *ebiten.Image) {
	glyphs := []string{"🐦", "🦋", "🐦", "🦋"}
	span := float64(config.ScreenWidth) + 200
	for i, g := range glyphs {
		x := math.Mod(s.elapsed*(90+float64(i)*25)+float64(i)*330, span) - 100
		y := 150 + float64(i%2)*70 + math.Sin(s.elapsed*2+float64(i))*25
		ui.DrawIcon(screen, g, x, y, 48)
	}
}
