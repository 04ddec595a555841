package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/station"
	"github.com/gonewx/greentrain/pkg/ui"
	"github.com/gonewx/greentrain/pkg/utils"
)

// panelKey 太阳能板拖拽源（数量不限）
const panelKey = "panel"

// EnergyScene 站点3：点击建筑关灯，把太阳能板拖到建筑上
type EnergyScene struct {
	*stationScene
	game *station.Energy
	cfg  config.EnergyConfig
}

// NewEnergyScene 从布局配置创建站点3
func NewEnergyScene(ctx *Context) *EnergyScene {
	cfg := ctx.Stations.Energy
	s := &EnergyScene{
		game: station.NewEnergy(cfg),
		cfg:  cfg,
	}
	s.stationScene = newStationScene(ctx, cfg.ID, s.game, s)
	s.register()
	return s
}

func buildingKey(id int) string { return fmt.Sprintf("building:%d", id) }

// buildingRect 建筑整体区域（含屋顶），建筑坐标为屋顶左上角
func buildingRect(b station.Building) dnd.Rect {
	x, y := config.PercentToScreen(b.X, b.Y)
	w, h := ui.BuildingSize(b.Kind)
	return dnd.Rect{X: x - 10, Y: y - config.RoofHeight*0.5, W: w + 20, H: h + config.RoofHeight*0.5}
}

// register 注册太阳能板拖拽源和建筑目标
// 已装好太阳能板的建筑不再接受投放
func (s *EnergyScene) register() {
	x, y := screenPos(s.cfg.Panel.Position)
	s.board.AddSource(dnd.Source{
		Key:  panelKey,
		Area: dnd.RectAround(x, y+12, config.PanelChipWidth, config.PanelChipHeight+24),
		Payload: dnd.Payload{
			Kind:  dnd.KindSolarPanel,
			Tag:   "panel",
			Label: s.cfg.Panel.Label,
		},
	})

	for _, b := range s.game.Buildings() {
		id := b.ID
		s.board.AddTarget(dnd.Target{
			Key:     buildingKey(id),
			Area:    buildingRect(b),
			Accepts: dnd.KindSolarPanel,
			ID:      id,
			Enabled: func() bool {
				cur, ok := s.game.Entity(id)
				return ok && !cur.HasPanel
			},
		})
	}
}

// handleDrop 太阳能板投放到建筑
func (s *EnergyScene) handleDrop(drop *dnd.Drop) station.DropResult {
	return s.game.InstallPanel(drop.Target.ID)
}

// handleClick 点击建筑切换灯光
func (s *EnergyScene) handleClick(x, y float64) (string, station.DropResult, bool) {
	buildings := s.game.Buildings()
	for i := len(buildings) - 1; i >= 0; i-- {
		b := buildings[i]
		if buildingRect(b).Contains(x, y) {
			return buildingKey(b.ID), s.game.ToggleLight(b.ID), true
		}
	}
	return "", station.DropResult{}, false
}

// wouldReject 太阳能板可以装在任何还没有面板的建筑上
func (s *EnergyScene) wouldReject(p dnd.Payload, t *dnd.Target) bool {
	return false
}

// drawWorld 城市、建筑、太阳能板和两个指标
func (s *EnergyScene) drawWorld(screen *ebiten.Image) {
	ui.DrawCityBackdrop(screen, s.game.Complete(), s.elapsed)

	for _, b := range s.game.Buildings() {
		x, y := config.PercentToScreen(b.X, b.Y)
		ui.DrawBuilding(screen, x, y, b, s.style(buildingKey(b.ID)))
	}

	x, y := screenPos(s.cfg.Panel.Position)
	ui.DrawSolarPanelChip(screen, x, y, s.cfg.Panel.Label, s.fonts.small)

	s.drawIndicators(screen)
}

// drawIndicators 熄灯数和太阳能板数
func (s *EnergyScene) drawIndicators(screen *ebiten.Image) {
	total := len(s.cfg.Buildings)
	lightsDone := s.game.LightsOff() == total
	panelsDone := s.game.Panels() == total

	x, y := config.ProgressCounterX, config.ProgressCounterY+64
	ui.FillRoundedRect(screen, x, y, 130, 88, 20, utils.WithAlpha(ui.ColorWhite, 0.9))

	bulb := ui.ColorLocked
	if lightsDone {
		bulb = ui.ColorSuccess
	}
	ui.DrawIcon(screen, "💡", x+26, y+24, 30)
	ui.DrawText(screen, fmt.Sprintf("%d/%d", s.game.LightsOff(), total), s.fonts.body, x+84, y+24, bulb, ui.AlignCenter)

	sun := ui.ColorLocked
	if panelsDone {
		sun = ui.ColorSuccess
	}
	ui.DrawIcon(screen, "☀️", x+26, y+64, 30)
	ui.DrawText(screen, fmt.Sprintf("%d/%d", s.game.Panels(), total), s.fonts.body, x+84, y+64, sun, ui.AlignCenter)
}
