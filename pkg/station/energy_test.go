package station

import (
	"testing"

	"github.com/gonewx/greentrain/pkg/config"
)

// TestEnergyNeedsBothConditions 只关灯或只装板都不能完成
func TestEnergyNeedsBothConditions(t *testing.T) {
	cfg := loadStations(t)

	t.Run("只关灯", func(t *testing.T) {
		e := NewEnergy(cfg.Energy)
		for _, b := range e.Buildings() {
			e.ToggleLight(b.ID)
		}
		if e.LightsOff() != 4 || e.Complete() {
			t.Errorf("lights off = %d, complete = %v", e.LightsOff(), e.Complete())
		}
	})

	t.Run("只装板", func(t *testing.T) {
		e := NewEnergy(cfg.Energy)
		for _, b := range e.Buildings() {
			e.InstallPanel(b.ID)
		}
		if e.Panels() != 4 || e.Complete() {
			t.Errorf("panels = %d, complete = %v", e.Panels(), e.Complete())
		}
	})

	t.Run("全部完成", func(t *testing.T) {
		e := NewEnergy(cfg.Energy)
		fired := 0
		for _, b := range e.Buildings() {
			if e.InstallPanel(b.ID).Completed {
				fired++
			}
			if e.ToggleLight(b.ID).Completed {
				fired++
			}
		}
		if fired != 1 || !e.Complete() {
			t.Errorf("completion fired %d times, complete = %v", fired, e.Complete())
		}
		if e.Hint().Text != cfg.Energy.Hint(config.HintComplete) {
			t.Errorf("final hint = %q", e.Hint().Text)
		}
	})
}

// TestEnergyToggleHints 只有关灯时更新引导文本
func TestEnergyToggleHints(t *testing.T) {
	cfg := loadStations(t)
	e := NewEnergy(cfg.Energy)
	intro := e.Hint().Text

	res := e.ToggleLight(1)
	if res.Verdict != VerdictAccepted || res.Hint.Text != cfg.Energy.Hint(config.HintLightsOff) {
		t.Errorf("turning off: %+v", res)
	}

	e.InstallPanel(2)
	panelHint := e.Hint().Text

	res = e.ToggleLight(1) // 重新开灯
	if b, _ := e.Entity(1); !b.LightsOn {
		t.Error("second toggle should turn the light back on")
	}
	if res.Hint.Text != panelHint {
		t.Errorf("turning on changed the hint to %q", res.Hint.Text)
	}
	if intro == panelHint {
		t.Error("panel hint should differ from intro")
	}
}

// TestEnergyPanelIsPermanent 太阳能板只能从无到有
func TestEnergyPanelIsPermanent(t *testing.T) {
	e := NewEnergy(loadStations(t).Energy)

	if res := e.InstallPanel(3); res.Verdict != VerdictAccepted {
		t.Errorf("first panel verdict = %s", res.Verdict)
	}
	if res := e.InstallPanel(3); res.Verdict != VerdictIgnored {
		t.Errorf("second panel verdict = %s, want ignored", res.Verdict)
	}
	e.ToggleLight(3)
	if b, _ := e.Entity(3); !b.HasPanel {
		t.Error("toggling lights removed the panel")
	}
}

// TestEnergyBuildingKinds 布局中的 house / building 对应两种建筑
func TestEnergyBuildingKinds(t *testing.T) {
	e := NewEnergy(loadStations(t).Energy)

	kinds := map[BuildingKind]int{}
	for _, b := range e.Buildings() {
		kinds[b.Kind]++
	}
	if kinds[House] != 2 || kinds[TallBuilding] != 2 || len(kinds) != 2 {
		t.Errorf("building kinds = %v, want 2 %s and 2 %s", kinds, House, TallBuilding)
	}
}
