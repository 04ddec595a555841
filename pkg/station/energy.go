package station

import (
	"github.com/gonewx/greentrain/pkg/config"
)

// BuildingKind 建筑类型
type BuildingKind string

const (
	House        BuildingKind = "house"
	TallBuilding BuildingKind = "building"
)

// Building 城市建筑
type Building struct {
	ID       int
	Kind     BuildingKind
	X, Y     float64 // 百分比坐标（屋顶左上角）
	LightsOn bool
	HasPanel bool
}

// energyInput 能源站点的两种操作
type energyInput int

const (
	inputToggleLight energyInput = iota
	inputInstallPanel
)

func (in energyInput) String() string {
	if in == inputInstallPanel {
		return "install-panel"
	}
	return "toggle-light"
}

// Energy 站点3：关灯与安装太阳能板
// 所有建筑都关灯且装有太阳能板时完成
type Energy struct {
	*Engine[Building, energyInput]
}

// NewEnergy 从布局配置创建站点3
func NewEnergy(cfg config.EnergyConfig) *Energy {
	buildings := make([]Building, 0, len(cfg.Buildings))
	for _, b := range cfg.Buildings {
		buildings = append(buildings, Building{
			ID:       b.ID,
			Kind:     BuildingKind(b.Kind),
			X:        b.X,
			Y:        b.Y,
			LightsOn: b.LightsOn,
			HasPanel: b.HasPanel,
		})
	}

	return &Energy{
		Engine: NewEngine("energy", buildings,
			func(b Building) int { return b.ID },
			energyRule,
			func(b Building) bool { return !b.LightsOn && b.HasPanel },
			cfg.Hints,
		),
	}
}

// ToggleLight 点击建筑切换灯光
func (e *Energy) ToggleLight(id int) DropResult {
	return e.Apply(id, inputToggleLight)
}

// InstallPanel 把太阳能板投放到建筑上
func (e *Energy) InstallPanel(id int) DropResult {
	return e.Apply(id, inputInstallPanel)
}

// Buildings 返回建筑快照
func (e *Energy) Buildings() []Building {
	return e.Entities()
}

// LightsOff 返回已关灯的建筑数
func (e *Energy) LightsOff() int {
	n := 0
	for _, b := range e.Entities() {
		if !b.LightsOn {
			n++
		}
	}
	return n
}

// Panels 返回已安装太阳能板的建筑数
func (e *Energy) Panels() int {
	n := 0
	for _, b := range e.Entities() {
		if b.HasPanel {
			n++
		}
	}
	return n
}

func energyRule(b Building, in energyInput) (Building, Outcome) {
	switch in {
	case inputToggleLight:
		b.LightsOn = !b.LightsOn
		if !b.LightsOn {
			return b, Outcome{Verdict: VerdictAccepted, HintKey: config.HintLightsOff}
		}
		// 重新开灯不更新引导文本
		return b, Outcome{Verdict: VerdictAccepted}
	case inputInstallPanel:
		if b.HasPanel {
			return b, Outcome{Verdict: VerdictIgnored}
		}
		b.HasPanel = true
		return b, Outcome{Verdict: VerdictAccepted, HintKey: config.HintPanelInstalled}
	}
	return b, Outcome{Verdict: VerdictIgnored}
}
