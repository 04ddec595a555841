package station

import (
	"github.com/gonewx/greentrain/pkg/config"
)

// SpotState 种植点状态
type SpotState int

const (
	SpotEmpty SpotState = iota
	SpotSeeded
	SpotGrown
)

// String 返回状态名（与配置文件一致）
func (s SpotState) String() string {
	switch s {
	case SpotSeeded:
		return "seeded"
	case SpotGrown:
		return "grown"
	default:
		return "empty"
	}
}

// ParseSpotState 解析配置中的状态名，未知值视为 empty
func ParseSpotState(s string) SpotState {
	switch s {
	case "seeded":
		return SpotSeeded
	case "grown":
		return SpotGrown
	default:
		return SpotEmpty
	}
}

// Tool 植树工具
type Tool string

const (
	ToolSeed  Tool = "seed"
	ToolWater Tool = "water"
)

// Spot 种植点
type Spot struct {
	ID    int
	X, Y  float64 // 百分比坐标（中心）
	State SpotState
}

// Reforestation 站点1：种子和水
// 只允许 empty→seeded（种子）和 seeded→grown（水）
type Reforestation struct {
	*Engine[Spot, Tool]
}

// NewReforestation 从布局配置创建站点1
func NewReforestation(cfg config.ReforestationConfig) *Reforestation {
	spots := make([]Spot, 0, len(cfg.Spots))
	for _, s := range cfg.Spots {
		spots = append(spots, Spot{ID: s.ID, X: s.X, Y: s.Y, State: ParseSpotState(s.State)})
	}

	return &Reforestation{
		Engine: NewEngine("reforestation", spots,
			func(s Spot) int { return s.ID },
			reforestationRule,
			func(s Spot) bool { return s.State == SpotGrown },
			cfg.Hints,
		),
	}
}

// ApplyTool 把工具投放到种植点
func (r *Reforestation) ApplyTool(spotID int, tool Tool) DropResult {
	return r.Apply(spotID, tool)
}

// Spots 返回种植点快照
func (r *Reforestation) Spots() []Spot {
	return r.Entities()
}

func reforestationRule(s Spot, tool Tool) (Spot, Outcome) {
	switch s.State {
	case SpotEmpty:
		if tool == ToolSeed {
			s.State = SpotSeeded
			return s, Outcome{Verdict: VerdictAccepted, HintKey: config.HintSeeded}
		}
		return s, Outcome{Verdict: VerdictRejected, HintKey: config.HintNeedSeed, IsError: true}
	case SpotSeeded:
		if tool == ToolWater {
			s.State = SpotGrown
			return s, Outcome{Verdict: VerdictAccepted, HintKey: config.HintGrown}
		}
		return s, Outcome{Verdict: VerdictRejected, HintKey: config.HintAlreadySeeded}
	default:
		return s, Outcome{Verdict: VerdictRejected, HintKey: config.HintAlreadyGrown}
	}
}
