package station

import (
	"github.com/gonewx/greentrain/pkg/config"
)

// Species 动物种类
type Species string

const (
	Sloth  Species = "sloth"
	Monkey Species = "monkey"
	Bird   Species = "bird"
)

// Habitat 栖息地
type Habitat string

const (
	Tree Habitat = "tree"
	Sky  Habitat = "sky"
)

// Animal 被困的动物
type Animal struct {
	ID      int
	Species Species
	Glyph   string
	Name    string
	Habitat Habitat
	X, Y    float64
	Rescued bool
}

// Wildlife 站点4：把动物送回栖息地
// 栖息地不匹配时静默忽略，不更新引导文本
type Wildlife struct {
	*Engine[Animal, Habitat]
}

// NewWildlife 从布局配置创建站点4
func NewWildlife(cfg config.WildlifeConfig) *Wildlife {
	animals := make([]Animal, 0, len(cfg.Animals))
	for _, a := range cfg.Animals {
		animals = append(animals, Animal{
			ID:      a.ID,
			Species: Species(a.Species),
			Glyph:   a.Glyph,
			Name:    a.Name,
			Habitat: Habitat(a.Habitat),
			X:       a.X,
			Y:       a.Y,
		})
	}

	return &Wildlife{
		Engine: NewEngine("wildlife", animals,
			func(a Animal) int { return a.ID },
			wildlifeRule,
			func(a Animal) bool { return a.Rescued },
			cfg.Hints,
		),
	}
}

// Release 把动物放到栖息地
func (w *Wildlife) Release(animalID int, zone Habitat) DropResult {
	return w.Apply(animalID, zone)
}

// Animals 返回动物快照
func (w *Wildlife) Animals() []Animal {
	return w.Entities()
}

// RescuedIn 返回已回到指定栖息地的动物
func (w *Wildlife) RescuedIn(zone Habitat) []Animal {
	var out []Animal
	for _, a := range w.Entities() {
		if a.Rescued && a.Habitat == zone {
			out = append(out, a)
		}
	}
	return out
}

func wildlifeRule(a Animal, zone Habitat) (Animal, Outcome) {
	if a.Rescued {
		return a, Outcome{Verdict: VerdictIgnored}
	}
	if a.Habitat != zone {
		return a, Outcome{Verdict: VerdictRejected}
	}
	a.Rescued = true
	return a, Outcome{Verdict: VerdictAccepted, HintKey: config.HintRescued}
}
