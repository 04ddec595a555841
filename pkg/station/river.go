package station

import (
	"github.com/gonewx/greentrain/pkg/config"
)

// Category 垃圾类别
type Category string

const (
	Recyclable Category = "recyclable"
	Organic    Category = "organic"
)

// TrashItem 漂浮在河面上的垃圾
type TrashItem struct {
	ID       int
	Category Category
	Glyph    string
	Label    string
	X, Y     float64
	Cleaned  bool
}

// River 站点2：垃圾分类
// 垃圾类别与垃圾桶类别一致时才会被清理
type River struct {
	*Engine[TrashItem, Category]
}

// NewRiver 从布局配置创建站点2
func NewRiver(cfg config.RiverConfig) *River {
	items := make([]TrashItem, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		items = append(items, TrashItem{
			ID:       it.ID,
			Category: Category(it.Category),
			Glyph:    it.Glyph,
			Label:    it.Label,
			X:        it.X,
			Y:        it.Y,
		})
	}

	return &River{
		Engine: NewEngine("river", items,
			func(t TrashItem) int { return t.ID },
			riverRule,
			func(t TrashItem) bool { return t.Cleaned },
			cfg.Hints,
		),
	}
}

// DropInBin 把垃圾投进指定类别的垃圾桶
func (r *River) DropInBin(itemID int, bin Category) DropResult {
	return r.Apply(itemID, bin)
}

// Items 返回垃圾快照
func (r *River) Items() []TrashItem {
	return r.Entities()
}

// Remaining 返回尚未清理的垃圾
func (r *River) Remaining() []TrashItem {
	var out []TrashItem
	for _, it := range r.Entities() {
		if !it.Cleaned {
			out = append(out, it)
		}
	}
	return out
}

func riverRule(t TrashItem, bin Category) (TrashItem, Outcome) {
	if t.Cleaned {
		return t, Outcome{Verdict: VerdictIgnored}
	}

	if t.Category == bin {
		t.Cleaned = true
		key := config.HintRecycled
		if t.Category == Organic {
			key = config.HintComposted
		}
		return t, Outcome{Verdict: VerdictAccepted, HintKey: key}
	}

	// 提示文本取决于投进了哪个桶
	key := config.HintWrongOrganicBin
	if bin == Recyclable {
		key = config.HintWrongRecycleBin
	}
	return t, Outcome{Verdict: VerdictRejected, HintKey: key, IsError: true}
}
