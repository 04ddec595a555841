package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/greentrain/pkg/embedded"
)

// StationsConfigPath 站点布局配置文件路径（嵌入资源）
const StationsConfigPath = "data/stations.yaml"

// 引导文本键
// 各站点在 hints 中使用的键，缺失的键会在校验阶段报错
const (
	HintIntro    = "intro"
	HintComplete = "complete"

	// 站点1：植树
	HintSeeded        = "seeded"
	HintGrown         = "grown"
	HintNeedSeed      = "needSeed"
	HintAlreadySeeded = "alreadySeeded"
	HintAlreadyGrown  = "alreadyGrown"

	// 站点2：清理河流
	HintRecycled        = "recycled"
	HintComposted       = "composted"
	HintWrongRecycleBin = "wrongRecycleBin"
	HintWrongOrganicBin = "wrongOrganicBin"

	// 站点3：节约能源
	HintLightsOff      = "lightsOff"
	HintPanelInstalled = "panelInstalled"

	// 站点4：救助动物
	HintRescued = "rescued"
)

// stationsFile 是 stations.yaml 的顶层结构
type stationsFile struct {
	Stations StationsConfig `yaml:"stations"`
}

// StationsConfig 四个站点的布局配置
type StationsConfig struct {
	Reforestation ReforestationConfig `yaml:"reforestation"`
	River         RiverConfig         `yaml:"river"`
	Energy        EnergyConfig        `yaml:"energy"`
	Wildlife      WildlifeConfig      `yaml:"wildlife"`
}

// StationHeader 所有站点共有的字段
type StationHeader struct {
	ID     int               `yaml:"id"`     // 站点编号 1-4
	Title  string            `yaml:"title"`  // 标题横幅文字
	Color  string            `yaml:"color"`  // 主题色，如 "#16a34a"
	Hints  map[string]string `yaml:"hints"`  // 引导文本（键见 Hint* 常量）
	Reward RewardConfig      `yaml:"reward"` // 奖励画面文字

	// ContinueButton 站点完成后出现的按钮文字
	ContinueButton string `yaml:"continueButton"`
}

// Hint 返回指定键的引导文本，缺失时返回空字符串
func (h StationHeader) Hint(key string) string {
	return h.Hints[key]
}

// RewardConfig 奖励画面配置
type RewardConfig struct {
	Title    string   `yaml:"title"`
	Headline string   `yaml:"headline"`
	Body     string   `yaml:"body"`
	Glyphs   []string `yaml:"glyphs"` // 庆祝动画中跳动的图标
	Button   string   `yaml:"button"`
}

// Position 百分比坐标
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ReforestationConfig 站点1：种植点与工具
type ReforestationConfig struct {
	StationHeader `yaml:",inline"`
	Tools         []ToolConfig      `yaml:"tools"`
	Spots         []SpotConfig      `yaml:"spots"`
	SpotLabels    map[string]string `yaml:"spotLabels"` // 种植点下方的提示，键为状态名
}

// SpotLabel 返回种植点在指定状态下的提示文字
func (c ReforestationConfig) SpotLabel(state string) string {
	return c.SpotLabels[state]
}

// ToolConfig 工具拖拽源（种子 / 水）
type ToolConfig struct {
	Kind     string `yaml:"kind"` // "seed" 或 "water"
	Label    string `yaml:"label"`
	Position `yaml:",inline"`
}

// SpotConfig 种植点
type SpotConfig struct {
	ID       int    `yaml:"id"`
	State    string `yaml:"state"` // "empty"（默认）、"seeded"、"grown"
	Position `yaml:",inline"`
}

// RiverConfig 站点2：垃圾与垃圾桶
type RiverConfig struct {
	StationHeader `yaml:",inline"`
	Items         []TrashConfig `yaml:"items"`
	Bins          []BinConfig   `yaml:"bins"`
}

// TrashConfig 漂浮垃圾
type TrashConfig struct {
	ID       int    `yaml:"id"`
	Category string `yaml:"category"` // "recyclable" 或 "organic"
	Glyph    string `yaml:"glyph"`
	Label    string `yaml:"label"`
	Position `yaml:",inline"`
}

// BinConfig 垃圾桶
type BinConfig struct {
	Category string `yaml:"category"`
	Label    string `yaml:"label"`
	Position `yaml:",inline"`
}

// EnergyConfig 站点3：建筑与太阳能板
type EnergyConfig struct {
	StationHeader `yaml:",inline"`
	Panel         PanelConfig      `yaml:"panel"`
	Buildings     []BuildingConfig `yaml:"buildings"`
}

// PanelConfig 太阳能板拖拽源
type PanelConfig struct {
	Label    string `yaml:"label"`
	Position `yaml:",inline"`
}

// BuildingConfig 建筑
type BuildingConfig struct {
	ID       int    `yaml:"id"`
	Kind     string `yaml:"kind"` // "house" 或 "building"
	LightsOn bool   `yaml:"lightsOn"`
	HasPanel bool   `yaml:"hasPanel"`
	Position `yaml:",inline"`
}

// WildlifeConfig 站点4：动物与栖息地
type WildlifeConfig struct {
	StationHeader `yaml:",inline"`
	Animals       []AnimalConfig  `yaml:"animals"`
	Habitats      []HabitatConfig `yaml:"habitats"`
}

// AnimalConfig 被困动物
type AnimalConfig struct {
	ID       int    `yaml:"id"`
	Species  string `yaml:"species"` // "sloth"、"monkey"、"bird"
	Glyph    string `yaml:"glyph"`
	Name     string `yaml:"name"`
	Habitat  string `yaml:"habitat"` // "tree" 或 "sky"
	Position `yaml:",inline"`
}

// HabitatConfig 栖息地投放区域
type HabitatConfig struct {
	Habitat  string `yaml:"habitat"`
	Label    string `yaml:"label"`
	Position `yaml:",inline"`
}

// Header 按站点编号返回公共字段（标题、颜色、引导文本、奖励）
func (c *StationsConfig) Header(id int) (StationHeader, bool) {
	for _, h := range []StationHeader{
		c.Reforestation.StationHeader,
		c.River.StationHeader,
		c.Energy.StationHeader,
		c.Wildlife.StationHeader,
	} {
		if h.ID == id {
			return h, true
		}
	}
	return StationHeader{}, false
}

// LoadStationsConfig 从嵌入资源加载并校验站点布局配置
// 先进行 JSON Schema 校验，再解析为结构体并做语义校验
func LoadStationsConfig() (*StationsConfig, error) {
	data, err := embedded.ReadFile(StationsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stations config %s: %w", StationsConfigPath, err)
	}

	if err := ValidateEmbeddedDocument(StationsSchemaPath, data); err != nil {
		return nil, fmt.Errorf("stations config %s does not match schema: %w", StationsConfigPath, err)
	}

	cfg, err := ParseStationsConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid stations config in %s: %w", StationsConfigPath, err)
	}
	return cfg, nil
}

// ParseStationsConfig 解析 YAML 数据，应用默认值并做语义校验
func ParseStationsConfig(data []byte) (*StationsConfig, error) {
	var file stationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse stations YAML: %w", err)
	}

	cfg := &file.Stations
	applyStationDefaults(cfg)

	if err := validateStationsConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyStationDefaults 为缺失的可选字段设置默认值
func applyStationDefaults(cfg *StationsConfig) {
	if cfg.Reforestation.SpotLabels == nil {
		cfg.Reforestation.SpotLabels = map[string]string{}
	}
	for state, label := range map[string]string{"empty": "¡PLANTAR!", "seeded": "¡REGAR!", "grown": "¡LISTO!"} {
		if cfg.Reforestation.SpotLabels[state] == "" {
			cfg.Reforestation.SpotLabels[state] = label
		}
	}
	for i := range cfg.Reforestation.Spots {
		if cfg.Reforestation.Spots[i].State == "" {
			cfg.Reforestation.Spots[i].State = "empty"
		}
	}

	headers := []*StationHeader{
		&cfg.Reforestation.StationHeader,
		&cfg.River.StationHeader,
		&cfg.Energy.StationHeader,
		&cfg.Wildlife.StationHeader,
	}
	for _, h := range headers {
		if h.Color == "" {
			h.Color = "#16a34a"
		}
		if h.ContinueButton == "" {
			h.ContinueButton = "¡Continuar!"
		}
		if h.Hints == nil {
			h.Hints = map[string]string{}
		}
	}
}

// requiredHints 每个站点必须提供的引导文本键
var requiredHints = map[int][]string{
	1: {HintIntro, HintSeeded, HintGrown, HintNeedSeed, HintAlreadySeeded, HintAlreadyGrown, HintComplete},
	2: {HintIntro, HintRecycled, HintComposted, HintWrongRecycleBin, HintWrongOrganicBin, HintComplete},
	3: {HintIntro, HintLightsOff, HintPanelInstalled, HintComplete},
	4: {HintIntro, HintRescued, HintComplete},
}

// validateStationsConfig 验证站点配置的完整性和合法性
func validateStationsConfig(cfg *StationsConfig) error {
	headers := []struct {
		name   string
		wantID int
		header StationHeader
	}{
		{"reforestation", 1, cfg.Reforestation.StationHeader},
		{"river", 2, cfg.River.StationHeader},
		{"energy", 3, cfg.Energy.StationHeader},
		{"wildlife", 4, cfg.Wildlife.StationHeader},
	}
	for _, h := range headers {
		if h.header.ID != h.wantID {
			return fmt.Errorf("station %s: id must be %d, got %d", h.name, h.wantID, h.header.ID)
		}
		if h.header.Title == "" {
			return fmt.Errorf("station %s: title is required", h.name)
		}
		for _, key := range requiredHints[h.wantID] {
			if h.header.Hints[key] == "" {
				return fmt.Errorf("station %s: hint %q is required", h.name, key)
			}
		}
		if h.header.Reward.Button == "" {
			return fmt.Errorf("station %s: reward button label is required", h.name)
		}
	}

	if err := validateReforestation(&cfg.Reforestation); err != nil {
		return err
	}
	if err := validateRiver(&cfg.River); err != nil {
		return err
	}
	if err := validateEnergy(&cfg.Energy); err != nil {
		return err
	}
	return validateWildlife(&cfg.Wildlife)
}

func validateReforestation(cfg *ReforestationConfig) error {
	kinds := map[string]bool{}
	for _, tool := range cfg.Tools {
		if tool.Kind != "seed" && tool.Kind != "water" {
			return fmt.Errorf("reforestation: unknown tool kind %q", tool.Kind)
		}
		kinds[tool.Kind] = true
	}
	if !kinds["seed"] || !kinds["water"] {
		return fmt.Errorf("reforestation: both seed and water tools are required")
	}

	if len(cfg.Spots) == 0 {
		return fmt.Errorf("reforestation: at least one spot is required")
	}
	ids := map[int]bool{}
	for _, spot := range cfg.Spots {
		if ids[spot.ID] {
			return fmt.Errorf("reforestation: duplicate spot id %d", spot.ID)
		}
		ids[spot.ID] = true
		switch spot.State {
		case "empty", "seeded", "grown":
		default:
			return fmt.Errorf("reforestation: spot %d has unknown state %q", spot.ID, spot.State)
		}
		if err := validatePosition(spot.Position); err != nil {
			return fmt.Errorf("reforestation: spot %d: %w", spot.ID, err)
		}
	}
	return nil
}

func validateRiver(cfg *RiverConfig) error {
	if len(cfg.Items) == 0 {
		return fmt.Errorf("river: at least one trash item is required")
	}
	ids := map[int]bool{}
	for _, item := range cfg.Items {
		if ids[item.ID] {
			return fmt.Errorf("river: duplicate item id %d", item.ID)
		}
		ids[item.ID] = true
		if !isTrashCategory(item.Category) {
			return fmt.Errorf("river: item %d has unknown category %q", item.ID, item.Category)
		}
		if err := validatePosition(item.Position); err != nil {
			return fmt.Errorf("river: item %d: %w", item.ID, err)
		}
	}

	bins := map[string]bool{}
	for _, bin := range cfg.Bins {
		if !isTrashCategory(bin.Category) {
			return fmt.Errorf("river: bin has unknown category %q", bin.Category)
		}
		if bins[bin.Category] {
			return fmt.Errorf("river: duplicate bin for category %q", bin.Category)
		}
		bins[bin.Category] = true
	}
	// 每种垃圾都必须有对应的垃圾桶，否则站点无法完成
	for _, item := range cfg.Items {
		if !bins[item.Category] {
			return fmt.Errorf("river: no bin accepts category %q", item.Category)
		}
	}
	return nil
}

func validateEnergy(cfg *EnergyConfig) error {
	if len(cfg.Buildings) == 0 {
		return fmt.Errorf("energy: at least one building is required")
	}
	ids := map[int]bool{}
	for _, b := range cfg.Buildings {
		if ids[b.ID] {
			return fmt.Errorf("energy: duplicate building id %d", b.ID)
		}
		ids[b.ID] = true
		if b.Kind != "house" && b.Kind != "building" {
			return fmt.Errorf("energy: building %d has unknown kind %q", b.ID, b.Kind)
		}
		if err := validatePosition(b.Position); err != nil {
			return fmt.Errorf("energy: building %d: %w", b.ID, err)
		}
	}
	return nil
}

func validateWildlife(cfg *WildlifeConfig) error {
	if len(cfg.Animals) == 0 {
		return fmt.Errorf("wildlife: at least one animal is required")
	}
	habitats := map[string]bool{}
	for _, h := range cfg.Habitats {
		if !isHabitat(h.Habitat) {
			return fmt.Errorf("wildlife: unknown habitat %q", h.Habitat)
		}
		habitats[h.Habitat] = true
	}

	ids := map[int]bool{}
	for _, a := range cfg.Animals {
		if ids[a.ID] {
			return fmt.Errorf("wildlife: duplicate animal id %d", a.ID)
		}
		ids[a.ID] = true
		switch a.Species {
		case "sloth", "monkey", "bird":
		default:
			return fmt.Errorf("wildlife: animal %d has unknown species %q", a.ID, a.Species)
		}
		if !isHabitat(a.Habitat) {
			return fmt.Errorf("wildlife: animal %d has unknown habitat %q", a.ID, a.Habitat)
		}
		if !habitats[a.Habitat] {
			return fmt.Errorf("wildlife: no habitat zone for %q", a.Habitat)
		}
	}
	return nil
}

func isTrashCategory(s string) bool {
	return s == "recyclable" || s == "organic"
}

func isHabitat(s string) bool {
	return s == "tree" || s == "sky"
}

func validatePosition(p Position) error {
	if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
		return fmt.Errorf("position (%.1f, %.1f) out of range [0,100]", p.X, p.Y)
	}
	return nil
}
