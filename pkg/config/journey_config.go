package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/greentrain/pkg/embedded"
)

// JourneyConfigPath 旅程内容配置文件路径（嵌入资源）
const JourneyConfigPath = "data/journey.yaml"

// JourneyConfig 标题画面、角色列表、地图与终点画面的文字内容
type JourneyConfig struct {
	Title           TitleConfig           `yaml:"title"`
	AvatarSelection AvatarSelectionConfig `yaml:"avatarSelection"`
	Avatars         []AvatarConfig        `yaml:"avatars"`
	Map             MapConfig             `yaml:"map"`
	Final           FinalConfig           `yaml:"final"`
}

// TitleConfig 开始画面
type TitleConfig struct {
	Line1       string `yaml:"line1"`
	Line2       string `yaml:"line2"`
	Tagline     string `yaml:"tagline"`
	PlayButton  string `yaml:"playButton"`
	CreditsRole string `yaml:"creditsRole"`
	CreditsName string `yaml:"creditsName"`
}

// AvatarSelectionConfig 角色选择画面
type AvatarSelectionConfig struct {
	Heading string `yaml:"heading"`
	Prompt  string `yaml:"prompt"`
}

// AvatarConfig 可选角色
type AvatarConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Glyph       string `yaml:"glyph"`
	Description string `yaml:"description"`
}

// MapConfig 地图画面
type MapConfig struct {
	Heading         string              `yaml:"heading"`
	DriverLabel     string              `yaml:"driverLabel"`
	ProgressFormat  string              `yaml:"progressFormat"` // 需要两个 %d：已完成数、总数
	StationsPerPage int                 `yaml:"stationsPerPage"`
	Stations        []StationCardConfig `yaml:"stations"`
}

// StationCardConfig 地图上的站点卡片
type StationCardConfig struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Theme string `yaml:"theme"`
	Color string `yaml:"color"`
}

// FinalConfig 终点庆祝画面
type FinalConfig struct {
	Headline     string        `yaml:"headline"`
	Subtitle     string        `yaml:"subtitle"`
	Summary      []string      `yaml:"summary"`
	Badges       []BadgeConfig `yaml:"badges"`
	Closing      string        `yaml:"closing"`
	ReplayButton string        `yaml:"replayButton"`
}

// BadgeConfig 终点画面的成就徽章
type BadgeConfig struct {
	Glyph string `yaml:"glyph"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// FindAvatar 按ID查找角色
func (c *JourneyConfig) FindAvatar(id string) (AvatarConfig, bool) {
	for _, a := range c.Avatars {
		if a.ID == id {
			return a, true
		}
	}
	return AvatarConfig{}, false
}

// StationCard 按站点编号查找地图卡片
func (c *JourneyConfig) StationCard(id int) (StationCardConfig, bool) {
	for _, s := range c.Map.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return StationCardConfig{}, false
}

// LoadJourneyConfig 从嵌入资源加载并校验旅程配置
func LoadJourneyConfig() (*JourneyConfig, error) {
	data, err := embedded.ReadFile(JourneyConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read journey config %s: %w", JourneyConfigPath, err)
	}

	if err := ValidateEmbeddedDocument(JourneySchemaPath, data); err != nil {
		return nil, fmt.Errorf("journey config %s does not match schema: %w", JourneyConfigPath, err)
	}

	cfg, err := ParseJourneyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid journey config in %s: %w", JourneyConfigPath, err)
	}
	return cfg, nil
}

// ParseJourneyConfig 解析 YAML 数据，应用默认值并做语义校验
func ParseJourneyConfig(data []byte) (*JourneyConfig, error) {
	var cfg JourneyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse journey YAML: %w", err)
	}

	applyJourneyDefaults(&cfg)

	if err := validateJourneyConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyJourneyDefaults 为缺失的可选字段设置默认值
func applyJourneyDefaults(cfg *JourneyConfig) {
	if cfg.Map.StationsPerPage <= 0 {
		cfg.Map.StationsPerPage = 2
	}
	if cfg.Map.ProgressFormat == "" {
		cfg.Map.ProgressFormat = "Progreso: %d de %d misiones"
	}
	if cfg.Map.DriverLabel == "" {
		cfg.Map.DriverLabel = "Conductor"
	}
}

// validateJourneyConfig 验证旅程配置
func validateJourneyConfig(cfg *JourneyConfig) error {
	if cfg.Title.PlayButton == "" {
		return fmt.Errorf("title.playButton is required")
	}

	if len(cfg.Avatars) == 0 {
		return fmt.Errorf("at least one avatar is required")
	}
	ids := map[string]bool{}
	for _, a := range cfg.Avatars {
		if a.ID == "" {
			return fmt.Errorf("avatar id is required")
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate avatar id %q", a.ID)
		}
		ids[a.ID] = true
		if a.Name == "" {
			return fmt.Errorf("avatar %q: name is required", a.ID)
		}
	}

	if len(cfg.Map.Stations) != 4 {
		return fmt.Errorf("map must list exactly 4 stations, got %d", len(cfg.Map.Stations))
	}
	for i, s := range cfg.Map.Stations {
		if s.ID != i+1 {
			return fmt.Errorf("map station #%d must have id %d, got %d", i+1, i+1, s.ID)
		}
	}

	if cfg.Final.ReplayButton == "" {
		return fmt.Errorf("final.replayButton is required")
	}
	return nil
}
