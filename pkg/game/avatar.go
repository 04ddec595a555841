package game

import "github.com/gonewx/greentrain/pkg/config"

// Avatar 玩家选择的角色，只用于地图画面的展示
type Avatar struct {
	ID          string
	Name        string
	Color       string
	Glyph       string
	Description string
}

// AvatarsFromConfig 从旅程配置构造角色列表
func AvatarsFromConfig(cfg *config.JourneyConfig) []Avatar {
	out := make([]Avatar, 0, len(cfg.Avatars))
	for _, a := range cfg.Avatars {
		out = append(out, AvatarFromConfig(a))
	}
	return out
}

// AvatarFromConfig 单个角色配置转为 Avatar
func AvatarFromConfig(a config.AvatarConfig) Avatar {
	return Avatar{
		ID:          a.ID,
		Name:        a.Name,
		Color:       a.Color,
		Glyph:       a.Glyph,
		Description: a.Description,
	}
}
