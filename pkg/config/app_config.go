package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig 应用启动配置
// 先从环境变量读取，main.go 中的命令行参数会覆盖对应字段
type AppConfig struct {
	// Verbose 启用详细日志输出
	Verbose bool `env:"GREENTRAIN_VERBOSE" envDefault:"false"`

	// StartStation 调试用：直接进入指定站点（1-4），之前的站点视为已完成
	// 0 表示从开始画面正常启动
	StartStation int `env:"GREENTRAIN_START_STATION" envDefault:"0"`

	// Avatar 调试用：配合 StartStation 预先选定的角色ID，为空时使用第一个角色
	Avatar string `env:"GREENTRAIN_AVATAR"`

	// Mute 关闭所有音效
	Mute bool `env:"GREENTRAIN_MUTE" envDefault:"false"`

	// Fullscreen 以全屏模式启动
	Fullscreen bool `env:"GREENTRAIN_FULLSCREEN" envDefault:"false"`

	// WindowScale 窗口尺寸相对逻辑分辨率的缩放
	WindowScale float64 `env:"GREENTRAIN_WINDOW_SCALE" envDefault:"1"`
}

// LoadAppConfig 从进程环境变量读取应用配置
func LoadAppConfig() (*AppConfig, error) {
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAppConfigFrom 从给定的环境变量表读取应用配置（用于测试）
func LoadAppConfigFrom(environ map[string]string) (*AppConfig, error) {
	cfg, err := env.ParseAsWithOptions[AppConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查配置取值范围
func (c *AppConfig) Validate() error {
	if c.StartStation < 0 || c.StartStation > 4 {
		return fmt.Errorf("start station must be within [0,4], got %d", c.StartStation)
	}
	if c.WindowScale <= 0 || c.WindowScale > 4 {
		return fmt.Errorf("window scale must be within (0,4], got %.2f", c.WindowScale)
	}
	return nil
}

// WindowSize 返回按缩放计算的窗口尺寸
func (c *AppConfig) WindowSize() (int, int) {
	return int(float64(ScreenWidth) * c.WindowScale), int(float64(ScreenHeight) * c.WindowScale)
}
