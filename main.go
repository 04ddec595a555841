package main

import (
	"flag"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/greentrain/pkg/app"
	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	station    = flag.Int("station", 0, "调试：直接进入指定站点（1-4），之前的站点视为已完成")
	avatar     = flag.String("avatar", "", "调试：配合 --station 使用的角色ID")
	mute       = flag.Bool("mute", false, "关闭音效")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("启动配置无效: %v", err)
	}

	// 只覆盖命令行中显式给出的参数
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "verbose":
			cfg.Verbose = *verbose
		case "station":
			cfg.StartStation = *station
		case "avatar":
			cfg.Avatar = *avatar
		case "mute":
			cfg.Mute = *mute
		case "fullscreen":
			cfg.Fullscreen = *fullscreen
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("启动参数无效: %v", err)
	}

	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := cfg.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("El Tren del Futuro Verde")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
