// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/scenes"
	"github.com/gonewx/greentrain/pkg/utils"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	journey      *game.Journey
	sceneManager *game.SceneManager
	drag         *utils.DragManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	windowWidth              int
	windowHeight             int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 日志输出由调用方根据 cfg.Verbose 设置。
func NewApp(cfg *config.AppConfig) (*App, error) {
	stations, err := config.LoadStationsConfig()
	if err != nil {
		return nil, fmt.Errorf("站点配置加载失败: %w", err)
	}
	content, err := config.LoadJourneyConfig()
	if err != nil {
		return nil, fmt.Errorf("旅程配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个角色, %d 张站点卡片", len(content.Avatars), len(content.Map.Stations))

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, cfg.Mute)
	log.Printf("[App] AudioManager initialized")

	resourceManager := game.NewResourceManager()

	journey := game.NewJourney()
	ctx := &scenes.Context{
		Journey:   journey,
		Stations:  stations,
		Content:   content,
		Resources: resourceManager,
		Audio:     audioManager,
		Drag:      utils.GetDragManager(),
		Session:   dnd.NewSession(),
	}

	// 创建场景管理器，Journey 的画面切换驱动场景切换
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(ctx))
	journey.SetObserver(sceneManager)

	if cfg.StartStation > 0 {
		avatar, err := startAvatar(content, cfg.Avatar)
		if err != nil {
			return nil, err
		}
		log.Printf("[App] 直接进入站点 %d (角色 %s)", cfg.StartStation, avatar.ID)
		journey.JumpToStation(cfg.StartStation, avatar)
	}
	sceneManager.Load(journey.Screen())

	w, h := cfg.WindowSize()
	return &App{
		journey:      journey,
		sceneManager: sceneManager,
		drag:         ctx.Drag,
		windowWidth:  w,
		windowHeight: h,
	}, nil
}

// startAvatar 调试启动时使用的角色，id 为空时取第一个
func startAvatar(content *config.JourneyConfig, id string) (game.Avatar, error) {
	if id == "" {
		return game.AvatarsFromConfig(content)[0], nil
	}
	a, ok := content.FindAvatar(id)
	if !ok {
		return game.Avatar{}, fmt.Errorf("未知角色 %q", id)
	}
	return game.AvatarFromConfig(a), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 指针状态先于场景更新，同一帧内所有场景看到相同的拖拽事件
	a.drag.Update()
	a.sceneManager.Update(config.DeltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Journey 返回旅程编排器
func (a *App) Journey() *game.Journey {
	return a.journey
}
