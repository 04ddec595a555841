package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定画面的场景，避免循环依赖
type SceneFactory func(screen ScreenID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// SceneManager 实现 ScreenObserver：Journey 切换画面时，新场景在下一次 Update 开始前创建，
// 避免在旧场景的 Update 中途替换它。
type SceneManager struct {
	currentScene  Scene
	currentScreen ScreenID
	pending       *ScreenID
	sceneFactory  SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or ScreenChanged to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if d, ok := sm.currentScene.(Disposable); ok && sm.currentScene != scene {
		d.Dispose()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentScreen 返回当前场景对应的画面
func (sm *SceneManager) CurrentScreen() ScreenID {
	return sm.currentScreen
}

// ScreenChanged 记录待切换的画面，在下一次 Update 时创建场景
func (sm *SceneManager) ScreenChanged(from, to ScreenID) {
	screen := to
	sm.pending = &screen
}

// Load 立即创建并切换到指定画面的场景
func (sm *SceneManager) Load(screen ScreenID) {
	log.Printf("[SceneManager] 加载画面: %s", screen)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(screen)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建画面场景: %s", screen)
		return
	}
	sm.SwitchTo(newScene)
	sm.currentScreen = screen
}

// Update updates the currently active scene.
// Pending screen changes are applied before and after the scene update,
// so the frame that triggered a change already draws the new scene.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.applyPending()
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	sm.applyPending()
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func (sm *SceneManager) applyPending() {
	if sm.pending == nil {
		return
	}
	screen := *sm.pending
	sm.pending = nil
	sm.Load(screen)
}
