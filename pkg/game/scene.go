package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the journey (start, map, a station, a reward...).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换时调用 Dispose
//
// 站点场景在这里放弃进行中的拖拽并丢弃站点状态，
// 保证再次进入站点时从初始布局开始。
type Disposable interface {
	Dispose()
}
