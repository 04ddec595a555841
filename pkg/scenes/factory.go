package scenes

import (
	"log"

	"github.com/gonewx/greentrain/pkg/game"
)

// NewSceneFactory 返回按画面创建场景的工厂函数，交给 SceneManager 使用
// 每次进入画面都创建新的场景，站点状态因此在重新进入时重置
func NewSceneFactory(ctx *Context) game.SceneFactory {
	return func(screen game.ScreenID) game.Scene {
		if id, ok := screen.GameStation(); ok {
			return newStationGameScene(ctx, id)
		}
		if id, ok := screen.RewardStation(); ok {
			return NewRewardScene(ctx, id)
		}

		switch screen {
		case game.ScreenStart:
			return NewStartScene(ctx)
		case game.ScreenAvatarSelection:
			return NewAvatarSelectionScene(ctx)
		case game.ScreenMap:
			return NewMapScene(ctx)
		case game.ScreenFinal:
			return NewFinalScene(ctx)
		}

		log.Printf("[SceneFactory] 未知画面: %s", screen)
		return nil
	}
}

// newStationGameScene 按站点编号创建站点游戏场景
func newStationGameScene(ctx *Context, id int) game.Scene {
	switch id {
	case ctx.Stations.Reforestation.ID:
		return NewReforestationScene(ctx)
	case ctx.Stations.River.ID:
		return NewRiverScene(ctx)
	case ctx.Stations.Energy.ID:
		return NewEnergyScene(ctx)
	case ctx.Stations.Wildlife.ID:
		return NewWildlifeScene(ctx)
	}
	log.Printf("[SceneFactory] 未知站点: %d", id)
	return nil
}
