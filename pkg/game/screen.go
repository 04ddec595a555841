package game

import "fmt"

// ScreenID 当前显示的画面
// 同一时刻只有一个画面处于活动状态，只有用户操作才会改变它
type ScreenID int

const (
	ScreenStart ScreenID = iota
	ScreenAvatarSelection
	ScreenMap
	ScreenStation1Game
	ScreenStation2Game
	ScreenStation3Game
	ScreenStation4Game
	ScreenStation1Reward
	ScreenStation2Reward
	ScreenStation3Reward
	ScreenStation4Reward
	ScreenFinal
)

// StationCount 站点数量
const StationCount = 4

var screenNames = map[ScreenID]string{
	ScreenStart:           "start",
	ScreenAvatarSelection: "avatar-selection",
	ScreenMap:             "map",
	ScreenStation1Game:    "station1-game",
	ScreenStation2Game:    "station2-game",
	ScreenStation3Game:    "station3-game",
	ScreenStation4Game:    "station4-game",
	ScreenStation1Reward:  "station1-reward",
	ScreenStation2Reward:  "station2-reward",
	ScreenStation3Reward:  "station3-reward",
	ScreenStation4Reward:  "station4-reward",
	ScreenFinal:           "final",
}

// String 返回画面名，如 "station2-reward"
func (s ScreenID) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// StationGameScreen 返回站点 id（1-4）的游戏画面
func StationGameScreen(id int) (ScreenID, bool) {
	if !validStation(id) {
		return 0, false
	}
	return ScreenStation1Game + ScreenID(id-1), true
}

// StationRewardScreen 返回站点 id（1-4）的奖励画面
func StationRewardScreen(id int) (ScreenID, bool) {
	if !validStation(id) {
		return 0, false
	}
	return ScreenStation1Reward + ScreenID(id-1), true
}

// GameStation 如果是站点游戏画面，返回站点编号
func (s ScreenID) GameStation() (int, bool) {
	if s >= ScreenStation1Game && s <= ScreenStation4Game {
		return int(s-ScreenStation1Game) + 1, true
	}
	return 0, false
}

// RewardStation 如果是站点奖励画面，返回站点编号
func (s ScreenID) RewardStation() (int, bool) {
	if s >= ScreenStation1Reward && s <= ScreenStation4Reward {
		return int(s-ScreenStation1Reward) + 1, true
	}
	return 0, false
}

func validStation(id int) bool {
	return id >= 1 && id <= StationCount
}
