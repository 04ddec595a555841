package game

import (
	"log"
)

// ScreenObserver 接收画面切换通知
type ScreenObserver interface {
	ScreenChanged(from, to ScreenID)
}

// Journey 旅程编排器
//
// 保存当前画面、进度和所选角色，所有状态变化都由用户操作同步触发。
// 非法操作（进入未解锁的站点、在错误画面上确认奖励等）返回 false 且不改变任何状态。
type Journey struct {
	screen   ScreenID
	progress Progress
	avatar   *Avatar
	observer ScreenObserver
}

// NewJourney 创建从开始画面出发的旅程
func NewJourney() *Journey {
	return &Journey{screen: ScreenStart}
}

// SetObserver 设置画面切换观察者（通常是 SceneManager）
func (j *Journey) SetObserver(o ScreenObserver) {
	j.observer = o
}

// Screen 当前画面
func (j *Journey) Screen() ScreenID {
	return j.screen
}

// Progress 当前进度（值拷贝）
func (j *Journey) Progress() Progress {
	return j.progress
}

// Avatar 已选择的角色，尚未选择时返回 false
func (j *Journey) Avatar() (Avatar, bool) {
	if j.avatar == nil {
		return Avatar{}, false
	}
	return *j.avatar, true
}

// Start 开始画面 → 角色选择
func (j *Journey) Start() bool {
	if j.screen != ScreenStart {
		return false
	}
	j.switchTo(ScreenAvatarSelection)
	return true
}

// SelectAvatar 选择角色并进入地图
// 只在角色选择画面有效，角色一经选定在重新开始前不可更改
func (j *Journey) SelectAvatar(a Avatar) bool {
	if j.screen != ScreenAvatarSelection || j.avatar != nil {
		return false
	}
	selected := a
	j.avatar = &selected
	log.Printf("[Journey] 选择角色: %s (%s)", a.Name, a.ID)
	j.switchTo(ScreenMap)
	return true
}

// SelectStation 进入站点
// 只有下一个未完成的站点（id == Current+1）可以进入
//
// 只检查解锁条件，不检查当前画面：唯一的调用方是地图画面的站点卡片，
// 因此正常流程中进入站点之前一定已经选好角色。
func (j *Journey) SelectStation(id int) bool {
	if !j.progress.IsUnlocked(id) {
		log.Printf("[Journey] 站点 %d 未解锁 (当前进度 %d)", id, j.progress.Current)
		return false
	}
	screen, _ := StationGameScreen(id)
	j.switchTo(screen)
	return true
}

// CompleteStationGame 站点游戏完成 → 奖励画面
// 只在对应站点的游戏画面有效，不修改进度
func (j *Journey) CompleteStationGame(id int) bool {
	if current, ok := j.screen.GameStation(); !ok || current != id {
		return false
	}
	screen, _ := StationRewardScreen(id)
	j.switchTo(screen)
	return true
}

// AcknowledgeReward 确认奖励，记录进度
// 最后一站进入终点画面，其余回到地图
func (j *Journey) AcknowledgeReward(id int) bool {
	if current, ok := j.screen.RewardStation(); !ok || current != id {
		return false
	}
	if !j.progress.complete(id) {
		log.Printf("[Journey] 站点 %d 的奖励与进度不一致 (当前进度 %d)", id, j.progress.Current)
		return false
	}
	log.Printf("[Journey] 站点 %d 完成，进度 %d/%d", id, j.progress.CompletedCount(), StationCount)

	if id == StationCount {
		j.switchTo(ScreenFinal)
	} else {
		j.switchTo(ScreenMap)
	}
	return true
}

// Restart 重置进度和角色，回到开始画面
func (j *Journey) Restart() {
	j.progress = Progress{}
	j.avatar = nil
	log.Printf("[Journey] 重新开始")
	j.switchTo(ScreenStart)
}

// JumpToStation 调试用：把之前的站点标记为完成并直接进入站点 id
func (j *Journey) JumpToStation(id int, a Avatar) bool {
	screen, ok := StationGameScreen(id)
	if !ok {
		return false
	}
	j.progress = Progress{}
	for s := 1; s < id; s++ {
		j.progress.complete(s)
	}
	selected := a
	j.avatar = &selected
	log.Printf("[Journey] 调试跳转到站点 %d", id)
	j.switchTo(screen)
	return true
}

func (j *Journey) switchTo(screen ScreenID) {
	from := j.screen
	j.screen = screen
	log.Printf("[Journey] 画面切换: %s -> %s", from, screen)
	if j.observer != nil {
		j.observer.ScreenChanged(from, screen)
	}
}
