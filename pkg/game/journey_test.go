package game

import (
	"math/rand"
	"testing"
)

var testAvatar = Avatar{ID: "huila-1", Name: "María Bambuco", Color: "#f43f5e"}

// recordingObserver 记录画面切换
type recordingObserver struct {
	transitions [][2]ScreenID
}

func (r *recordingObserver) ScreenChanged(from, to ScreenID) {
	r.transitions = append(r.transitions, [2]ScreenID{from, to})
}

// playStation 完成一个站点：进入、完成游戏、确认奖励
func playStation(t *testing.T, j *Journey, id int) {
	t.Helper()
	if !j.SelectStation(id) {
		t.Fatalf("SelectStation(%d) failed at progress %d", id, j.Progress().Current)
	}
	if !j.CompleteStationGame(id) {
		t.Fatalf("CompleteStationGame(%d) failed on %s", id, j.Screen())
	}
	if !j.AcknowledgeReward(id) {
		t.Fatalf("AcknowledgeReward(%d) failed on %s", id, j.Screen())
	}
}

// TestJourneyEndToEnd 完整旅程：开始 → 角色 → 四个站点 → 终点
func TestJourneyEndToEnd(t *testing.T) {
	j := NewJourney()
	obs := &recordingObserver{}
	j.SetObserver(obs)

	if !j.Start() || j.Screen() != ScreenAvatarSelection {
		t.Fatalf("Start() -> %s", j.Screen())
	}
	if !j.SelectAvatar(testAvatar) || j.Screen() != ScreenMap {
		t.Fatalf("SelectAvatar() -> %s", j.Screen())
	}

	for id := 1; id <= StationCount; id++ {
		playStation(t, j, id)
	}

	if j.Screen() != ScreenFinal {
		t.Errorf("screen = %s, want final", j.Screen())
	}
	p := j.Progress()
	if !p.AllComplete() || p.Current != 4 || p.Fraction() != 1 {
		t.Errorf("progress = %+v", p)
	}

	want := []ScreenID{
		ScreenAvatarSelection, ScreenMap,
		ScreenStation1Game, ScreenStation1Reward, ScreenMap,
		ScreenStation2Game, ScreenStation2Reward, ScreenMap,
		ScreenStation3Game, ScreenStation3Reward, ScreenMap,
		ScreenStation4Game, ScreenStation4Reward, ScreenFinal,
	}
	if len(obs.transitions) != len(want) {
		t.Fatalf("observer saw %d transitions, want %d", len(obs.transitions), len(want))
	}
	for i, tr := range obs.transitions {
		if tr[1] != want[i] {
			t.Errorf("transition %d = %s -> %s, want -> %s", i, tr[0], tr[1], want[i])
		}
	}
}

// TestSelectStationUnlockMonotonicity 只有 Current+1 可以进入
func TestSelectStationUnlockMonotonicity(t *testing.T) {
	j := NewJourney()
	j.Start()
	j.SelectAvatar(testAvatar)

	for current := 0; current < StationCount; current++ {
		for id := 0; id <= StationCount+1; id++ {
			if id == current+1 {
				continue
			}
			before := *j
			if j.SelectStation(id) {
				t.Fatalf("SelectStation(%d) succeeded at progress %d", id, current)
			}
			if j.Screen() != before.screen || j.Progress() != before.progress {
				t.Fatalf("rejected SelectStation(%d) changed state", id)
			}
		}
		playStation(t, j, current+1)
	}
}

// TestProgressMonotonicity 随机操作序列中进度只增不减（重新开始除外）
func TestProgressMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	j := NewJourney()

	prev := j.Progress()
	for i := 0; i < 5000; i++ {
		id := rng.Intn(6)
		restarted := false
		switch rng.Intn(7) {
		case 0:
			j.Start()
		case 1:
			j.SelectAvatar(testAvatar)
		case 2, 3:
			j.SelectStation(id)
		case 4:
			j.CompleteStationGame(id)
		case 5:
			j.AcknowledgeReward(id)
		case 6:
			if rng.Intn(20) == 0 {
				j.Restart()
				restarted = true
			}
		}

		cur := j.Progress()
		if !restarted {
			if cur.Current < prev.Current {
				t.Fatalf("step %d: Current decreased %d -> %d", i, prev.Current, cur.Current)
			}
			for k := 0; k < StationCount; k++ {
				if prev.Completed[k] && !cur.Completed[k] {
					t.Fatalf("step %d: station %d became incomplete", i, k+1)
				}
			}
		}
		for k := 0; k < StationCount; k++ {
			if cur.Completed[k] && k >= cur.Current {
				t.Fatalf("step %d: completed[%d] with Current=%d", i, k, cur.Current)
			}
		}
		prev = cur
	}
}

// TestRestartResetsEverything 重新开始清空进度和角色
func TestRestartResetsEverything(t *testing.T) {
	j := NewJourney()
	j.Start()
	j.SelectAvatar(testAvatar)
	for id := 1; id <= StationCount; id++ {
		playStation(t, j, id)
	}

	j.Restart()

	if j.Screen() != ScreenStart {
		t.Errorf("screen = %s, want start", j.Screen())
	}
	if j.Progress() != (Progress{}) {
		t.Errorf("progress = %+v, want zero", j.Progress())
	}
	if _, ok := j.Avatar(); ok {
		t.Error("avatar should be cleared by Restart")
	}

	// 重新开始后可以选择另一个角色
	j.Start()
	other := Avatar{ID: "huila-2", Name: "José Arriero"}
	if !j.SelectAvatar(other) {
		t.Fatal("SelectAvatar after Restart failed")
	}
	if a, _ := j.Avatar(); a.ID != "huila-2" {
		t.Errorf("avatar = %s, want huila-2", a.ID)
	}
}

// TestScreenGuards 在错误画面上的操作全部无效
func TestScreenGuards(t *testing.T) {
	j := NewJourney()

	if j.SelectAvatar(testAvatar) {
		t.Error("SelectAvatar on start screen should fail")
	}
	if j.CompleteStationGame(1) || j.AcknowledgeReward(1) {
		t.Error("station handlers on start screen should fail")
	}

	j.Start()
	if j.Start() {
		t.Error("second Start should fail")
	}
	j.SelectAvatar(testAvatar)
	if j.SelectAvatar(Avatar{ID: "other"}) {
		t.Error("avatar should be immutable until restart")
	}

	j.SelectStation(1)
	if j.CompleteStationGame(2) {
		t.Error("CompleteStationGame(2) while playing station 1 should fail")
	}
	if j.AcknowledgeReward(1) {
		t.Error("AcknowledgeReward before the reward screen should fail")
	}
	if j.Progress().Current != 0 {
		t.Error("progress changed before reward acknowledgement")
	}

	j.CompleteStationGame(1)
	if j.Progress().Current != 0 {
		t.Error("CompleteStationGame should not mutate progress")
	}
	if j.AcknowledgeReward(2) {
		t.Error("AcknowledgeReward(2) on station1-reward should fail")
	}
}

// TestJumpToStation 调试跳转
func TestJumpToStation(t *testing.T) {
	j := NewJourney()
	if !j.JumpToStation(3, testAvatar) {
		t.Fatal("JumpToStation(3) failed")
	}
	if j.Screen() != ScreenStation3Game {
		t.Errorf("screen = %s", j.Screen())
	}
	p := j.Progress()
	if p.Current != 2 || !p.IsCompleted(1) || !p.IsCompleted(2) || p.IsCompleted(3) {
		t.Errorf("progress = %+v", p)
	}
	if j.JumpToStation(5, testAvatar) {
		t.Error("JumpToStation(5) should fail")
	}
}

// TestSelectStationChecksUnlockOnly 进入站点只看解锁条件，与当前画面无关
func TestSelectStationChecksUnlockOnly(t *testing.T) {
	j := NewJourney()

	if j.SelectStation(2) {
		t.Errorf("SelectStation(2) from start should be refused")
	}
	if !j.SelectStation(1) || j.Screen() != ScreenStation1Game {
		t.Fatalf("SelectStation(1) from start -> %s", j.Screen())
	}
	if a, ok := j.Avatar(); ok {
		t.Errorf("avatar = %+v, want none", a)
	}
	if p := j.Progress(); p.Current != 0 || p.CompletedCount() != 0 {
		t.Errorf("progress = %+v, want untouched", p)
	}
}
