package game

import "testing"

// TestSynthesizeLength PCM 长度与音符时长一致（16 位立体声，每帧 4 字节）
func TestSynthesizeLength(t *testing.T) {
	score := []note{{440, 0.1}, {0, 0.05}}
	pcm := synthesize(score, 1000)

	want := (100 + 50) * 4
	if len(pcm) != want {
		t.Errorf("len(pcm) = %d, want %d", len(pcm), want)
	}

	// 休止部分全部为 0
	for i := 100 * 4; i < len(pcm); i++ {
		if pcm[i] != 0 {
			t.Fatalf("rest sample at byte %d = %d, want 0", i, pcm[i])
		}
	}
}

// TestAudioManagerWithoutContext 没有音频上下文时播放为空操作
func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, false)
	for id := range soundScores {
		if len(am.pcm[id]) == 0 {
			t.Errorf("sound %d has no PCM data", id)
		}
		if am.PlaySound(id) {
			t.Errorf("PlaySound(%d) without context should return false", id)
		}
	}

	am.SetMuted(true)
	if !am.IsMuted() {
		t.Error("SetMuted(true) not applied")
	}

	var nilManager *AudioManager
	if nilManager.PlaySound(SoundClick) {
		t.Error("nil AudioManager should not play")
	}
}
