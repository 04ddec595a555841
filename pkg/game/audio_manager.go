package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 48000

// SoundID 音效标识
type SoundID int

const (
	// SoundClick 按钮点击
	SoundClick SoundID = iota
	// SoundPickup 拿起拖拽物
	SoundPickup
	// SoundAccept 正确投放
	SoundAccept
	// SoundReject 错误投放
	SoundReject
	// SoundComplete 站点完成
	SoundComplete
	// SoundFanfare 旅程完成
	SoundFanfare
)

// note 一个音符：频率（Hz，0 表示休止）和时长（秒）
type note struct {
	freq     float64
	duration float64
}

// soundScores 每个音效的音符序列
// 游戏不带音频资源文件，所有音效在启动时合成
var soundScores = map[SoundID][]note{
	SoundClick:    {{880, 0.05}},
	SoundPickup:   {{660, 0.06}, {990, 0.06}},
	SoundAccept:   {{784, 0.09}, {1047, 0.16}},
	SoundReject:   {{220, 0.12}, {0, 0.04}, {196, 0.18}},
	SoundComplete: {{523, 0.12}, {659, 0.12}, {784, 0.12}, {1047, 0.3}},
	SoundFanfare:  {{523, 0.15}, {523, 0.1}, {784, 0.15}, {659, 0.1}, {784, 0.15}, {1047, 0.45}},
}

// AudioManager 音频管理器
// 职责：
//   - 启动时合成所有音效的 PCM 数据
//   - 统一管理音效播放与静音开关
//
// audioContext 为 nil 时（测试、校验工具）所有播放调用都是空操作
type AudioManager struct {
	audioContext *audio.Context
	pcm          map[SoundID][]byte
	muted        bool
	volume       float64
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文，可为 nil
//   - muted: 是否静音
func NewAudioManager(ctx *audio.Context, muted bool) *AudioManager {
	am := &AudioManager{
		audioContext: ctx,
		pcm:          make(map[SoundID][]byte, len(soundScores)),
		muted:        muted,
		volume:       0.6,
	}
	for id, score := range soundScores {
		am.pcm[id] = synthesize(score, SampleRate)
	}
	log.Printf("[AudioManager] 合成 %d 个音效 (muted=%v)", len(am.pcm), muted)
	return am
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否实际播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.muted || am.audioContext == nil {
		return false
	}

	data, ok := am.pcm[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %d", id)
		return false
	}

	player := am.audioContext.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// SetMuted 切换静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// SetVolume 设置音量 (0.0 ~ 1.0)
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// synthesize 把音符序列合成为 16 位小端立体声 PCM
// 每个音符使用正弦波加短促的起音和指数衰减，避免爆音
func synthesize(score []note, sampleRate int) []byte {
	total := 0
	for _, n := range score {
		total += int(n.duration * float64(sampleRate))
	}

	buf := make([]byte, 0, total*4)
	frame := make([]byte, 4)
	attack := int(0.005 * float64(sampleRate))

	for _, n := range score {
		samples := int(n.duration * float64(sampleRate))
		for i := 0; i < samples; i++ {
			var v float64
			if n.freq > 0 {
				t := float64(i) / float64(sampleRate)
				env := math.Exp(-4 * float64(i) / float64(samples))
				if i < attack {
					env *= float64(i) / float64(attack)
				}
				// 基音加一点二次谐波，让声音更圆润
				v = (math.Sin(2*math.Pi*n.freq*t) + 0.25*math.Sin(4*math.Pi*n.freq*t)) * env * 0.5
			}
			s := int16(v * math.MaxInt16)
			binary.LittleEndian.PutUint16(frame[0:], uint16(s))
			binary.LittleEndian.PutUint16(frame[2:], uint16(s))
			buf = append(buf, frame...)
		}
	}
	return buf
}
