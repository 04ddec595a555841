package utils

import "math"

// 缓动函数
//
// 所有缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值。
// 界面中的弹出、飘动和闪光效果都通过它们计算。
//
// 参考：https://easings.net/

// EaseOutQuad 二次方缓出
// 开始快，结束慢（闪光淡出）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutBack 回弹缓出
// 末尾会略微越过 1 再回到 1（奖励画面、徽章弹出）
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Bob 周期性上下浮动的偏移量
//
// 参数：
//   - elapsed: 累计时间（秒）
//   - period: 一次完整浮动的周期（秒）
//   - amplitude: 偏移幅度（像素）
func Bob(elapsed, period, amplitude float64) float64 {
	if period <= 0 {
		return 0
	}
	return math.Sin(elapsed/period*2*math.Pi) * amplitude
}

// Pulse 在 [1-depth, 1] 之间周期变化的缩放系数（呼吸效果）
func Pulse(elapsed, period, depth float64) float64 {
	if period <= 0 {
		return 1
	}
	return 1 - depth*(0.5-0.5*math.Cos(elapsed/period*2*math.Pi))
}
