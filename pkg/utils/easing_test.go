package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数在端点处取 0 和 1
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutQuad": EaseOutQuad,
		"EaseOutBack": EaseOutBack,
	}

	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			if v := f(0); math.Abs(v) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, v)
			}
			if v := f(1); math.Abs(v-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, v)
			}
		})
	}
}

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	// 1 - (1-0.5)^2 = 0.75
	if v := EaseOutQuad(0.5); math.Abs(v-0.75) > 0.001 {
		t.Errorf("EaseOutQuad(0.5) = %v, 期望 0.75", v)
	}

	// 开始快于线性
	for p := 0.1; p < 1.0; p += 0.1 {
		if EaseOutQuad(p) <= p {
			t.Errorf("EaseOutQuad(%v) 应该大于线性值", p)
		}
	}
}

// TestEaseOutBackOvershoot 回弹缓出在后半段越过 1
func TestEaseOutBackOvershoot(t *testing.T) {
	maxValue := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		maxValue = math.Max(maxValue, EaseOutBack(p))
	}
	if maxValue <= 1.0 {
		t.Errorf("EaseOutBack 最大值 %v 应该大于 1", maxValue)
	}
}

// TestLerpAndClamp 测试插值与截断
func TestLerpAndClamp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 100, 50, 0, 100},
		{"终点", 100, 50, 1, 50},
		{"中点", 1.0, 0.85, 0.5, 0.925},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := Lerp(tt.a, tt.b, tt.t); math.Abs(v-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, v, tt.expected)
			}
		})
	}

	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 截断错误")
	}
}

// TestBobAndPulse 测试周期动画
func TestBobAndPulse(t *testing.T) {
	if v := Bob(0.25, 1, 10); math.Abs(v-10) > 0.001 {
		t.Errorf("Bob 四分之一周期 = %v, 期望 10", v)
	}
	if v := Bob(1, 0, 10); v != 0 {
		t.Errorf("Bob 零周期 = %v, 期望 0", v)
	}

	if v := Pulse(0, 2, 0.2); math.Abs(v-1) > 0.001 {
		t.Errorf("Pulse(0) = %v, 期望 1", v)
	}
	if v := Pulse(1, 2, 0.2); math.Abs(v-0.8) > 0.001 {
		t.Errorf("Pulse 半周期 = %v, 期望 0.8", v)
	}
}
