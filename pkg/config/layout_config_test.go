package config

import (
	"math"
	"testing"
)

// TestPercentToScreen 测试百分比坐标与像素坐标的转换
func TestPercentToScreen(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		wantX  float64
		wantY  float64
	}{
		{"左上角", 0, 0, 0, 0},
		{"中心", 50, 50, ScreenWidth / 2, ScreenHeight / 2},
		{"右下角", 100, 100, ScreenWidth, ScreenHeight},
		{"种植点", 20, 65, 256, 468},
	}

	epsilon := 0.001
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PercentToScreen(tt.px, tt.py)
			if math.Abs(x-tt.wantX) > epsilon || math.Abs(y-tt.wantY) > epsilon {
				t.Errorf("PercentToScreen(%.1f, %.1f) = (%.2f, %.2f), want (%.2f, %.2f)",
					tt.px, tt.py, x, y, tt.wantX, tt.wantY)
			}

			// 反向转换应回到原值
			bx, by := ScreenToPercent(x, y)
			if math.Abs(bx-tt.px) > epsilon || math.Abs(by-tt.py) > epsilon {
				t.Errorf("ScreenToPercent round trip = (%.2f, %.2f), want (%.2f, %.2f)", bx, by, tt.px, tt.py)
			}
		})
	}
}

// TestHintBubbleInsideScreen 引导气泡必须完整显示在屏幕内
func TestHintBubbleInsideScreen(t *testing.T) {
	if HintBubbleX < 0 || HintBubbleX+HintBubbleWidth > ScreenWidth {
		t.Errorf("hint bubble x range [%.1f, %.1f] exceeds screen width %d",
			HintBubbleX, HintBubbleX+HintBubbleWidth, ScreenWidth)
	}
	if DeltaTime <= 0 || DeltaTime > 0.1 {
		t.Errorf("DeltaTime = %f, expected a small positive frame step", DeltaTime)
	}
}
