package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/ecs"
)

// newFeedbackWorld 创建测试用的效果世界
func newFeedbackWorld() (*ecs.EntityManager, *FeedbackSystem, *LifetimeSystem, *FlashEffectSystem) {
	em := ecs.NewEntityManager()
	flashes := NewFlashEffectSystem(em)
	return em, NewFeedbackSystem(em, flashes), NewLifetimeSystem(em), flashes
}

// step 推进一帧：更新系统并清理过期实体
func step(em *ecs.EntityManager, lifetimes *LifetimeSystem, flashes *FlashEffectSystem, dt float64) {
	lifetimes.Update(dt)
	flashes.Update(dt)
	em.RemoveMarkedEntities()
}

// TestRejectionAutoClears 拒绝标记在 RejectionTTL 后自动清除
func TestRejectionAutoClears(t *testing.T) {
	em, feedback, lifetimes, flashes := newFeedbackWorld()

	feedback.Reject("spot:1")
	if !feedback.IsRejected("spot:1") {
		t.Fatal("spot:1 should be rejected right after Reject")
	}

	step(em, lifetimes, flashes, config.RejectionTTL*0.5)
	if !feedback.IsRejected("spot:1") {
		t.Error("rejection should still be visible at half TTL")
	}

	step(em, lifetimes, flashes, config.RejectionTTL*0.6)
	if feedback.IsRejected("spot:1") {
		t.Error("rejection should be cleared after TTL")
	}
	if em.Count() != 0 {
		t.Errorf("effect entities left = %d, want 0", em.Count())
	}
}

// TestRejectionRestartsTimer 新的拒绝会重新计时，不会创建第二个实体
func TestRejectionRestartsTimer(t *testing.T) {
	em, feedback, lifetimes, flashes := newFeedbackWorld()

	first := feedback.Reject("bin:organic")
	step(em, lifetimes, flashes, config.RejectionTTL*0.8)

	second := feedback.Reject("bin:organic")
	if first != second {
		t.Errorf("Reject on the same target should reuse entity %d, got %d", first, second)
	}

	// 距第一次拒绝已超过 TTL，但距第二次只有 0.5 TTL
	step(em, lifetimes, flashes, config.RejectionTTL*0.5)
	if !feedback.IsRejected("bin:organic") {
		t.Error("restarted rejection should still be visible")
	}

	step(em, lifetimes, flashes, config.RejectionTTL*0.6)
	if feedback.IsRejected("bin:organic") {
		t.Error("restarted rejection should clear after a full TTL")
	}
}

// TestRejectionTargetsAreIndependent 不同目标的标记互不影响
func TestRejectionTargetsAreIndependent(t *testing.T) {
	_, feedback, _, _ := newFeedbackWorld()

	feedback.Reject("trash:1")
	if feedback.IsRejected("trash:2") {
		t.Error("trash:2 should not be rejected")
	}
	if feedback.ShakeOffset("trash:2") != 0 {
		t.Error("unmarked target should not shake")
	}
}

// TestShakeOffsetDecays 抖动只在前半段出现
func TestShakeOffsetDecays(t *testing.T) {
	em, feedback, lifetimes, flashes := newFeedbackWorld()
	feedback.Reject("animal:3")

	step(em, lifetimes, flashes, config.RejectionTTL*0.6)
	if off := feedback.ShakeOffset("animal:3"); off != 0 {
		t.Errorf("ShakeOffset in second half = %f, want 0", off)
	}
	if !feedback.IsRejected("animal:3") {
		t.Error("mark should remain during the second half")
	}
}

// TestAcceptFlashFades 正确投放的高亮逐渐衰减并在结束后删除
func TestAcceptFlashFades(t *testing.T) {
	em, feedback, lifetimes, flashes := newFeedbackWorld()
	feedback.Accept("building:2", color.RGBA{R: 250, G: 204, B: 21, A: 255})

	if got := feedback.FlashIntensity("building:2"); got != 1 {
		t.Errorf("initial intensity = %f, want 1", got)
	}

	step(em, lifetimes, flashes, config.SuccessFlashTTL*0.5)
	mid := feedback.FlashIntensity("building:2")
	if mid <= 0 || mid >= 1 {
		t.Errorf("intensity at half duration = %f, want (0,1)", mid)
	}

	step(em, lifetimes, flashes, config.SuccessFlashTTL)
	if got := feedback.FlashIntensity("building:2"); got != 0 {
		t.Errorf("intensity after duration = %f, want 0", got)
	}
	if em.Count() != 0 {
		t.Errorf("effect entities left = %d, want 0", em.Count())
	}
}
