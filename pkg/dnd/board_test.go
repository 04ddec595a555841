package dnd

import (
	"testing"
)

// newRiverBoard 构造一个两垃圾、两垃圾桶的面板
func newRiverBoard() (*Board, *bool) {
	b := NewBoard(NewSession())
	cleaned := false

	b.AddSource(Source{
		Key:     "trash:1",
		Area:    Circle{X: 100, Y: 100, R: 20},
		Payload: Payload{Kind: KindTrash, ID: 1, Tag: "recyclable"},
		Enabled: func() bool { return !cleaned },
	})
	b.AddSource(Source{
		Key:     "trash:2",
		Area:    Circle{X: 300, Y: 100, R: 20},
		Payload: Payload{Kind: KindTrash, ID: 2, Tag: "organic"},
	})
	b.AddTarget(Target{Key: "bin:recyclable", Area: Rect{X: 0, Y: 500, W: 200, H: 100}, Accepts: KindTrash, Tag: "recyclable"})
	b.AddTarget(Target{Key: "bin:organic", Area: Rect{X: 300, Y: 500, W: 200, H: 100}, Accepts: KindTrash, Tag: "organic"})
	return b, &cleaned
}

// TestBoardDropOnTarget 拖到目标上返回投放信息
func TestBoardDropOnTarget(t *testing.T) {
	b, _ := newRiverBoard()

	src := b.Press(105, 100)
	if src == nil || src.Key != "trash:1" {
		t.Fatalf("Press() = %v, want trash:1", src)
	}

	b.Move(350, 550)
	if hover := b.Hover(); hover == nil || hover.Key != "bin:organic" {
		t.Errorf("Hover() = %v, want bin:organic", hover)
	}

	drop := b.Release(350, 550)
	if drop == nil {
		t.Fatal("Release over a bin should produce a drop")
	}
	if drop.Target.Key != "bin:organic" || drop.Payload.ID != 1 || drop.SourceKey != "trash:1" {
		t.Errorf("unexpected drop %+v", drop)
	}
	if b.Session().Active() {
		t.Error("session should be idle after Release")
	}
}

// TestBoardReleaseOutsideIsNoop 松开在空白处不产生投放
func TestBoardReleaseOutsideIsNoop(t *testing.T) {
	b, _ := newRiverBoard()

	b.Press(300, 100)
	if drop := b.Release(700, 300); drop != nil {
		t.Errorf("Release outside targets = %+v, want nil", drop)
	}
	if b.Session().Active() {
		t.Error("session should end even when released outside")
	}

	// 没有拖拽时松开
	if drop := b.Release(100, 550); drop != nil {
		t.Errorf("Release without drag = %+v, want nil", drop)
	}
}

// TestBoardDisabledSource 不可用的拖拽源不能被拖起
func TestBoardDisabledSource(t *testing.T) {
	b, cleaned := newRiverBoard()
	*cleaned = true

	if src := b.Press(100, 100); src != nil {
		t.Errorf("Press on disabled source = %v, want nil", src)
	}
}

// TestBoardTargetKindFilter 目标只接受声明的类型
func TestBoardTargetKindFilter(t *testing.T) {
	b := NewBoard(NewSession())
	b.AddSource(Source{Key: "panel", Area: Rect{X: 0, Y: 0, W: 50, H: 50}, Payload: Payload{Kind: KindSolarPanel}})
	b.AddTarget(Target{Key: "spot:1", Area: Circle{X: 200, Y: 200, R: 40}, Accepts: KindTool, ID: 1})

	b.Press(25, 25)
	if drop := b.Release(200, 200); drop != nil {
		t.Errorf("solar panel dropped on a tool target: %+v", drop)
	}
}

// TestBoardTopmostWins 重叠时后注册的元素优先
func TestBoardTopmostWins(t *testing.T) {
	b := NewBoard(NewSession())
	b.AddTarget(Target{Key: "lower", Area: Rect{X: 0, Y: 0, W: 100, H: 100}, Accepts: KindAnimal})
	b.AddTarget(Target{Key: "upper", Area: Rect{X: 50, Y: 50, W: 100, H: 100}, Accepts: KindAnimal})

	if got := b.TargetAt(75, 75, KindAnimal); got == nil || got.Key != "upper" {
		t.Errorf("TargetAt overlap = %v, want upper", got)
	}
	if got := b.TargetAt(25, 25, KindAnimal); got == nil || got.Key != "lower" {
		t.Errorf("TargetAt lower-only = %v, want lower", got)
	}
}

// TestBoardPressWhileDragging 拖拽进行中按下其他源不会开始第二个拖拽
func TestBoardPressWhileDragging(t *testing.T) {
	b, _ := newRiverBoard()
	b.Press(100, 100)

	if src := b.Press(300, 100); src != nil {
		t.Errorf("second Press during drag = %v, want nil", src)
	}
	if p, _ := b.Session().Payload(); p.ID != 1 {
		t.Errorf("active payload = %v, want trash #1", p)
	}

	b.Clear()
	if b.Session().Active() || len(b.Sources()) != 0 || len(b.Targets()) != 0 {
		t.Error("Clear should cancel the drag and remove everything")
	}
}

// TestShapes 命中区域
func TestShapes(t *testing.T) {
	r := RectAround(100, 100, 40, 20)
	if !r.Contains(80, 90) || !r.Contains(120, 110) || r.Contains(121, 100) {
		t.Errorf("RectAround bounds wrong: %+v", r)
	}
	if cx, cy := r.Center(); cx != 100 || cy != 100 {
		t.Errorf("Rect.Center() = (%f, %f)", cx, cy)
	}

	c := Circle{X: 0, Y: 0, R: 10}
	if !c.Contains(6, 8) || c.Contains(8, 8) {
		t.Error("Circle.Contains boundary check failed")
	}
}
