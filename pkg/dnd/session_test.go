package dnd

import (
	"testing"

	"github.com/google/uuid"
)

// TestSessionSingleSlot 同一时刻只能有一个拖拽
func TestSessionSingleSlot(t *testing.T) {
	s := NewSession()
	seed := Payload{Kind: KindTool, Tag: "seed"}
	water := Payload{Kind: KindTool, Tag: "water"}

	if !s.Begin("tool:seed", seed, 10, 10, 0, 0) {
		t.Fatal("first Begin should succeed")
	}
	firstID := s.ID()
	if firstID == uuid.Nil {
		t.Error("active session should have an id")
	}

	if s.Begin("tool:water", water, 20, 20, 0, 0) {
		t.Error("second Begin while active should fail")
	}
	if p, _ := s.Payload(); p != seed {
		t.Errorf("payload changed to %v after rejected Begin", p)
	}
	if s.ID() != firstID {
		t.Error("session id changed after rejected Begin")
	}

	got, ok := s.End()
	if !ok || got != seed {
		t.Errorf("End() = %v, %v; want %v, true", got, ok, seed)
	}
	if s.Active() || s.ID() != uuid.Nil {
		t.Error("session should be idle after End")
	}

	if !s.Begin("tool:water", water, 0, 0, 0, 0) {
		t.Error("Begin after End should succeed")
	}
	if s.ID() == firstID {
		t.Error("new drag should get a new session id")
	}
}

// TestSessionMoveAndPreview 预览中心保持按下时的偏移
func TestSessionMoveAndPreview(t *testing.T) {
	s := NewSession()
	s.Move(50, 50) // 空闲时忽略
	if x, y := s.Position(); x != 0 || y != 0 {
		t.Errorf("idle Move changed position to (%f, %f)", x, y)
	}

	s.Begin("trash:1", Payload{Kind: KindTrash, ID: 1}, 110, 105, 10, 5)
	s.Move(300, 400)
	if x, y := s.PreviewCenter(); x != 290 || y != 395 {
		t.Errorf("PreviewCenter() = (%f, %f), want (290, 395)", x, y)
	}

	s.Cancel()
	if _, ok := s.End(); ok {
		t.Error("End after Cancel should report no drag")
	}
}

// TestPayloadString 日志描述
func TestPayloadString(t *testing.T) {
	tests := []struct {
		p    Payload
		want string
	}{
		{Payload{Kind: KindTool, Tag: "seed"}, "tool(seed)"},
		{Payload{Kind: KindTrash, ID: 3, Tag: "recyclable"}, "trash#3(recyclable)"},
		{Payload{Kind: KindAnimal, ID: 5, Tag: "tree"}, "animal#5(tree)"},
		{Payload{Kind: Kind(99)}, "kind(99)()"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
