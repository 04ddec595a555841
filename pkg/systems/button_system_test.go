package systems

import (
	"testing"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
	"github.com/gonewx/greentrain/pkg/utils"
)

// fakePointer 可以逐帧设置的指针输入
type fakePointer struct {
	pressed bool
	x, y    int
}

func (f *fakePointer) Pointer() (bool, int, int) {
	return f.pressed, f.x, f.y
}

// newButtonWorld 在 (100,100) 处创建 200x60 的按钮
func newButtonWorld() (*ecs.EntityManager, *fakePointer, *utils.DragManager, *ButtonSystem, *components.ButtonComponent, *int) {
	em := ecs.NewEntityManager()
	pointer := &fakePointer{}
	drag := utils.NewDragManager(pointer)
	clicks := new(int)

	id := em.CreateEntity()
	button := &components.ButtonComponent{
		Text:    "¡Jugar!",
		Width:   200,
		Height:  60,
		Enabled: true,
		OnClick: func() { *clicks++ },
	}
	ecs.AddComponent(em, id, button)
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 100})

	return em, pointer, drag, NewButtonSystem(em, drag), button, clicks
}

// frame 设置指针并推进一帧
func frame(p *fakePointer, drag *utils.DragManager, s *ButtonSystem, pressed bool, x, y int) {
	p.pressed, p.x, p.y = pressed, x, y
	drag.Update()
	s.Update(1.0 / 60)
}

// TestButtonClick 在按钮内按下并松开触发一次回调
func TestButtonClick(t *testing.T) {
	_, p, drag, s, button, clicks := newButtonWorld()

	frame(p, drag, s, false, 150, 120)
	if button.State != components.UIHovered {
		t.Errorf("state = %v, want hovered", button.State)
	}

	frame(p, drag, s, true, 150, 120)
	if button.State != components.UIClicked {
		t.Errorf("state = %v, want clicked", button.State)
	}
	if *clicks != 0 {
		t.Fatal("OnClick should fire on release, not on press")
	}

	frame(p, drag, s, false, 150, 120)
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}

	frame(p, drag, s, false, 150, 120)
	if *clicks != 1 {
		t.Errorf("clicks = %d after idle frame, want 1", *clicks)
	}
}

// TestButtonDragOff 按下后移出按钮再松开不触发
func TestButtonDragOff(t *testing.T) {
	_, p, drag, s, button, clicks := newButtonWorld()

	frame(p, drag, s, true, 150, 120)
	frame(p, drag, s, true, 500, 500)
	if button.State != components.UINormal {
		t.Errorf("state = %v, want normal", button.State)
	}
	frame(p, drag, s, false, 500, 500)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

// TestButtonPressOutsideReleaseInside 在按钮外按下、按钮内松开不触发
func TestButtonPressOutsideReleaseInside(t *testing.T) {
	_, p, drag, s, _, clicks := newButtonWorld()

	frame(p, drag, s, true, 10, 10)
	frame(p, drag, s, true, 150, 120)
	frame(p, drag, s, false, 150, 120)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

// TestButtonDisabled 禁用的按钮不响应
func TestButtonDisabled(t *testing.T) {
	_, p, drag, s, button, clicks := newButtonWorld()
	button.Enabled = false

	frame(p, drag, s, true, 150, 120)
	frame(p, drag, s, false, 150, 120)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	if button.State != components.UIDisabled {
		t.Errorf("state = %v, want disabled", button.State)
	}
}
