package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 || id1 == InvalidEntity {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 修改指针组件应反映到实体上
	pos.X = 5
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 5 {
		t.Errorf("pointer component should be shared, got X=%f", again.X)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(42), &testPositionComponent{})

	if HasComponent[*testPositionComponent](em, EntityID(42)) {
		t.Error("unknown entity should not receive components")
	}
	if em.Exists(EntityID(42)) {
		t.Error("unknown entity should not be created implicitly")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	// 标记删除后实体仍然存在，直到 RemoveMarkedEntities
	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Removed entity should not have components")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	AddComponent(em, both, &testPositionComponent{})
	AddComponent(em, both, &testVelocityComponent{})

	posOnly := em.CreateEntity()
	AddComponent(em, posOnly, &testPositionComponent{})

	velOnly := em.CreateEntity()
	AddComponent(em, velOnly, &testVelocityComponent{})

	withPos := GetEntitiesWith1[*testPositionComponent](em)
	if len(withPos) != 2 || withPos[0] != both || withPos[1] != posOnly {
		t.Errorf("GetEntitiesWith1 = %v, want [%d %d]", withPos, both, posOnly)
	}

	withBoth := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(withBoth) != 1 || withBoth[0] != both {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", withBoth, both)
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
	}

	ids := GetEntitiesWith1[*testPositionComponent](em)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("entities not sorted at %d: %v", i, ids)
		}
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()
	em.Clear()

	if em.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", em.Count())
	}

	// 清空后 ID 继续递增，不会与旧实体冲突
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("CreateEntity() after Clear = %d, want 3", id)
	}
}
