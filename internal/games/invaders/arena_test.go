package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestArenaSpawnAndDestroy(t *testing.T) {
	a := NewArena()
	p := a.Spawn(CategoryPlayer, core.Vec{X: 1, Y: 1}, core.Vec{}, 5, 2, 0)
	e := a.Spawn(CategoryEnemy, core.Vec{X: 4, Y: 4}, core.Vec{Y: 1}, 3, 1, 0)

	if p.ID == 0 || e.ID == p.ID {
		t.Fatalf("bad ids: %d %d", p.ID, e.ID)
	}
	if !a.Alive(e.ID) {
		t.Fatal("spawned token should be alive")
	}
	if !a.Destroy(e.ID) {
		t.Error("first destroy should succeed")
	}
	if a.Destroy(e.ID) {
		t.Error("second destroy should report the token already gone")
	}
	if _, ok := a.Get(e.ID); ok {
		t.Error("destroyed token should not be returned")
	}

	n := a.Spawn(CategoryEnemy, core.Vec{}, core.Vec{}, 3, 1, 0)
	if n.ID == e.ID {
		t.Error("ids must not be reused")
	}
}

func TestArenaEachOrderAndMask(t *testing.T) {
	a := NewArena()
	var want []TokenID
	for i := 0; i < 5; i++ {
		cat := CategoryEnemy
		if i%2 == 1 {
			cat = CategoryProjectile
		}
		id := a.Spawn(cat, core.Vec{X: float64(i)}, core.Vec{}, 1, 1, 0).ID
		if cat == CategoryEnemy {
			want = append(want, id)
		}
	}
	a.Destroy(want[1])
	want = append(want[:1], want[2:]...)

	got := a.IDs(CategoryEnemy)
	if len(got) != len(want) {
		t.Fatalf("IDs = %v, expected %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("IDs = %v, expected %v", got, want)
		}
	}
	if n := a.Count(CategoryEnemy | CategoryProjectile); n != 4 {
		t.Errorf("Count = %d, expected 4", n)
	}

	a.Compact()
	if n := a.Count(CategoryAll); n != 4 {
		t.Errorf("Compact changed live count to %d", n)
	}
}

func TestArenaMove(t *testing.T) {
	a := NewArena()
	tok := a.Spawn(CategoryProjectile, core.Vec{X: 2, Y: 10}, core.Vec{X: 0.5, Y: -1}, 1, 1, 0)
	gone := a.Spawn(CategoryProjectile, core.Vec{X: 0, Y: 0}, core.Vec{Y: 1}, 1, 1, 0)
	a.Destroy(gone.ID)

	a.Move()
	a.Move()

	if tok.Pos != (core.Vec{X: 3, Y: 8}) {
		t.Errorf("position after two moves = %+v", tok.Pos)
	}
	if gone.Pos != (core.Vec{}) {
		t.Error("destroyed tokens must not move")
	}
}

func TestSweptBox(t *testing.T) {
	a := NewArena()
	shot := a.Spawn(CategoryProjectile, core.Vec{X: 5, Y: 5}, core.Vec{Y: -3}, 1, 1, 0)
	enemy := a.Spawn(CategoryEnemy, core.Vec{X: 5, Y: 6.5}, core.Vec{}, 3, 1, 0)

	if shot.Box().Intersects(enemy.Box()) {
		t.Fatal("current boxes should not touch")
	}
	if !shot.Swept().Intersects(enemy.Box()) {
		t.Error("swept box should catch a token passed during the tick")
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryPlayer, "player"},
		{CategoryEnemy, "enemy"},
		{CategoryProjectile, "projectile"},
		{CategoryPickup, "pickup"},
		{CategoryEnemy | CategoryPlayer, "mixed"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, expected %q", tt.cat, got, tt.want)
		}
	}
}
