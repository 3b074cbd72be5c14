package stomper

import (
	"testing"

	"github.com/arcadelab/stomper/internal/core"
)

func TestEntityIDsNeverRecycled(t *testing.T) {
	w := NewWorld(800, 600, -500, 1)

	a := w.NewEntity()
	b := w.NewEntity()
	if a == 0 {
		t.Error("Entity ID 0 is reserved")
	}
	if b <= a {
		t.Errorf("IDs must be increasing: %d then %d", a, b)
	}

	w.Destroy(a)
	c := w.NewEntity()
	if c == a {
		t.Error("Destroyed ID was recycled")
	}
}

func TestDestroyClearsPlayerSingleton(t *testing.T) {
	w := NewWorld(800, 600, -500, 1)
	id := w.SpawnPlayer(core.Vec2{X: 0, Y: 25}, core.Vec2{X: 15, Y: 15})

	if w.PlayerID != id {
		t.Fatalf("PlayerID = %d, want %d", w.PlayerID, id)
	}

	w.Destroy(id)
	if w.PlayerID != 0 {
		t.Errorf("PlayerID = %d after destroy, want 0", w.PlayerID)
	}
	if w.Exists(id) {
		t.Error("Destroyed player still exists")
	}
}

func TestEnemiesSortedAscending(t *testing.T) {
	w := NewWorld(800, 600, -500, 1)
	half := core.Vec2{X: 15, Y: 15}
	for i := 0; i < 5; i++ {
		w.SpawnEnemy(core.Vec2{X: float64(i) * 50, Y: 25}, half, 50)
	}

	ids := w.Enemies()
	if len(ids) != 5 {
		t.Fatalf("Enemies() returned %d IDs, want 5", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("Enemies() not sorted: %v", ids)
		}
	}
}

func TestBoxUsesPositionAndHalf(t *testing.T) {
	w := NewWorld(800, 600, -500, 1)
	id := w.SpawnObstacle(core.Vec2{X: 100, Y: 30}, core.Vec2{X: 20, Y: 20})

	box := w.Box(id)
	if box.Left() != 80 || box.Right() != 120 {
		t.Errorf("Box x extent [%v, %v], want [80, 120]", box.Left(), box.Right())
	}
	if box.Bottom() != 10 || box.Top() != 50 {
		t.Errorf("Box y extent [%v, %v], want [10, 50]", box.Bottom(), box.Top())
	}
}

func TestDestroyNonPlayerKeepsPlayer(t *testing.T) {
	w := NewWorld(800, 600, -500, 1)
	player := w.SpawnPlayer(core.Vec2{X: 0, Y: 25}, core.Vec2{X: 15, Y: 15})
	enemy := w.SpawnEnemy(core.Vec2{X: 100, Y: 25}, core.Vec2{X: 15, Y: 15}, 50)

	w.Destroy(enemy)
	if w.PlayerID != player {
		t.Errorf("Destroying an enemy cleared PlayerID: %d", w.PlayerID)
	}
	if w.EnemyCount() != 0 {
		t.Errorf("EnemyCount = %d after destroy, want 0", w.EnemyCount())
	}
}
