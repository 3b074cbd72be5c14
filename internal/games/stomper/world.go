// Package stomper implements a side-view platformer: one player on a
// ground strip, patrolling enemies that can be stomped from above, and
// static obstacles. The player wraps around the screen edges; the run is
// won when every enemy is gone and lost on side contact.
package stomper

import (
	"math/rand"
	"sort"

	"github.com/arcadelab/stomper/internal/core"
)

// EntityID is a unique identifier for an entity (never recycled).
type EntityID uint64

// GroundData describes the ground strip. TopY is the reference for ground
// contact of every other entity.
type GroundData struct {
	CenterY float64
	TopY    float64
	Height  float64
}

// World is the entity store: homogeneous component maps keyed by EntityID,
// tag sets per entity kind, and singleton resources. Stages take disjoint
// views by construction, because each kind lives in its own tag set and a
// stage only mutates the components of the kinds it owns.
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]core.Vec2
	Velocity map[EntityID]core.Vec2
	Half     map[EntityID]core.Vec2 // Half-extents, fixed at creation
	Facing   map[EntityID]int       // -1 or +1, player only

	// Tags
	IsPlayer   map[EntityID]struct{}
	IsEnemy    map[EntityID]struct{}
	IsObstacle map[EntityID]struct{}

	// Singleton resources
	PlayerID EntityID // 0 when no player is alive
	Gravity  float64
	Score    int
	Ground   GroundData
	Width    float64 // World width in units
	Height   float64 // World height in units

	rng *rand.Rand
}

// NewWorld creates an empty world with the given dimensions, gravity and
// RNG seed. Randomness is confined to spawning; the simulation itself is
// deterministic given inputs and dt.
func NewWorld(width, height, gravity float64, seed int64) *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]core.Vec2),
		Velocity:   make(map[EntityID]core.Vec2),
		Half:       make(map[EntityID]core.Vec2),
		Facing:     make(map[EntityID]int),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		IsObstacle: make(map[EntityID]struct{}),
		Gravity:    gravity,
		Width:      width,
		Height:     height,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// NewEntity returns a new unique entity ID.
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Destroy removes all components and tags for an entity.
func (w *World) Destroy(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Half, id)
	delete(w.Facing, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsObstacle, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists reports whether the entity is alive (has a position).
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// SpawnPlayer creates the player entity at the given position, facing right.
func (w *World) SpawnPlayer(pos, half core.Vec2) EntityID {
	id := w.NewEntity()
	w.Position[id] = pos
	w.Velocity[id] = core.Vec2{}
	w.Half[id] = half
	w.Facing[id] = 1
	w.IsPlayer[id] = struct{}{}
	w.PlayerID = id
	return id
}

// SpawnEnemy creates a patrolling enemy with the given horizontal velocity.
func (w *World) SpawnEnemy(pos, half core.Vec2, vx float64) EntityID {
	id := w.NewEntity()
	w.Position[id] = pos
	w.Velocity[id] = core.Vec2{X: vx}
	w.Half[id] = half
	w.IsEnemy[id] = struct{}{}
	return id
}

// SpawnObstacle creates a static obstacle.
func (w *World) SpawnObstacle(pos, half core.Vec2) EntityID {
	id := w.NewEntity()
	w.Position[id] = pos
	w.Half[id] = half
	w.IsObstacle[id] = struct{}{}
	return id
}

// Box returns the collision box of an entity.
func (w *World) Box(id EntityID) core.Box {
	return core.NewBox(w.Position[id], w.Half[id])
}

// Enemies returns the IDs of all live enemies in ascending order.
// Sorted iteration keeps runs reproducible for a fixed seed.
func (w *World) Enemies() []EntityID {
	return sortedIDs(w.IsEnemy)
}

// Obstacles returns the IDs of all obstacles in ascending order.
func (w *World) Obstacles() []EntityID {
	return sortedIDs(w.IsObstacle)
}

// EnemyCount returns the number of live enemies.
func (w *World) EnemyCount() int {
	return len(w.IsEnemy)
}

// Rand exposes the world RNG. Spawning is its only consumer.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

func sortedIDs(tags map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(tags))
	for id := range tags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
