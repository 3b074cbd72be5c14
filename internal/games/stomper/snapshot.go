package stomper

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
	StatePaused   GameStateType = "paused"
)

// EntitySnapshot captures one moving entity for determinism testing.
type EntitySnapshot struct {
	ID EntityID
	X  float64
	Y  float64
	VX float64
	VY float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "campaign" or "endless"
	Score      int
	EnemyCount int
	Player     EntitySnapshot
	Enemies    []EntitySnapshot
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.lost:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	w := g.world

	var player EntitySnapshot
	if id := w.PlayerID; id != 0 {
		player = entitySnapshot(w, id)
	}

	enemies := make([]EntitySnapshot, 0, w.EnemyCount())
	for _, id := range w.Enemies() {
		enemies = append(enemies, entitySnapshot(w, id))
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      w.Score,
		EnemyCount: w.EnemyCount(),
		Player:     player,
		Enemies:    enemies,
		State:      state,
	}
}

func entitySnapshot(w *World, id EntityID) EntitySnapshot {
	pos := w.Position[id]
	vel := w.Velocity[id]
	return EntitySnapshot{ID: id, X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y}
}
