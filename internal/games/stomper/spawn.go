package stomper

import (
	"github.com/arcadelab/stomper/internal/config"
	"github.com/arcadelab/stomper/internal/core"
)

// populate fills an empty world: ground data, the player, a random number
// of obstacles, then a random number of enemies. Obstacles go first so
// enemy placement can avoid them; an enemy whose placement cannot be
// resolved within the attempt cap is silently dropped, so the final enemy
// count may be below the sampled one.
func (w *World) populate(cfg *config.StomperConfig) {
	w.Ground = GroundData{
		CenterY: 0,
		TopY:    cfg.World.GroundHeight / 2,
		Height:  cfg.World.GroundHeight,
	}

	playerHalf := core.Vec2{X: cfg.Player.Width / 2, Y: cfg.Player.Height / 2}
	w.SpawnPlayer(core.Vec2{X: 0, Y: w.Ground.TopY + playerHalf.Y}, playerHalf)

	w.spawnObstacles(cfg)
	w.spawnEnemies(cfg)
}

func (w *World) spawnObstacles(cfg *config.StomperConfig) {
	half := core.Vec2{X: cfg.Obstacles.Width / 2, Y: cfg.Obstacles.Height / 2}
	y := w.Ground.TopY + half.Y

	count := cfg.Obstacles.MinCount
	if spread := cfg.Obstacles.MaxCount - cfg.Obstacles.MinCount; spread > 0 {
		count += w.rng.Intn(spread + 1)
	}

	for i := 0; i < count; i++ {
		x := w.randomX()
		w.SpawnObstacle(core.Vec2{X: x, Y: y}, half)
	}
}

func (w *World) spawnEnemies(cfg *config.StomperConfig) {
	count := cfg.Enemies.MinCount
	if spread := cfg.Enemies.MaxCount - cfg.Enemies.MinCount; spread > 0 {
		count += w.rng.Intn(spread + 1)
	}

	for i := 0; i < count; i++ {
		speed := cfg.Enemies.MinSpeed + w.rng.Float64()*(cfg.Enemies.MaxSpeed-cfg.Enemies.MinSpeed)
		w.spawnEnemy(cfg, speed)
	}
}

// spawnEnemy places one enemy at a random ground position clear of all
// obstacles, moving at the given speed with a fair-coin direction.
// Returns 0 if placement was abandoned.
func (w *World) spawnEnemy(cfg *config.StomperConfig, speed float64) EntityID {
	half := core.Vec2{X: cfg.Enemies.Width / 2, Y: cfg.Enemies.Height / 2}
	y := w.Ground.TopY + half.Y

	attempts := cfg.Enemies.SpawnAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		pos := core.Vec2{X: w.randomX(), Y: y}
		if w.overlapsAnyObstacle(core.NewBox(pos, half)) {
			continue
		}
		dir := 1.0
		if w.rng.Intn(2) == 0 {
			dir = -1.0
		}
		return w.SpawnEnemy(pos, half, dir*speed)
	}
	return 0
}

func (w *World) overlapsAnyObstacle(b core.Box) bool {
	for _, id := range w.Obstacles() {
		if b.Overlaps(w.Box(id)) {
			return true
		}
	}
	return false
}

// randomX samples a uniform x in [-W/2, W/2).
func (w *World) randomX() float64 {
	return -w.Width/2 + w.rng.Float64()*w.Width
}
