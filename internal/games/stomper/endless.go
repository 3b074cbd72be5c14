package stomper

import "github.com/arcadelab/stomper/internal/registry"

// Endless mode: every stomped enemy is replaced after a delay, the run
// only ends on a side hit, and difficulty scales enemy speed and respawn
// pace with the score.

// NewEndless creates an endless-mode game instance.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// queueRespawn schedules a replacement enemy. The delay is sampled at
// stomp time, so a rising difficulty level shortens later respawns but
// never retroactively shortens queued ones.
func (g *Game) queueRespawn() {
	delay := g.cfg.Enemies.RespawnDelayTicks
	if g.difficulty.IsEnabled() {
		delay = g.difficulty.RespawnDelay(delay, g.world.Score, int(g.tick))
	}
	g.respawns = append(g.respawns, delay)
}

// processRespawns counts down pending respawns and spawns an enemy for
// each expired one. A spawn that cannot find a clear spot stays queued
// and retries next tick.
func (g *Game) processRespawns() {
	if len(g.respawns) == 0 {
		return
	}

	remaining := g.respawns[:0]
	for _, ticks := range g.respawns {
		ticks--
		if ticks > 0 {
			remaining = append(remaining, ticks)
			continue
		}

		speed := g.cfg.Enemies.MinSpeed +
			g.world.rng.Float64()*(g.cfg.Enemies.MaxSpeed-g.cfg.Enemies.MinSpeed)
		if g.difficulty.IsEnabled() {
			speed = g.difficulty.Speed(speed, g.world.Score, int(g.tick))
		}
		if g.world.spawnEnemy(&g.cfg, speed) == 0 {
			remaining = append(remaining, 1)
		}
	}
	g.respawns = remaining
}

// Register the endless mode with the registry.
func init() {
	registry.Register("stomper_endless", func() registry.Game {
		return NewEndless()
	})
}
