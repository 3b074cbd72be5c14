package stomper

import "github.com/arcadelab/stomper/internal/core"

// Collision stages. Strict AABB overlap throughout: entities that merely
// touch do not collide.

// stageGroundClamp keeps the player on or above the ground strip.
// Idempotent: a second application in the same frame changes nothing.
func (g *Game) stageGroundClamp() {
	w := g.world
	id := w.PlayerID
	if id == 0 {
		return
	}

	pos := w.Position[id]
	half := w.Half[id]
	if pos.Y-half.Y < w.Ground.TopY {
		pos.Y = w.Ground.TopY + half.Y
		w.Position[id] = pos

		vel := w.Velocity[id]
		if vel.Y < 0 {
			vel.Y = 0
			w.Velocity[id] = vel
		}
	}
}

// stageEnemyObstacle reverses the patrol direction of every enemy that
// overlaps an obstacle. There is no depenetration: an enemy overlapping
// several obstacles reverses once per overlap.
func (g *Game) stageEnemyObstacle() {
	w := g.world
	obstacles := w.Obstacles()

	for _, enemy := range w.Enemies() {
		enemyBox := w.Box(enemy)
		for _, obstacle := range obstacles {
			if enemyBox.Overlaps(w.Box(obstacle)) {
				vel := w.Velocity[enemy]
				vel.X = -vel.X
				w.Velocity[enemy] = vel
			}
		}
	}
}

// stagePlayerEnemy resolves player-enemy contacts: a stomp (player bottom
// at or above the enemy top, within the stomp window) destroys the enemy
// and scores; anything else ends the run. Ties resolve as stomps. The
// threshold is evaluated against current positions.
func (g *Game) stagePlayerEnemy() {
	w := g.world
	player := w.PlayerID
	if player == 0 {
		return
	}

	playerBox := w.Box(player)
	for _, enemy := range w.Enemies() {
		enemyBox := w.Box(enemy)
		if !playerBox.Overlaps(enemyBox) {
			continue
		}

		if playerBox.Bottom() >= enemyBox.Top()-g.cfg.Scoring.StompWindow {
			w.Destroy(enemy)
			w.Score += g.cfg.Scoring.StompPoints
			if g.mode == ModeEndless {
				g.queueRespawn()
			}
			continue
		}

		// Side hit: the run is over.
		w.Destroy(player)
		g.lost = true
		g.hud.PostBanner("Game Over", core.ColorBrightRed)
		return
	}
}

// stagePlayerObstacle pushes the player out of every obstacle it overlaps:
// horizontal push away from the obstacle center with vx zeroed, plus an
// upward snap when the player center is above the obstacle center. The
// obstacle list is snapshotted before any player mutation so repositioning
// cannot invalidate the iteration.
func (g *Game) stagePlayerObstacle() {
	w := g.world
	player := w.PlayerID
	if player == 0 {
		return
	}

	type obstacleView struct {
		pos  core.Vec2
		half core.Vec2
	}
	obstacles := make([]obstacleView, 0, len(w.IsObstacle))
	for _, id := range w.Obstacles() {
		obstacles = append(obstacles, obstacleView{pos: w.Position[id], half: w.Half[id]})
	}

	half := w.Half[player]
	for _, o := range obstacles {
		pos := w.Position[player]
		if !core.NewBox(pos, half).Overlaps(core.NewBox(o.pos, o.half)) {
			continue
		}

		if pos.X < o.pos.X {
			pos.X = o.pos.X - o.half.X - half.X
		} else {
			pos.X = o.pos.X + o.half.X + half.X
		}
		vel := w.Velocity[player]
		vel.X = 0
		w.Velocity[player] = vel

		// Top landing only; no downward or sideways vertical correction.
		if pos.Y > o.pos.Y {
			pos.Y = o.pos.Y + o.half.Y + half.Y
		}
		w.Position[player] = pos
	}
}

// stageEndCheck detects the end of the run. The empty-enemy check runs
// first, so a win on the same frame as a side hit reports a win.
func (g *Game) stageEndCheck() {
	w := g.world

	if g.mode != ModeEndless && w.EnemyCount() == 0 {
		g.won = true
		g.lost = false
		g.hud.PostBanner("You Win!", core.ColorBrightGreen)
		return
	}
	if w.PlayerID == 0 {
		g.lost = true
		g.hud.PostBanner("Game Over", core.ColorBrightRed)
	}
}
