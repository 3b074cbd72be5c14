package stomper

import (
	"testing"

	"github.com/arcadelab/stomper/internal/core"
)

// Ground top sits at y=10 in these tests, so a 30-unit entity rests at y=25.

func TestGroundClampSnapsAndZeroes(t *testing.T) {
	g := newTestGame(ModeCampaign)
	player := g.world.SpawnPlayer(core.Vec2{X: 0, Y: 18}, restingHalf())
	g.world.Velocity[player] = core.Vec2{X: 50, Y: -120}

	g.stageGroundClamp()

	if pos := g.world.Position[player]; pos.Y != 25 {
		t.Errorf("Player y = %v, want 25", pos.Y)
	}
	vel := g.world.Velocity[player]
	if vel.Y != 0 {
		t.Errorf("Player vy = %v, want 0", vel.Y)
	}
	if vel.X != 50 {
		t.Errorf("Clamp changed vx: %v, want 50", vel.X)
	}

	// Idempotent
	g.stageGroundClamp()
	if pos := g.world.Position[player]; pos.Y != 25 {
		t.Errorf("Second clamp moved the player: y=%v", pos.Y)
	}
}

func TestGroundClampLeavesAirborne(t *testing.T) {
	g := newTestGame(ModeCampaign)
	player := g.world.SpawnPlayer(core.Vec2{X: 0, Y: 100}, restingHalf())
	g.world.Velocity[player] = core.Vec2{Y: -80}

	g.stageGroundClamp()

	if pos := g.world.Position[player]; pos.Y != 100 {
		t.Errorf("Clamp moved an airborne player: y=%v", pos.Y)
	}
	if vel := g.world.Velocity[player]; vel.Y != -80 {
		t.Errorf("Clamp changed airborne vy: %v", vel.Y)
	}
}

func TestGroundClampPreservesUpwardVelocity(t *testing.T) {
	g := newTestGame(ModeCampaign)
	player := g.world.SpawnPlayer(core.Vec2{X: 0, Y: 20}, restingHalf())
	g.world.Velocity[player] = core.Vec2{Y: 300}

	g.stageGroundClamp()

	if vel := g.world.Velocity[player]; vel.Y != 300 {
		t.Errorf("Clamp killed a jump in progress: vy=%v", vel.Y)
	}
}

func TestStompWindowBoundary(t *testing.T) {
	// Enemy rests at y=25: top=40, stomp threshold 35 with window 5.
	tests := []struct {
		name    string
		playerY float64
		stomp   bool
	}{
		{"well above threshold", 52, true},
		{"exactly at threshold", 50, true}, // Ties resolve as stomps
		{"just below threshold", 49.9, false},
		{"level contact", 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(ModeCampaign)
			player := g.world.SpawnPlayer(core.Vec2{X: 0, Y: tt.playerY}, restingHalf())
			g.world.SpawnEnemy(core.Vec2{X: 0, Y: 25}, restingHalf(), 0)

			g.stagePlayerEnemy()

			if tt.stomp {
				if g.world.EnemyCount() != 0 {
					t.Error("Expected a stomp")
				}
				if !g.world.Exists(player) {
					t.Error("Player destroyed on a stomp")
				}
				if g.world.Score != 100 {
					t.Errorf("Score = %d, want 100", g.world.Score)
				}
			} else {
				if g.world.Exists(player) {
					t.Error("Expected a side hit")
				}
				if g.world.EnemyCount() != 1 {
					t.Error("Side hit destroyed the enemy")
				}
				if g.world.Score != 0 {
					t.Errorf("Score = %d, want 0", g.world.Score)
				}
			}
		})
	}
}

func TestTouchingIsNotContact(t *testing.T) {
	g := newTestGame(ModeCampaign)
	// Edges exactly touching: |dx| == sum of half widths
	player := g.world.SpawnPlayer(core.Vec2{X: 30, Y: 25}, restingHalf())
	g.world.SpawnEnemy(core.Vec2{X: 0, Y: 25}, restingHalf(), 0)

	g.stagePlayerEnemy()

	if !g.world.Exists(player) || g.world.EnemyCount() != 1 {
		t.Error("Touching edges must not register as contact")
	}
}

func TestPlayerObstaclePush(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		wantX   float64
	}{
		{"pushed left", 100, 75},  // Obstacle left edge 90, player half 15
		{"pushed right", 120, 145}, // Obstacle right edge 130
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(ModeCampaign)
			player := g.world.SpawnPlayer(core.Vec2{X: tt.playerX, Y: 30}, restingHalf())
			g.world.Velocity[player] = core.Vec2{X: 200}
			g.world.SpawnObstacle(core.Vec2{X: 110, Y: 30}, core.Vec2{X: 20, Y: 20})

			g.stagePlayerObstacle()

			pos := g.world.Position[player]
			if pos.X != tt.wantX {
				t.Errorf("Player x = %v, want %v", pos.X, tt.wantX)
			}
			if pos.Y != 30 {
				t.Errorf("Level contact moved the player vertically: y=%v", pos.Y)
			}
			if vx := g.world.Velocity[player].X; vx != 0 {
				t.Errorf("Player vx = %v, want 0", vx)
			}
		})
	}
}

func TestPlayerObstacleTopLanding(t *testing.T) {
	g := newTestGame(ModeCampaign)
	// Player center above the obstacle center, slightly sunk in
	player := g.world.SpawnPlayer(core.Vec2{X: 112, Y: 60}, restingHalf())
	g.world.Velocity[player] = core.Vec2{Y: -150}
	g.world.SpawnObstacle(core.Vec2{X: 110, Y: 30}, core.Vec2{X: 20, Y: 20})

	g.stagePlayerObstacle()

	pos := g.world.Position[player]
	if pos.Y != 65 { // Obstacle top 50 plus player half 15
		t.Errorf("Player y = %v, want 65", pos.Y)
	}
}

func TestPlayerObstacleNoOverlapNoPush(t *testing.T) {
	g := newTestGame(ModeCampaign)
	player := g.world.SpawnPlayer(core.Vec2{X: 75, Y: 30}, restingHalf())
	g.world.SpawnObstacle(core.Vec2{X: 110, Y: 30}, core.Vec2{X: 20, Y: 20})

	g.stagePlayerObstacle()

	if pos := g.world.Position[player]; pos.X != 75 {
		t.Errorf("Touching obstacle pushed the player: x=%v", pos.X)
	}
}

func TestEnemyObstacleReversal(t *testing.T) {
	g := newTestGame(ModeCampaign)
	enemy := g.world.SpawnEnemy(core.Vec2{X: 100, Y: 25}, restingHalf(), 80)
	g.world.SpawnObstacle(core.Vec2{X: 110, Y: 30}, core.Vec2{X: 20, Y: 20})

	posBefore := g.world.Position[enemy]
	g.stageEnemyObstacle()

	if vx := g.world.Velocity[enemy].X; vx != -80 {
		t.Errorf("Enemy vx = %v, want -80", vx)
	}
	if g.world.Position[enemy] != posBefore {
		t.Error("Reversal moved the enemy")
	}
}

func TestEnemyTwoObstaclesReversesTwice(t *testing.T) {
	g := newTestGame(ModeCampaign)
	enemy := g.world.SpawnEnemy(core.Vec2{X: 110, Y: 25}, restingHalf(), 80)
	g.world.SpawnObstacle(core.Vec2{X: 100, Y: 30}, core.Vec2{X: 20, Y: 20})
	g.world.SpawnObstacle(core.Vec2{X: 120, Y: 30}, core.Vec2{X: 20, Y: 20})

	g.stageEnemyObstacle()

	// One reversal per overlapping obstacle: two cancel out
	if vx := g.world.Velocity[enemy].X; vx != 80 {
		t.Errorf("Enemy vx = %v, want 80 after a double reversal", vx)
	}
}

func TestEndCheckWinTakesPrecedence(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.world.SpawnPlayer(core.Vec2{X: 0, Y: 25}, restingHalf())
	g.lost = true

	g.stageEndCheck()

	if !g.won {
		t.Error("Empty enemy set should win")
	}
	if g.lost {
		t.Error("Win must override a loss flagged in the same frame")
	}
}

func TestEndCheckLossWithoutPlayer(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.world.SpawnEnemy(core.Vec2{X: 0, Y: 25}, restingHalf(), 50)

	g.stageEndCheck()

	if !g.lost || g.won {
		t.Errorf("won=%v lost=%v, want a loss with no player alive", g.won, g.lost)
	}
}
