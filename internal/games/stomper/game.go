package stomper

import (
	"github.com/arcadelab/stomper/internal/config"
	"github.com/arcadelab/stomper/internal/core"
	"github.com/arcadelab/stomper/internal/registry"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerHead   = '◆'
	EnemyBody    = '▓'
	ObstacleBody = '█'
	GroundChar   = '═'
)

// Mode selects between the finite campaign run and endless waves.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game implements the platformer. It drives a fixed stage pipeline over
// the entity store each tick.
type Game struct {
	mode       Mode
	cfg        config.StomperConfig
	runtime    core.RuntimeConfig
	world      *World
	hud        *HUD
	difficulty *config.DifficultyManager

	tick   uint64
	dt     float64 // Seconds per tick, derived from the runtime tick rate
	won    bool
	lost   bool
	paused bool

	// Pending enemy respawns, in ticks remaining (endless mode).
	respawns []int
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a campaign-mode game instance.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "stomper_endless"
	}
	return "stomper"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Stomper (Endless)"
	}
	return "Stomper"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadStomper(configPath)
	if err != nil {
		cfg = config.DefaultStomperConfig()
	}
	config.ApplyStomperPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.world = NewWorld(cfg.World.Width, cfg.World.Height, cfg.Physics.Gravity, runtime.Seed)
	g.world.populate(&cfg)

	g.hud = NewHUD()
	g.tick = 0
	g.won = false
	g.lost = false
	g.paused = false
	g.respawns = nil
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.won || g.lost {
		return core.StepResult{State: g.State()}
	}

	if in.JustPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.Advance(in, g.dt)
	return core.StepResult{State: g.State()}
}

// Advance runs one frame of the stage pipeline with an explicit time step.
// A degenerate dt (zero or negative) skips the kinematic stages but still
// runs collision resolution and the end check, so pending end conditions
// fire.
func (g *Game) Advance(in core.InputFrame, dt float64) {
	g.tick++

	if dt > 0 {
		g.stageInput(in)
		g.stageGravity(dt)
		g.stageIntegrate(dt)
		g.stageWrap()
	}

	g.stageGroundClamp()
	g.stageEnemyObstacle()
	g.stagePlayerEnemy()
	g.stagePlayerObstacle()

	if g.mode == ModeEndless {
		g.processRespawns()
	}

	g.hud.UpdateScore(g.world.Score)
	g.stageEndCheck()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.won || g.lost,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// World exposes the entity store for tests.
func (g *Game) World() *World {
	return g.world
}

// HUD exposes the text handles for the renderer and tests.
func (g *Game) HUD() *HUD {
	return g.hud
}

//
// Rendering
//

// Render draws the current game state to the screen. World units are
// projected onto the cell grid with a vertical flip (world y grows up,
// rows grow down).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := g.world
	sx := float64(dst.Width()) / w.Width
	sy := float64(dst.Height()) / w.Height

	col := func(x float64) int { return int((x + w.Width/2) * sx) }
	row := func(y float64) int { return int((w.Height/2 - y) * sy) }

	fillBox := func(b core.Box, r rune, c core.Color) {
		x0, x1 := col(b.Left()), col(b.Right())
		y0, y1 := row(b.Top()), row(b.Bottom())
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetCell(x, y, r, c)
			}
		}
	}

	// Ground strip spans the full width.
	ground := core.NewBox(
		core.Vec2{X: 0, Y: w.Ground.CenterY},
		core.Vec2{X: w.Width / 2, Y: w.Ground.Height / 2},
	)
	fillBox(ground, GroundChar, core.ColorGreen)

	for _, id := range w.Obstacles() {
		fillBox(w.Box(id), ObstacleBody, core.ColorGray)
	}
	for _, id := range w.Enemies() {
		fillBox(w.Box(id), EnemyBody, core.ColorBrightRed)
	}

	if id := w.PlayerID; id != 0 {
		box := w.Box(id)
		fillBox(box, PlayerBody, core.ColorBrightCyan)
		// Head marker leans into the facing direction.
		headX := col(w.Position[id].X)
		if w.Facing[id] > 0 {
			headX = core.Max(headX, col(box.Right())-1)
		} else {
			headX = core.Min(headX, col(box.Left()))
		}
		dst.SetCell(headX, row(box.Top()), PlayerHead, core.ColorBrightWhite)
	}

	// HUD: score in the top-right corner.
	scoreText := " " + g.hud.Score.Text + " "
	dst.DrawTextColored(dst.Width()-len(scoreText)-1, 0, scoreText, g.hud.Score.Color)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}

	for _, b := range g.hud.Banners {
		g.drawCenteredMessage(dst, b.Text, "Press R to restart", b.Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, c)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the campaign mode with the registry.
func init() {
	registry.Register("stomper", func() registry.Game {
		return New()
	})
}
