package stomper

import "github.com/arcadelab/stomper/internal/core"

// The per-frame pipeline runs these stages in a fixed, load-bearing order:
// input, gravity, integration, wrap, then the four collision stages, then
// HUD and the end check. See Game.Advance.

// stageInput translates the input frame into player velocity, facing, and
// a one-shot jump. Movement is level-triggered; the jump is edge-triggered
// and only fires while the player is in ground contact.
func (g *Game) stageInput(in core.InputFrame) {
	w := g.world
	id := w.PlayerID
	if id == 0 {
		return
	}

	dir := 0.0
	if in.IsHeld(core.ActionRight) {
		dir += 1
	}
	if in.IsHeld(core.ActionLeft) {
		dir -= 1
	}

	vel := w.Velocity[id]
	vel.X = dir * g.cfg.Physics.PlayerSpeed

	if dir > 0 {
		w.Facing[id] = 1
	} else if dir < 0 {
		w.Facing[id] = -1
	}

	// Ground-contact predicate: the clamp stage snaps to exact contact
	// every frame, so no epsilon is needed here.
	if in.JustPressed(core.ActionJump) && w.Position[id].Y <= w.Ground.TopY+w.Half[id].Y {
		vel.Y = g.cfg.Physics.JumpVelocity
	}

	w.Velocity[id] = vel
}

// stageGravity accelerates the player downward. Enemies are unaffected:
// they ride the ground by construction.
func (g *Game) stageGravity(dt float64) {
	w := g.world
	id := w.PlayerID
	if id == 0 {
		return
	}
	vel := w.Velocity[id]
	vel.Y += w.Gravity * dt
	w.Velocity[id] = vel
}

// stageIntegrate advances every velocity-bearing entity by explicit Euler.
func (g *Game) stageIntegrate(dt float64) {
	w := g.world
	for id, vel := range w.Velocity {
		w.Position[id] = w.Position[id].Add(vel.Scale(dt))
	}
}

// stageWrap re-projects the player and each enemy across the screen edges.
// The wrap is a translation; velocity is unchanged.
func (g *Game) stageWrap() {
	w := g.world
	halfW := w.Width / 2

	wrap := func(id EntityID) {
		pos := w.Position[id]
		if pos.X > halfW {
			pos.X = -halfW
		} else if pos.X < -halfW {
			pos.X = halfW
		}
		w.Position[id] = pos
	}

	if w.PlayerID != 0 {
		wrap(w.PlayerID)
	}
	for _, id := range w.Enemies() {
		wrap(id)
	}
}
