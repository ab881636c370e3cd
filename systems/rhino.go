package systems

import (
	"math"

	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/systems/factory"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRhino spawns the chaser once the skier has descended far enough,
// then runs it down the slope until it catches them.
func UpdateRhino(e *ecs.ECS) {
	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}

	rhinoEntry, ok := tags.Rhino.First(e.World)
	if !ok {
		maybeSpawnRhino(e, skierEntry)
		return
	}

	state := components.State.Get(rhinoEntry)
	rhino := components.Rhino.Get(rhinoEntry)
	obj := components.Object.Get(rhinoEntry)
	anim := components.Animation.Get(rhinoEntry)

	switch state.CurrentState {
	case cfg.RhinoRun:
		chaseSkier(rhinoEntry, skierEntry, state, rhino, obj)
	case cfg.RhinoEat:
		// The meal ends when the eat animation has played through.
		if anim.CurrentAnimation != nil && anim.CurrentAnimation.Looped {
			state.PreviousState = state.CurrentState
			state.CurrentState = cfg.RhinoCelebrate
			state.StateTimer = 0
		}
	}

	anim.SetAnimation(state.CurrentState)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
	state.StateTimer++
}

func maybeSpawnRhino(e *ecs.ECS, skierEntry *donburi.Entry) {
	skier := components.Skier.Get(skierEntry)
	score := components.Score.Get(skierEntry)

	if skier.Position.Y-score.StartY < cfg.Rhino.AppearDistance {
		return
	}

	rhino := factory.CreateRhino(e, skier.Position.X, skier.Position.Y-cfg.Rhino.SpawnLead, skierEntry)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(components.Object.Get(rhino).Object)
	}
}

func chaseSkier(rhinoEntry, skierEntry *donburi.Entry, state *components.StateData, rhino *components.RhinoData, obj *components.ObjectData) {
	skier := components.Skier.Get(skierEntry)
	skierState := components.State.Get(skierEntry)

	// Nobody left to chase.
	if skierState.CurrentState == cfg.Dead && !rhino.HasCaught {
		return
	}

	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2
	dx := skier.Position.X - cx
	dy := skier.Position.Y - cy

	dist := math.Hypot(dx, dy)
	if dist > 0 {
		step := math.Min(cfg.Rhino.ChaseSpeed, dist)
		obj.X += dx / dist * step
		obj.Y += dy / dist * step
		obj.Update()
	}

	if caughtSkier(obj, skier) {
		rhino.HasCaught = true
		KillSkier(skierEntry)

		state.PreviousState = state.CurrentState
		state.CurrentState = cfg.RhinoEat
		state.StateTimer = 0
	}
}

// caughtSkier shrinks the rhino's rect by the catch padding before testing
// overlap against the skier's sprite rect, so grazing passes don't kill.
func caughtSkier(obj *components.ObjectData, skier *components.SkierData) bool {
	pad := cfg.Rhino.CatchPadding

	rx := obj.X + pad
	ry := obj.Y + pad
	rw := obj.W - pad*2
	rh := obj.H - pad*2
	if rw <= 0 || rh <= 0 {
		return false
	}

	sw, sh, ok := sizeOf(skier.ImageName)
	if !ok {
		return false
	}
	sx := skier.Position.X - float64(sw)/2
	sy := skier.Position.Y - float64(sh)/2

	return rx < sx+float64(sw) && sx < rx+rw && ry < sy+float64(sh) && sy < ry+rh
}
