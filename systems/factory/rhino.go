package factory

import (
	"github.com/omazim/snowrush/archetypes"
	"github.com/omazim/snowrush/assets"
	"github.com/omazim/snowrush/assets/animations"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRhino(ecs *ecs.ECS, x, y float64, target *donburi.Entry) *donburi.Entry {
	rhino := archetypes.Rhino.Spawn(ecs)

	components.Rhino.SetValue(rhino, components.RhinoData{
		Target: target,
	})
	components.State.SetValue(rhino, components.StateData{
		CurrentState:  cfg.RhinoRun,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})

	animData := GenerateRhinoAnimations()
	animData.CurrentAnimation = animData.Animations[cfg.RhinoRun]
	components.Animation.Set(rhino, animData)

	w, h := rhinoExtents()
	obj := resolv.NewObject(x, y, w, h)
	obj.Data = rhino
	components.Object.SetValue(rhino, components.ObjectData{Object: obj})

	return rhino
}

// GenerateRhinoAnimations builds the config-driven animation set for the rhino.
func GenerateRhinoAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Frames:       cfg.RhinoFrameImages,
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CurrentState: cfg.RhinoRun,
	}

	for state, def := range cfg.RhinoAnimations {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		// The meal plays once and holds its last frame until the celebration.
		anim.FreezeOnComplete = state == cfg.RhinoEat
		animData.Animations[state] = anim
	}

	return animData
}

func rhinoExtents() (float64, float64) {
	frames := cfg.RhinoFrameImages[cfg.RhinoRun]
	if len(frames) > 0 {
		if w, h, ok := assets.ImageSize(frames[0]); ok {
			return float64(w), float64(h)
		}
	}
	return 80, 56
}
