package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// RhinoAnimations maps each rhino state to its animation definition.
// Frames index into RhinoFrameImages for the same state.
var RhinoAnimations = map[StateID]AnimationDef{
	RhinoRun:       {First: 0, Last: 1, Step: 1, Speed: 8},
	RhinoEat:       {First: 0, Last: 3, Step: 1, Speed: 12},
	RhinoCelebrate: {First: 0, Last: 1, Step: 1, Speed: 10},
}

// RhinoFrameImages maps each rhino state to its frame image names in order.
var RhinoFrameImages = map[StateID][]string{
	RhinoRun:       {"rhino_run_1", "rhino_run_2"},
	RhinoEat:       {"rhino_eat_1", "rhino_eat_2", "rhino_eat_3", "rhino_eat_4"},
	RhinoCelebrate: {"rhino_celebrate_1", "rhino_celebrate_2"},
}
