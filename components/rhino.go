package components

import "github.com/yohamta/donburi"

// RhinoData tracks the rhino chasing the skier down the slope.
type RhinoData struct {
	Target    *donburi.Entry // the skier being chased
	HasCaught bool
}

var Rhino = donburi.NewComponentType[RhinoData]()
