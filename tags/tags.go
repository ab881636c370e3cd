package tags

import "github.com/yohamta/donburi"

var (
	Skier    = donburi.NewTag().SetName("Skier")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Rhino    = donburi.NewTag().SetName("Rhino")
	Course   = donburi.NewTag().SetName("Course")
)

// Resolv tags for physics collision
const (
	ResolvSkier = "Skier"
	ResolvRamp  = "ramp"
	ResolvRock  = "rock"
	ResolvTree  = "tree"
)
