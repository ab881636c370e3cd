package config

// StateID identifies a skier or rhino state for logic and image selection.
type StateID int

const (
	StateNone StateID = -1

	// Skier states
	Skiing StateID = iota
	Crashed
	Jumping
	Dead

	// Rhino states
	RhinoRun
	RhinoEat
	RhinoCelebrate
)

var stateNames = map[StateID]string{
	Skiing:         "skiing",
	Crashed:        "crashed",
	Jumping:        "jumping",
	Dead:           "dead",
	RhinoRun:       "rhino_run",
	RhinoEat:       "rhino_eat",
	RhinoCelebrate: "rhino_celebrate",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// DirectionID is the skier's facing, ordered left to right. Adjacent values
// differ by exactly one turn step.
type DirectionID int

const (
	DirFullLeft DirectionID = iota
	DirLeftDown
	DirDown
	DirRightDown
	DirFullRight
)

// DirectionImages maps a facing to the skier image shown while skiing.
var DirectionImages = map[DirectionID]string{
	DirFullLeft:  "skier_left",
	DirLeftDown:  "skier_left_down",
	DirDown:      "skier_down",
	DirRightDown: "skier_right_down",
	DirFullRight: "skier_right",
}

// JumpStageImages maps jump stage 0..4 to the airborne pose shown for it.
var JumpStageImages = [...]string{
	"skier_jump_1",
	"skier_jump_2",
	"skier_jump_3",
	"skier_jump_4",
	"skier_jump_5",
}

// CrashImage is shown while the skier is down.
const CrashImage = "skier_crash"
