package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// JumpData tracks progress through the airborne pose sequence.
// Stage advances when the wall clock passes NextStageAt.
type JumpData struct {
	Stage       int
	NextStageAt time.Time
}

var Jump = donburi.NewComponentType[JumpData]()
