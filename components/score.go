package components

import "github.com/yohamta/donburi"

// ScoreData tracks the run distance and the persisted best.
type ScoreData struct {
	StartY     float64 // skier Y at run start
	DistanceM  float64 // meters descended this run
	BestM      float64 // best distance loaded from disk
	BestBeaten bool
}

var Score = donburi.NewComponentType[ScoreData]()
