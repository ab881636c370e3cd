package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption
	DistanceM      float64
	BestM          float64
	BestBeaten     bool
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
