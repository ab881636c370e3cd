package components

import "github.com/yohamta/donburi"

// ObstacleData identifies a placed obstacle. Group decides what a skier
// hit does; ImageName selects the sprite and its collision bounds.
type ObstacleData struct {
	Category  string
	Group     string
	ImageName string
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
