package components

import (
	cfg "github.com/omazim/snowrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type SkierData struct {
	Position  math.Vec2 // sprite center in world coordinates
	Direction cfg.DirectionID
	Speed     float64
	ImageName string
	ArcOffset float64 // vertical sprite lift while airborne, driven by the jump tween
}

var Skier = donburi.NewComponentType[SkierData]()
