package components

import (
	"math/rand"

	"github.com/omazim/snowrush/assets"
	"github.com/yohamta/donburi"
)

// CourseData holds the loaded course layout and the procedural seeding state.
type CourseData struct {
	Course    *assets.Course
	Rand      *rand.Rand
	NextSeedY float64 // skier Y at which the next placement roll happens
}

var Course = donburi.NewComponentType[CourseData]()
