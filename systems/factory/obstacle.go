package factory

import (
	"log"

	"github.com/omazim/snowrush/archetypes"
	"github.com/omazim/snowrush/assets"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle places one obstacle of the given category with its top-left
// at (x, y). Unknown categories are dropped with a warning.
func CreateObstacle(ecs *ecs.ECS, x, y float64, category string) *donburi.Entry {
	catCfg, ok := cfg.Obstacle.Categories[category]
	if !ok {
		log.Printf("Warning: unknown obstacle category %q, skipping", category)
		return nil
	}

	w, h, ok := assets.ImageSize(catCfg.Image)
	if !ok {
		log.Printf("Warning: no image %q for obstacle category %q, skipping", catCfg.Image, category)
		return nil
	}

	obstacle := archetypes.Obstacle.Spawn(ecs)

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Category:  category,
		Group:     catCfg.Group,
		ImageName: catCfg.Image,
	})

	obj := resolv.NewObject(x, y, float64(w), float64(h))
	obj.AddTags(catCfg.Group)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	return obstacle
}
