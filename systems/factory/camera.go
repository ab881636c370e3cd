package factory

import (
	"github.com/omazim/snowrush/archetypes"
	"github.com/omazim/snowrush/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
