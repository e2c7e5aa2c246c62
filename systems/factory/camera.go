package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera looking at (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.Vec2{X: x, Y: y}})
}
