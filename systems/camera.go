package systems

import (
	"math"

	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, kept inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if p, ok := playerEntry(e); ok {
		obj := components.Object.Get(p)
		targetX, targetY := clampToLevel(e, obj.X+obj.W/2, obj.Y+obj.H/2)
		camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
	}

	updateScreenShake(cameraEntry, camera)
}

// SnapCamera centers the camera on the player without easing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	p, ok := playerEntry(e)
	if !ok {
		return
	}
	obj := components.Object.Get(p)
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X, camera.Position.Y = clampToLevel(e, obj.X+obj.W/2, obj.Y+obj.H/2)
}

// clampToLevel keeps a camera center where the level always fills the screen.
func clampToLevel(e *ecs.ECS, x, y float64) (float64, float64) {
	level := currentLevel(e)
	if level == nil {
		return x, y
	}
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	minX, maxX := screenWidth/2, float64(level.Width)-screenWidth/2
	minY, maxY := screenHeight/2, float64(level.Height)-screenHeight/2
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return math.Max(minX, math.Min(maxX, x)), math.Max(minY, math.Min(maxY, y))
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never cuts a
// stronger one short.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
