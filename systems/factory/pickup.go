package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	collectibleSize = 20.0
	powerUpSize     = 24.0
)

// CreateCollectible spawns a crystal centered on (cx, cy).
func CreateCollectible(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	c := archetypes.Collectible.Spawn(ecs)
	s := collectibleSize
	addToSpace(ecs, newRectObject(c, cx-s/2, cy-s/2, s, s, tags.ResolvCollectible))
	components.Collectible.SetValue(c, components.CollectibleData{Phase: cx / 100})
	return c
}

// CreatePowerUp spawns a fire shield centered on (cx, cy).
func CreatePowerUp(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	p := archetypes.PowerUp.Spawn(ecs)
	s := powerUpSize
	addToSpace(ecs, newRectObject(p, cx-s/2, cy-s/2, s, s, tags.ResolvPowerUp))
	return p
}
