package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	VX float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
