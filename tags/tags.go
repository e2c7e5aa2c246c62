package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Lava           = donburi.NewTag().SetName("Lava")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Projectile     = donburi.NewTag().SetName("Projectile")
	Collectible    = donburi.NewTag().SetName("Collectible")
	PowerUp        = donburi.NewTag().SetName("PowerUp")
	Ladder         = donburi.NewTag().SetName("Ladder")
	Lever          = donburi.NewTag().SetName("Lever")
	Gate           = donburi.NewTag().SetName("Gate")
	Exit           = donburi.NewTag().SetName("Exit")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvLava        = "lava"
	ResolvMoving      = "moving"
	ResolvProjectile  = "Projectile"
	ResolvCollectible = "collectible"
	ResolvPowerUp     = "powerup"
	ResolvLever       = "lever"
	ResolvGate        = "gate"
	ResolvExit        = "exit"
)
