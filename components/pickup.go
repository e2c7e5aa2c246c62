package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Collected bool
	Phase     float64 // shimmer offset
}

var Collectible = donburi.NewComponentType[CollectibleData]()

// PowerUpData is a one-shot fire shield pickup.
type PowerUpData struct {
	Consumed bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
