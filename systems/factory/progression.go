package factory

import (
	"github.com/automoto/echoes-of-ember/archetypes"
	"github.com/automoto/echoes-of-ember/components"
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/automoto/echoes-of-ember/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLever spawns a locked lever. onActivate runs once, on the first activation.
func CreateLever(ecs *ecs.ECS, r gamemath.Rect, onActivate func()) *donburi.Entry {
	lever := archetypes.Lever.Spawn(ecs)
	addToSpace(ecs, newRectObject(lever, r.X, r.Y, r.W, r.H, tags.ResolvLever))
	components.Lever.SetValue(lever, components.LeverData{OnActivate: onActivate})
	return lever
}

// CreateGate spawns a closed gate that blocks like any solid. onOpen runs once,
// when the gate opens.
func CreateGate(ecs *ecs.ECS, r gamemath.Rect, onOpen func()) *donburi.Entry {
	gate := archetypes.Gate.Spawn(ecs)
	addToSpace(ecs, newRectObject(gate, r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvGate))
	components.Gate.SetValue(gate, components.GateData{Alpha: 1, OnOpen: onOpen})
	return gate
}

func CreateExit(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	addToSpace(ecs, newRectObject(exit, r.X, r.Y, r.W, r.H, tags.ResolvExit))
	components.Exit.SetValue(exit, components.ExitData{Scale: 1})
	return exit
}
