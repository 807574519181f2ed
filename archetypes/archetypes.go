package archetypes

import (
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/automoto/boardcam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	Board = newArchetype(
		components.Board,
	)
	Space = newArchetype(
		components.Space,
	)
	Blocked = newArchetype(
		tags.Blocked,
		components.Object,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
		components.Object,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
