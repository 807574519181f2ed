package factory

import (
	"github.com/automoto/boardcam/archetypes"
	"github.com/automoto/boardcam/components"
	"github.com/automoto/boardcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBlocked(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	blocked := archetypes.Blocked.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBlocked)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = blocked

	components.Object.SetValue(blocked, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return blocked
}
