package factory

import (
	"github.com/automoto/boardcam/archetypes"
	"github.com/automoto/boardcam/components"
	"github.com/automoto/boardcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// markerExtent is the clickable square around a marker point, world units.
const markerExtent = 24

func CreateMarker(ecs *ecs.ECS, name string, x, y float64) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)

	obj := resolv.NewObject(x-markerExtent/2, y-markerExtent/2, markerExtent, markerExtent, tags.ResolvMarker)
	obj.SetShape(resolv.NewRectangle(0, 0, markerExtent, markerExtent))
	obj.Data = marker

	components.Marker.Set(marker, &components.MarkerData{Name: name})
	components.Object.SetValue(marker, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return marker
}
