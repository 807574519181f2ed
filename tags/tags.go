package tags

import "github.com/yohamta/donburi"

var (
	Blocked = donburi.NewTag().SetName("Blocked")
	Marker  = donburi.NewTag().SetName("Marker")
)

// Resolv tags for board collision objects
const (
	ResolvBlocked = "blocked"
	ResolvMarker  = "marker"
)
