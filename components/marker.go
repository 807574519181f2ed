package components

import "github.com/yohamta/donburi"

type MarkerData struct {
	Name string
}

var Marker = donburi.NewComponentType[MarkerData]()
