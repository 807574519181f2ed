package components

import (
	"github.com/automoto/boardcam/boarddata"
	"github.com/yohamta/donburi"
)

type BoardComponentData struct {
	Data *boarddata.BoardData
}

var Board = donburi.NewComponentType[BoardComponentData]()
