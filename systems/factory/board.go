package factory

import (
	"github.com/automoto/boardcam/archetypes"
	"github.com/automoto/boardcam/boarddata"
	"github.com/automoto/boardcam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBoard(ecs *ecs.ECS, data *boarddata.BoardData) *donburi.Entry {
	board := archetypes.Board.Spawn(ecs)
	components.Board.Set(board, &components.BoardComponentData{Data: data})
	return board
}
