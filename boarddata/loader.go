package boarddata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader looks for in a board TMX.
const (
	blockedLayerName  = "blocked"
	markerObjectGroup = "markers"
)

// LoadBoard parses a TMX file and returns the board data. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadBoard(fsys fs.FS, tmxPath string) (*BoardData, error) {
	boardMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &BoardData{
		BoardWidth:  boardMap.Width * boardMap.TileWidth,
		BoardHeight: boardMap.Height * boardMap.TileHeight,
		TileWidth:   boardMap.TileWidth,
		TileHeight:  boardMap.TileHeight,
	}

	tileW := float64(boardMap.TileWidth)
	tileH := float64(boardMap.TileHeight)
	for _, layer := range boardMap.Layers {
		if layer.Name != blockedLayerName {
			continue
		}
		for y := 0; y < boardMap.Height; y++ {
			for x := 0; x < boardMap.Width; x++ {
				tile := layer.Tiles[y*boardMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Blocked = append(data.Blocked, BlockedRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range boardMap.ObjectGroups {
		if og.Name != markerObjectGroup {
			continue
		}
		for _, o := range og.Objects {
			data.Markers = append(data.Markers, Marker{
				Name: o.Name,
				X:    o.X,
				Y:    o.Y,
			})
		}
	}

	return data, nil
}
