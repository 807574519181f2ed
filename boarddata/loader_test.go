package boarddata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="4" columns="2">
  <image source="tiles.png" width="64" height="64"/>
 </tileset>
 <layer id="1" name="blocked" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="markers">
  <object id="1" name="origin" x="64" y="48"/>
  <object id="2" name="corner" x="16" y="16"/>
 </objectgroup>
</map>
`

func TestLoadBoard(t *testing.T) {
	fsys := fstest.MapFS{
		"boards/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	data, err := LoadBoard(fsys, "boards/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 128, data.BoardWidth)
	assert.Equal(t, 96, data.BoardHeight)
	assert.Equal(t, 32, data.TileWidth)
	assert.Equal(t, 32, data.TileHeight)

	// Border of a 4x3 grid: all cells except the two interior ones.
	assert.Len(t, data.Blocked, 10)
	assert.Equal(t, BlockedRect{X: 0, Y: 0, W: 32, H: 32}, data.Blocked[0])

	require.Len(t, data.Markers, 2)
	assert.Equal(t, "origin", data.Markers[0].Name)
	assert.Equal(t, 64.0, data.Markers[0].X)
	assert.Equal(t, 48.0, data.Markers[0].Y)
}

func TestLoadBoardMissingFile(t *testing.T) {
	_, err := LoadBoard(fstest.MapFS{}, "boards/none.tmx")
	assert.Error(t, err)
}
