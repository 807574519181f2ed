// Package boarddata provides TMX board parsing for the demo. It has no
// dependencies on ebitengine, donburi, or resolv — pure data only.
package boarddata

// BoardData holds everything parsed from a TMX board file: the board extent
// in pixels, the blocked cells, and named marker points.
type BoardData struct {
	Blocked []BlockedRect
	Markers []Marker

	BoardWidth  int
	BoardHeight int
	TileWidth   int
	TileHeight  int
}

// BlockedRect is a solid cell the camera demo renders and hit-tests.
type BlockedRect struct {
	X, Y, W, H float64
}

// Marker is a named point of interest on the board.
type Marker struct {
	Name string
	X, Y float64
}
