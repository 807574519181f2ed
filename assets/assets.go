// Package assets embeds the board files shipped with the demo.
package assets

import "embed"

//go:embed boards
var FS embed.FS

// DefaultBoard is the TMX board loaded when no other path is configured.
const DefaultBoard = "boards/board.tmx"
