package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingIsFine(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
}

func TestLoadFileOverridesOnlyPresentFields(t *testing.T) {
	prevC, prevCamera, prevBoard := C, Camera, Board
	t.Cleanup(func() { C, Camera, Board = prevC, prevCamera, prevBoard })

	path := filepath.Join(t.TempDir(), "boardcam.yaml")
	doc := `
window:
  width: 1600
camera:
  zoom_min: 0.5
  line_clamp: true
  rotation_start: 0
  rotation_end: 3.14159
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	require.NoError(t, LoadFile(path))

	assert.Equal(t, 1600, C.Width)
	assert.Equal(t, prevC.Height, C.Height)
	assert.Equal(t, 0.5, Camera.ZoomMin)
	assert.Equal(t, prevCamera.ZoomMax, Camera.ZoomMax)
	assert.True(t, Camera.LineClamp)
	assert.True(t, Camera.RestrictRotation)
	assert.True(t, Camera.RotationPositive)
	assert.Equal(t, prevBoard.Path, Board.Path)
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))
	assert.Error(t, LoadFile(path))
}
