package camera

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// Snapshot is a copy of the camera state taken at notification time. It is
// decoupled from the live camera so handlers cannot observe later mutations
// through it.
type Snapshot struct {
	Position  math2.Vec2
	ZoomLevel float64
	Rotation  float64
}

// PanHandler receives accepted position changes.
type PanHandler func(origin, destination math2.Vec2, state Snapshot)

// ZoomHandler receives accepted zoom level changes.
type ZoomHandler func(origin, destination float64, state Snapshot)

// RotateHandler receives accepted rotation changes.
type RotateHandler func(origin, destination float64, state Snapshot)

// OnPan registers a handler for accepted position changes. Handlers run
// synchronously inside the mutator call, in registration order. Rejected
// mutations never notify.
func (c *Camera) OnPan(h PanHandler) {
	c.panHandlers = append(c.panHandlers, h)
}

// OnZoom registers a handler for accepted zoom changes.
func (c *Camera) OnZoom(h ZoomHandler) {
	c.zoomHandlers = append(c.zoomHandlers, h)
}

// OnRotate registers a handler for accepted rotation changes.
func (c *Camera) OnRotate(h RotateHandler) {
	c.rotateHandlers = append(c.rotateHandlers, h)
}

func (c *Camera) snapshot() Snapshot {
	return Snapshot{
		Position:  c.position,
		ZoomLevel: c.zoomLevel,
		Rotation:  c.rotation,
	}
}

func (c *Camera) notifyPan(origin, destination math2.Vec2) {
	state := c.snapshot()
	for _, h := range c.panHandlers {
		h(origin, destination, state)
	}
}

func (c *Camera) notifyZoom(origin, destination float64) {
	state := c.snapshot()
	for _, h := range c.zoomHandlers {
		h(origin, destination, state)
	}
}

func (c *Camera) notifyRotate(origin, destination float64) {
	state := c.snapshot()
	for _, h := range c.rotateHandlers {
		h(origin, destination, state)
	}
}
