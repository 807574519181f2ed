// Package camera implements a bounded 2D camera over an unbounded world
// viewed through a fixed-size viewport. The camera owns position, zoom and
// rotation, enforces configurable boundaries on each, converts points and
// vectors between viewport and world space, and notifies registered handlers
// on every accepted state change.
//
// Mutators whose target violates the active boundary are silent no-ops: no
// state change, no error, no notification. Callers that need feedback
// compare state before and after.
//
// A Camera is single-writer and fully synchronous. It performs no locking;
// hosts that share one across goroutines must synchronize externally.
package camera

import (
	"github.com/automoto/boardcam/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// Defaults applied by New and by zero fields in Config.
const (
	DefaultViewPortWidth  = 500
	DefaultViewPortHeight = 500
	DefaultBoundaryExtent = 1000
	DefaultZoomMin        = 0.1
	DefaultZoomMax        = 10
)

// Camera holds the viewing state and its boundaries. LimitEntireViewPort
// switches the pan boundary check from the focal point alone to the whole
// visible rectangle.
type Camera struct {
	position  math2.Vec2
	zoomLevel float64
	rotation  float64

	positionBoundary    PositionBoundary
	zoomLevelBoundary   ZoomLevelBoundary
	rotationBoundary    RotationBoundary
	hasRotationBoundary bool

	viewPortWidth  float64
	viewPortHeight float64

	LimitEntireViewPort bool

	panHandlers    []PanHandler
	zoomHandlers   []ZoomHandler
	rotateHandlers []RotateHandler
}

// Config carries construction parameters. Zero-value fields fall back to the
// package defaults: a 500x500 viewport, a position boundary of ±1000 on both
// axes and a zoom range of [0.1, 10].
type Config struct {
	ViewPortWidth     float64
	ViewPortHeight    float64
	PositionBoundary  PositionBoundary
	ZoomLevelBoundary ZoomLevelBoundary
}

// New returns a camera with all defaults, positioned at the world origin
// with zoom 1 and no rotation.
func New() *Camera {
	return NewWithConfig(Config{})
}

// NewWithConfig returns a camera configured by cfg, with defaults filling
// any zero fields. An inverted zoom range is corrected by swapping.
func NewWithConfig(cfg Config) *Camera {
	if cfg.ViewPortWidth == 0 {
		cfg.ViewPortWidth = DefaultViewPortWidth
	}
	if cfg.ViewPortHeight == 0 {
		cfg.ViewPortHeight = DefaultViewPortHeight
	}
	if cfg.PositionBoundary == (PositionBoundary{}) {
		cfg.PositionBoundary = PositionBoundary{
			Min: math2.Vec2{X: -DefaultBoundaryExtent, Y: -DefaultBoundaryExtent},
			Max: math2.Vec2{X: DefaultBoundaryExtent, Y: DefaultBoundaryExtent},
		}
	}
	if cfg.ZoomLevelBoundary == (ZoomLevelBoundary{}) {
		cfg.ZoomLevelBoundary = ZoomLevelBoundary{Min: DefaultZoomMin, Max: DefaultZoomMax}
	}

	return &Camera{
		zoomLevel:         1,
		positionBoundary:  cfg.PositionBoundary,
		zoomLevelBoundary: cfg.ZoomLevelBoundary.normalized(),
		viewPortWidth:     cfg.ViewPortWidth,
		viewPortHeight:    cfg.ViewPortHeight,
	}
}

// Position returns the camera's world-space focal point.
func (c *Camera) Position() math2.Vec2 { return c.position }

// ZoomLevel returns the current scale factor.
func (c *Camera) ZoomLevel() float64 { return c.zoomLevel }

// Rotation returns the current rotation in radians, normalized to [0, 2π).
func (c *Camera) Rotation() float64 { return c.rotation }

// PositionBound returns the configured position boundary.
func (c *Camera) PositionBound() PositionBoundary { return c.positionBoundary }

// ZoomLevelBound returns the configured zoom range.
func (c *Camera) ZoomLevelBound() ZoomLevelBoundary { return c.zoomLevelBoundary }

// SetZoomLevelBound replaces the zoom range. Inverted bounds are swapped,
// never rejected. The current zoom level is left untouched even if it falls
// outside the new range; the next SetZoomLevel call re-validates.
func (c *Camera) SetZoomLevelBound(b ZoomLevelBoundary) {
	c.zoomLevelBoundary = b.normalized()
}

// RotationBound returns the rotation boundary and whether one is set. When
// the second return is false the rotation is unrestricted.
func (c *Camera) RotationBound() (RotationBoundary, bool) {
	return c.rotationBoundary, c.hasRotationBoundary
}

// SetRotationBound installs a rotation boundary. Edge angles are normalized
// to [0, 2π) on assignment.
func (c *Camera) SetRotationBound(b RotationBoundary) {
	c.rotationBoundary = b.normalized()
	c.hasRotationBoundary = true
}

// ClearRotationBound removes the rotation boundary, making rotation
// unrestricted again.
func (c *Camera) ClearRotationBound() {
	c.rotationBoundary = RotationBoundary{}
	c.hasRotationBoundary = false
}

// ViewPortSize returns the viewport extent in viewport units.
func (c *Camera) ViewPortSize() (width, height float64) {
	return c.viewPortWidth, c.viewPortHeight
}

// SetViewPortSize resizes the viewport. State is not re-validated; the next
// mutator call applies the new extent.
func (c *Camera) SetViewPortSize(width, height float64) {
	c.viewPortWidth = width
	c.viewPortHeight = height
}

// SetPosition moves the focal point to destination. In whole-viewport mode
// the move is accepted only if all four viewport corners at the destination
// stay inside the position boundary; otherwise the destination itself must
// be inside. Rejected moves change nothing and notify nobody. Calling with
// the current position is a valid transition that still notifies.
func (c *Camera) SetPosition(destination math2.Vec2) {
	if c.LimitEntireViewPort {
		if !c.viewPortWithinBoundary(destination, c.zoomLevel, c.rotation) {
			return
		}
	} else if !c.positionBoundary.Contains(destination) {
		return
	}

	origin := c.position
	c.position = destination
	c.notifyPan(origin, destination)
}

// SetPositionBy moves the focal point by offset (world units). The raw
// target is clamped first — with the whole-viewport corner-delta clamp in
// whole-viewport mode, per-axis otherwise — then delegated to SetPosition,
// which re-validates.
func (c *Camera) SetPositionBy(offset math2.Vec2) {
	destination := gamemath.Add(c.position, offset)
	if c.LimitEntireViewPort {
		destination = c.clampEntireViewPort(destination)
	} else {
		destination = ClampPoint(destination, c.positionBoundary)
	}
	c.SetPosition(destination)
}

// SetZoomLevel sets the scale factor. Targets outside the zoom range are
// silently rejected.
func (c *Camera) SetZoomLevel(target float64) {
	if !c.zoomLevelBoundary.Contains(target) {
		return
	}
	origin := c.zoomLevel
	c.zoomLevel = target
	c.notifyZoom(origin, target)
}

// SetZoomLevelBy adjusts the scale factor by delta, subject to the same
// boundary check as SetZoomLevel.
func (c *Camera) SetZoomLevelBy(delta float64) {
	c.SetZoomLevel(c.zoomLevel + delta)
}

// SetRotation sets the rotation to angle radians, normalized to [0, 2π).
// With a rotation boundary set, angles outside the arc are silently
// rejected.
func (c *Camera) SetRotation(angle float64) {
	angle = gamemath.NormalizeAngle(angle)
	if c.hasRotationBoundary && !c.rotationBoundary.Contains(angle) {
		return
	}
	origin := c.rotation
	c.rotation = angle
	c.notifyRotate(origin, angle)
}

// SetRotationBy rotates by delta radians. With a rotation boundary set, the
// target is clamped to the nearest arc edge first, so the delegated
// SetRotation always succeeds.
func (c *Camera) SetRotationBy(delta float64) {
	target := gamemath.NormalizeAngle(c.rotation + delta)
	if c.hasRotationBoundary {
		target = c.rotationBoundary.Clamp(target)
	}
	c.SetRotation(target)
}

// MinZoomLevel returns the smallest zoom at which the unrotated viewport
// still fits inside the position boundary.
func (c *Camera) MinZoomLevel() float64 {
	return MinZoomLevel(c.viewPortWidth, c.viewPortHeight, c.positionBoundary)
}

// MinZoomLevelWithRotation returns the smallest zoom at which the viewport
// fits inside the position boundary at any rotation.
func (c *Camera) MinZoomLevelWithRotation() float64 {
	return MinZoomLevelWithRotation(c.viewPortWidth, c.viewPortHeight, c.positionBoundary)
}
