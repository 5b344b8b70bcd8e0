// Package scene assembles the animated solar system: the body table,
// the orbit camera and the per-frame draw loop over the shared mesh.
package scene

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// pitchLimit keeps the orbit away from the poles, where the up vector
// would flip.
const pitchLimit = math.Pi/2 - 0.05

// minZoomDistance stops Zoom from pushing the eye through the center.
const minZoomDistance = 1.0

// Camera orbits around a center point. The eye moves on a sphere whose
// radius changes with Zoom; the center pans with MoveCenter.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3
}

// NewCamera creates a camera at eye looking at center.
func NewCamera(eye, center math3d.Vec3) *Camera {
	return &Camera{
		Eye:    eye,
		Center: center,
		Up:     math3d.V3(0, 1, 0),
	}
}

// Orbit rotates the eye around the center by the given yaw and pitch
// deltas in radians, keeping the distance constant.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(offset.Y / radius)

	yaw += deltaYaw
	pitch += deltaPitch
	if pitch > pitchLimit {
		pitch = pitchLimit
	}
	if pitch < -pitchLimit {
		pitch = -pitchLimit
	}

	c.Eye = c.Center.Add(math3d.V3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
}

// Zoom moves the eye toward the center by delta (negative moves away),
// stopping short of the center itself.
func (c *Camera) Zoom(delta float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	newRadius := radius - delta
	if newRadius < minZoomDistance {
		newRadius = minZoomDistance
	}
	c.Eye = c.Center.Add(offset.Scale(newRadius / radius))
}

// MoveCenter pans the view target and the eye together.
func (c *Camera) MoveCenter(delta math3d.Vec3) {
	c.Center = c.Center.Add(delta)
	c.Eye = c.Eye.Add(delta)
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return math3d.LookAt(c.Eye, c.Center, c.Up)
}
