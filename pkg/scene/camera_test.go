package scene

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func TestOrbitPreservesRadius(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))

	for i := 0; i < 50; i++ {
		cam.Orbit(math.Pi/50, math.Pi/200)
	}

	radius := cam.Eye.Sub(cam.Center).Len()
	if math.Abs(radius-20) > 1e-6 {
		t.Errorf("radius drifted to %v after orbiting, want 20", radius)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))

	// Try to push the camera over the pole.
	for i := 0; i < 100; i++ {
		cam.Orbit(0, math.Pi/10)
	}

	offset := cam.Eye.Sub(cam.Center)
	pitch := math.Asin(offset.Y / offset.Len())
	if pitch > pitchLimit+1e-9 {
		t.Errorf("pitch %v exceeds limit %v", pitch, pitchLimit)
	}
}

func TestZoom(t *testing.T) {
	t.Run("moves toward center", func(t *testing.T) {
		cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))
		cam.Zoom(5)
		radius := cam.Eye.Sub(cam.Center).Len()
		if math.Abs(radius-15) > 1e-9 {
			t.Errorf("radius = %v, want 15", radius)
		}
	})

	t.Run("stops at minimum distance", func(t *testing.T) {
		cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))
		cam.Zoom(100)
		radius := cam.Eye.Sub(cam.Center).Len()
		if radius < minZoomDistance-1e-9 {
			t.Errorf("radius = %v, went through the center", radius)
		}
	})

	t.Run("negative delta backs away", func(t *testing.T) {
		cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))
		cam.Zoom(-10)
		radius := cam.Eye.Sub(cam.Center).Len()
		if math.Abs(radius-30) > 1e-9 {
			t.Errorf("radius = %v, want 30", radius)
		}
	})
}

func TestMoveCenterPansBoth(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))
	delta := math3d.V3(1, 2, 3)
	cam.MoveCenter(delta)

	if cam.Center.Sub(delta).Len() > 1e-9 {
		t.Errorf("center = %v, want %v", cam.Center, delta)
	}
	want := math3d.V3(1, 2, 23)
	if cam.Eye.Sub(want).Len() > 1e-9 {
		t.Errorf("eye = %v, want %v", cam.Eye, want)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))
	view := cam.ViewMatrix()

	// The center lands on the negative view-space Z axis.
	p := view.MulVec3(cam.Center)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("center maps to %v, want on the view axis", p)
	}
	if p.Z >= 0 {
		t.Errorf("center at view z = %v, want negative (in front)", p.Z)
	}
}
