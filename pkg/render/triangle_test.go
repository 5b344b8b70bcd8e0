package render

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func screenVertex(x, y, z float64) Vertex {
	return Vertex{
		Screen:      math3d.V3(x, y, z),
		WorldNormal: math3d.V3(0, 0, 1),
	}
}

func TestRasterizeTriangleCoverage(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(20, 10, 0.5)
	v2 := screenVertex(10, 20, 0.5)

	frags := RasterizeTriangle(v0, v1, v2)
	if len(frags) == 0 {
		t.Fatal("no fragments for a visible triangle")
	}

	covered := make(map[[2]int]bool)
	for _, f := range frags {
		covered[[2]int{f.X, f.Y}] = true
		if f.X < 10 || f.X > 20 || f.Y < 10 || f.Y > 20 {
			t.Errorf("fragment (%d, %d) outside bounding box", f.X, f.Y)
		}
		if math.Abs(f.Depth-0.5) > 1e-9 {
			t.Errorf("fragment depth = %v, want 0.5 on a flat triangle", f.Depth)
		}
	}

	if !covered[[2]int{12, 12}] {
		t.Error("interior pixel (12, 12) not covered")
	}
	if covered[[2]int{19, 19}] {
		t.Error("pixel (19, 19) beyond the hypotenuse is covered")
	}
}

func TestRasterizeTriangleWindingIndependence(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(20, 10, 0.5)
	v2 := screenVertex(10, 20, 0.5)

	cw := RasterizeTriangle(v0, v1, v2)
	ccw := RasterizeTriangle(v0, v2, v1)

	if len(cw) != len(ccw) {
		t.Errorf("winding changed coverage: %d vs %d fragments", len(cw), len(ccw))
	}
}

func TestRasterizeTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 Vertex
	}{
		{
			"collinear",
			screenVertex(0, 0, 0), screenVertex(5, 5, 0), screenVertex(10, 10, 0),
		},
		{
			"coincident",
			screenVertex(3, 3, 0), screenVertex(3, 3, 0), screenVertex(3, 3, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if frags := RasterizeTriangle(tc.v0, tc.v1, tc.v2); frags != nil {
				t.Errorf("got %d fragments, want none", len(frags))
			}
		})
	}
}

func TestRasterizeTriangleOffscreen(t *testing.T) {
	v0 := screenVertex(-30, -30, 0.5)
	v1 := screenVertex(-10, -30, 0.5)
	v2 := screenVertex(-30, -10, 0.5)

	if frags := RasterizeTriangle(v0, v1, v2); len(frags) != 0 {
		t.Errorf("got %d fragments for a fully negative triangle", len(frags))
	}
}

func TestRasterizeTriangleClampsNegative(t *testing.T) {
	v0 := screenVertex(-10, -10, 0.5)
	v1 := screenVertex(10, -10, 0.5)
	v2 := screenVertex(-10, 10, 0.5)

	frags := RasterizeTriangle(v0, v1, v2)
	for _, f := range frags {
		if f.X < 0 || f.Y < 0 {
			t.Fatalf("fragment at negative coordinate (%d, %d)", f.X, f.Y)
		}
	}
}

func TestRasterizeTriangleDepthInterpolation(t *testing.T) {
	v0 := screenVertex(0, 0, 0.0)
	v1 := screenVertex(20, 0, 1.0)
	v2 := screenVertex(0, 20, 1.0)

	frags := RasterizeTriangle(v0, v1, v2)
	for _, f := range frags {
		if f.Depth < -0.2 || f.Depth > 1.2 {
			t.Fatalf("interpolated depth %v outside vertex range", f.Depth)
		}
	}
}

func TestFragmentIntensityRange(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(20, 10, 0.5)
	v2 := screenVertex(10, 20, 0.5)
	// Normal facing away from the light still gets the ambient floor.
	v2.WorldNormal = math3d.V3(0, 0, -1)

	frags := RasterizeTriangle(v0, v1, v2)
	for _, f := range frags {
		if f.Intensity < ambient-1e-9 || f.Intensity > 1+1e-9 {
			t.Fatalf("intensity %v outside [%v, 1]", f.Intensity, ambient)
		}
	}
}
