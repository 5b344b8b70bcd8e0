package models

import (
	"math"
	"testing"
)

func TestNewUVSphereGeometry(t *testing.T) {
	const stacks, sectors = 8, 16
	mesh := NewUVSphere(stacks, sectors)

	wantVerts := (stacks + 1) * (sectors + 1)
	if mesh.VertexCount() != wantVerts {
		t.Errorf("vertex count = %d, want %d", mesh.VertexCount(), wantVerts)
	}

	wantFaces := sectors * (2*stacks - 2)
	if mesh.TriangleCount() != wantFaces {
		t.Errorf("triangle count = %d, want %d", mesh.TriangleCount(), wantFaces)
	}

	for i, v := range mesh.Vertices {
		if math.Abs(v.Position.Len()-1) > 1e-9 {
			t.Fatalf("vertex %d at radius %v, want 1", i, v.Position.Len())
		}
		if v.Normal.Sub(v.Position).Len() > 1e-9 {
			t.Fatalf("vertex %d normal differs from position", i)
		}
	}

	for fi, f := range mesh.Faces {
		for _, vi := range f.V {
			if vi < 0 || vi >= mesh.VertexCount() {
				t.Fatalf("face %d references vertex %d", fi, vi)
			}
		}
	}
}

func TestNewUVSphereBounds(t *testing.T) {
	mesh := NewUVSphere(16, 32)
	min, max := mesh.GetBounds()

	if math.Abs(min.Y+1) > 1e-9 || math.Abs(max.Y-1) > 1e-9 {
		t.Errorf("Y bounds [%v, %v], want [-1, 1]", min.Y, max.Y)
	}
	if min.X < -1-1e-9 || max.X > 1+1e-9 {
		t.Errorf("X bounds [%v, %v] exceed the unit sphere", min.X, max.X)
	}
}

func TestNewUVSphereClampsResolution(t *testing.T) {
	mesh := NewUVSphere(0, 0)
	if mesh.VertexCount() == 0 || mesh.TriangleCount() == 0 {
		t.Error("degenerate resolution produced an empty mesh")
	}
}
