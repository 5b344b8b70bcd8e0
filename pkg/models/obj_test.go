package models

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOBJQuad(t *testing.T) {
	path := writeOBJ(t, `
# a unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.VertexCount() != 4 {
		t.Errorf("vertex count = %d, want 4", mesh.VertexCount())
	}
	// Quad fan-triangulates into two faces.
	if mesh.TriangleCount() != 2 {
		t.Errorf("triangle count = %d, want 2", mesh.TriangleCount())
	}

	for i, v := range mesh.Vertices {
		if math.Abs(v.Normal.Z-1) > 1e-9 {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("triangle count = %d, want 1", mesh.TriangleCount())
	}
}

func TestLoadOBJMissingNormals(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range mesh.Vertices {
		if math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Errorf("vertex %d normal not computed: %v", i, v.Normal)
		}
	}
}

func TestLoadOBJErrors(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		if _, err := LoadOBJ("/nonexistent/sphere.obj"); err == nil {
			t.Error("expected error for nonexistent file")
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		path := writeOBJ(t, "v 0 0 0\nf 1 2 3\n")
		if _, err := LoadOBJ(path); err == nil {
			t.Error("expected error for out-of-range face index")
		}
	})

	t.Run("malformed vertex", func(t *testing.T) {
		path := writeOBJ(t, "v 0 zero 0\n")
		if _, err := LoadOBJ(path); err == nil {
			t.Error("expected error for malformed vertex")
		}
	})
}
