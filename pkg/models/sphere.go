package models

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// NewUVSphere generates a unit sphere mesh with the given number of
// latitude stacks and longitude sectors. Normals point outward and
// equal the vertex position, which is what the procedural materials
// expect of a planet body.
func NewUVSphere(stacks, sectors int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if sectors < 3 {
		sectors = 3
	}

	mesh := NewMesh("sphere")

	for i := 0; i <= stacks; i++ {
		// phi from +pi/2 (north pole) down to -pi/2
		phi := math.Pi/2 - float64(i)*math.Pi/float64(stacks)
		y := math.Sin(phi)
		r := math.Cos(phi)

		for j := 0; j <= sectors; j++ {
			theta := float64(j) * 2 * math.Pi / float64(sectors)
			x := r * math.Cos(theta)
			z := r * math.Sin(theta)

			pos := math3d.V3(x, y, z)
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: pos,
				Normal:   pos,
				UV: math3d.V2(
					float64(j)/float64(sectors),
					1-float64(i)/float64(stacks),
				),
			})
		}
	}

	cols := sectors + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := i*cols + j
			b := a + cols

			// Two triangles per quad; the pole rows collapse one of them.
			if i != 0 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a, a + 1, b}})
			}
			if i != stacks-1 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a + 1, b + 1, b}})
			}
		}
	}

	mesh.CalculateBounds()
	return mesh
}
