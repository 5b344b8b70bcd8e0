package scene

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

// Body is one object in the system: a star or planet sharing the
// common sphere mesh, distinguished by orbit, size and material.
type Body struct {
	Name     string
	Material render.Material

	// Translation is the body's rest position; its XZ components are
	// spun around the Y axis by the orbital speed each frame.
	Translation math3d.Vec3

	Scale float64

	RotationSpeed float64 // Self-rotation, radians per frame
	OrbitalSpeed  float64 // Orbit around the origin, radians per frame
}

// SolarSystem returns the default body table: the star at the origin
// and seven planets on widening orbits.
func SolarSystem() []Body {
	return []Body{
		{Name: "sol", Material: render.MaterialStar, Translation: math3d.V3(0, 0, 0), Scale: 2.0, RotationSpeed: 0, OrbitalSpeed: 0},
		{Name: "vesper", Material: render.MaterialSwirl, Translation: math3d.V3(3, 0, 0), Scale: 0.5, RotationSpeed: 0.05, OrbitalSpeed: 0.02},
		{Name: "cinder", Material: render.MaterialRinged, Translation: math3d.V3(6, 0, 0), Scale: 0.7, RotationSpeed: 0.03, OrbitalSpeed: 0.015},
		{Name: "thalassa", Material: render.MaterialOcean, Translation: math3d.V3(9, 0, 0), Scale: 0.9, RotationSpeed: 0.02, OrbitalSpeed: 0.01},
		{Name: "viridian", Material: render.MaterialCellular, Translation: math3d.V3(12, 0, 0), Scale: 1.2, RotationSpeed: 0.01, OrbitalSpeed: 0.007},
		{Name: "russet", Material: render.MaterialMottled, Translation: math3d.V3(15, 0, 0), Scale: 1.5, RotationSpeed: 0.04, OrbitalSpeed: 0.005},
		{Name: "dunes", Material: render.MaterialRocky, Translation: math3d.V3(18, 0, 0), Scale: 1.7, RotationSpeed: 0.02, OrbitalSpeed: 0.003},
		{Name: "veil", Material: render.MaterialGasGiant, Translation: math3d.V3(21, 0, 0), Scale: 1.8, RotationSpeed: 0.03, OrbitalSpeed: 0.002},
	}
}

// ModelMatrix returns the body's model matrix at the given frame:
// orbital translation around the origin, uniform scale, then
// self-rotation about Y.
func (b Body) ModelMatrix(time int) math3d.Mat4 {
	t := float64(time)

	angle := t * b.OrbitalSpeed
	sin, cos := math.Sin(angle), math.Cos(angle)
	orbital := math3d.V3(
		b.Translation.X*cos-b.Translation.Z*sin,
		b.Translation.Y,
		b.Translation.X*sin+b.Translation.Z*cos,
	)

	return math3d.Translate(orbital).
		Mul(math3d.ScaleUniform(b.Scale)).
		Mul(math3d.RotateY(t * b.RotationSpeed))
}

// Scene holds everything needed to draw one frame of the system.
type Scene struct {
	Bodies []Body
	Camera *Camera
	Sky    *render.Sky

	// Time is the frame counter; Advance bumps it.
	Time int

	// Wireframe draws triangle edges instead of filled surfaces.
	Wireframe bool

	vertices []render.Vertex
	noise    *noise.Source
	fov      float64
	near     float64
	far      float64
}

// New creates a scene drawing the given bodies with a shared mesh and
// noise source.
func New(bodies []Body, mesh *models.Mesh, cam *Camera, src *noise.Source) *Scene {
	return &Scene{
		Bodies:   bodies,
		Camera:   cam,
		vertices: MeshVertices(mesh),
		noise:    src,
		fov:      45 * math.Pi / 180,
		near:     0.1,
		far:      1000,
	}
}

// MeshVertices flattens a mesh into the triangle list the pipeline
// consumes, three vertices per face.
func MeshVertices(mesh *models.Mesh) []render.Vertex {
	out := make([]render.Vertex, 0, mesh.TriangleCount()*3)
	for _, f := range mesh.Faces {
		for _, vi := range f.V {
			v := mesh.Vertices[vi]
			out = append(out, render.Vertex{
				Position: v.Position,
				Normal:   v.Normal,
				UV:       v.UV,
			})
		}
	}
	return out
}

// Advance steps the animation clock by one frame.
func (s *Scene) Advance() {
	s.Time++
}

// RenderFrame draws the sky and every body into the framebuffer.
// A non-negative materialOverride shades all bodies with that material,
// mirroring the digit-key controls; pass -1 for each body's own.
func (s *Scene) RenderFrame(fb *render.Framebuffer, materialOverride int) {
	fb.Clear(render.ColorSpace)
	if s.Sky != nil {
		s.Sky.Draw(fb)
	}

	view := s.Camera.ViewMatrix()
	aspect := float64(fb.Width) / float64(fb.Height)
	projection := math3d.Perspective(s.fov, aspect, s.near, s.far)
	viewport := math3d.Viewport(float64(fb.Width), float64(fb.Height))

	for _, b := range s.Bodies {
		u := &render.Uniforms{
			Model:      b.ModelMatrix(s.Time),
			View:       view,
			Projection: projection,
			Viewport:   viewport,
			Time:       s.Time,
			Noise:      s.noise,
		}

		mat := b.Material
		if materialOverride >= 0 {
			mat = render.MaterialFromID(materialOverride)
		}

		if s.Wireframe {
			render.RenderWireframe(fb, u, s.vertices, render.ColorWhite)
		} else {
			render.Render(fb, u, s.vertices, mat)
		}
	}
}
