package scene

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

func TestSolarSystemTable(t *testing.T) {
	bodies := SolarSystem()
	if len(bodies) != 8 {
		t.Fatalf("body count = %d, want 8", len(bodies))
	}

	star := bodies[0]
	if star.Material != render.MaterialStar {
		t.Errorf("central body material = %v, want star", star.Material)
	}
	if star.Translation.Len() != 0 || star.OrbitalSpeed != 0 {
		t.Error("central body should rest at the origin")
	}

	seen := make(map[render.Material]bool)
	for _, b := range bodies {
		if seen[b.Material] {
			t.Errorf("material %v assigned twice", b.Material)
		}
		seen[b.Material] = true
	}

	// Orbits widen monotonically outward.
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Translation.Len() <= bodies[i-1].Translation.Len() {
			t.Errorf("body %d orbit radius %v not beyond body %d",
				i, bodies[i].Translation.Len(), i-1)
		}
	}
}

func TestModelMatrixOrbit(t *testing.T) {
	b := Body{
		Translation:  math3d.V3(10, 0, 0),
		Scale:        1,
		OrbitalSpeed: 0.01,
	}

	t.Run("rest position at time zero", func(t *testing.T) {
		p := b.ModelMatrix(0).MulVec3(math3d.Zero3())
		if p.Sub(math3d.V3(10, 0, 0)).Len() > 1e-9 {
			t.Errorf("position = %v, want (10, 0, 0)", p)
		}
	})

	t.Run("radius preserved over time", func(t *testing.T) {
		for _, time := range []int{10, 100, 500} {
			p := b.ModelMatrix(time).MulVec3(math3d.Zero3())
			if math.Abs(p.Len()-10) > 1e-9 {
				t.Errorf("time %d: orbit radius = %v, want 10", time, p.Len())
			}
			if math.Abs(p.Y) > 1e-9 {
				t.Errorf("time %d: body left the orbital plane: %v", time, p)
			}
		}
	})

	t.Run("scale applied", func(t *testing.T) {
		b := Body{Translation: math3d.Zero3(), Scale: 2}
		p := b.ModelMatrix(0).MulVec3(math3d.V3(1, 0, 0))
		if math.Abs(p.Len()-2) > 1e-9 {
			t.Errorf("scaled unit point at %v, want radius 2", p.Len())
		}
	})
}

func TestMeshVertices(t *testing.T) {
	mesh := models.NewUVSphere(4, 8)
	verts := MeshVertices(mesh)

	if len(verts) != mesh.TriangleCount()*3 {
		t.Errorf("vertex list length = %d, want %d", len(verts), mesh.TriangleCount()*3)
	}
	if len(verts)%3 != 0 {
		t.Errorf("vertex list length %d not a multiple of 3", len(verts))
	}
}

func newTestScene() *Scene {
	cam := NewCamera(math3d.V3(0, 0, 20), math3d.V3(0, 0, 0))
	mesh := models.NewUVSphere(12, 24)
	return New(SolarSystem(), mesh, cam, noise.Default())
}

func TestRenderFrameDrawsBodies(t *testing.T) {
	s := newTestScene()
	fb := render.NewFramebuffer(64, 64)

	s.RenderFrame(fb, -1)

	// The star sits at the origin, dead ahead of the camera, so the
	// center of the frame must be body, not background.
	if fb.GetPixel(32, 32) == render.ColorSpace {
		t.Error("center pixel still background after rendering")
	}

	written := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) != render.ColorSpace {
				written++
			}
		}
	}
	if written == 0 {
		t.Error("no pixels written")
	}
}

func TestRenderFrameMaterialOverride(t *testing.T) {
	s := newTestScene()

	fb1 := render.NewFramebuffer(64, 64)
	s.RenderFrame(fb1, int(render.MaterialNeon))

	fb2 := render.NewFramebuffer(64, 64)
	s.RenderFrame(fb2, int(render.MaterialOcean))

	differs := false
	for y := 0; y < 64 && !differs; y++ {
		for x := 0; x < 64; x++ {
			if fb1.GetPixel(x, y) != fb2.GetPixel(x, y) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Error("override materials produced identical frames")
	}
}

func TestAdvance(t *testing.T) {
	s := newTestScene()
	if s.Time != 0 {
		t.Fatalf("initial time = %d", s.Time)
	}
	s.Advance()
	s.Advance()
	if s.Time != 2 {
		t.Errorf("time = %d after two advances, want 2", s.Time)
	}
}

func TestRenderFrameWireframe(t *testing.T) {
	s := newTestScene()
	s.Wireframe = true
	fb := render.NewFramebuffer(64, 64)

	s.RenderFrame(fb, -1)

	found := false
	for y := 0; y < 64 && !found; y++ {
		for x := 0; x < 64; x++ {
			if fb.GetPixel(x, y) == render.ColorWhite {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no wireframe edges drawn")
	}
}
