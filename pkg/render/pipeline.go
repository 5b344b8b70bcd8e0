package render

import "math"

// Render draws a vertex list as filled, shaded triangles into the
// framebuffer. Vertices are consumed three at a time; a trailing
// partial group is ignored. Every covered fragment is shaded with the
// given material and committed through the depth-tested Point write, so
// the draw order of bodies within a frame does not matter.
func Render(fb *Framebuffer, u *Uniforms, vertices []Vertex, m Material) {
	transformed := make([]Vertex, len(vertices))
	for i, v := range vertices {
		transformed[i] = TransformVertex(v, u)
	}

	for i := 0; i+2 < len(transformed); i += 3 {
		frags := RasterizeTriangle(transformed[i], transformed[i+1], transformed[i+2])
		for j := range frags {
			f := &frags[j]
			if f.X >= fb.Width || f.Y >= fb.Height {
				continue
			}
			fb.Point(f.X, f.Y, f.Depth, Shade(f, u, m))
		}
	}
}

// RenderWireframe draws the triangle edges of a vertex list as overlay
// lines, skipping any edge whose projection is not finite (a vertex
// behind the eye plane blows up in the perspective divide).
func RenderWireframe(fb *Framebuffer, u *Uniforms, vertices []Vertex, c Color) {
	transformed := make([]Vertex, len(vertices))
	for i, v := range vertices {
		transformed[i] = TransformVertex(v, u)
	}

	for i := 0; i+2 < len(transformed); i += 3 {
		a := transformed[i].Screen
		b := transformed[i+1].Screen
		cc := transformed[i+2].Screen
		if !finite2(a.X, a.Y) || !finite2(b.X, b.Y) || !finite2(cc.X, cc.Y) {
			continue
		}
		fb.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), c)
		fb.DrawLine(int(b.X), int(b.Y), int(cc.X), int(cc.Y), c)
		fb.DrawLine(int(cc.X), int(cc.Y), int(a.X), int(a.Y), c)
	}
}

func finite2(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0)
}
