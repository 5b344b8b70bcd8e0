package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// lightDir is the fixed directional light used for the per-fragment
// diffuse term. Materials that want their own lighting (the rocky
// surface) compute it separately.
var lightDir = math3d.V3(0, 0, 1)

// Ambient floor for fragment intensity, so unlit surfaces are dimmed
// rather than fully black.
const ambient = 0.3

// degenerateArea is the signed-area magnitude below which a triangle is
// treated as degenerate and produces no fragments.
const degenerateArea = 1e-9

// RasterizeTriangle converts three transformed vertices into the
// fragments covering the triangle's footprint. Depth, normal and the
// model-space position proxy are interpolated with plain screen-space
// barycentric weights; this pipeline is deliberately not
// perspective-correct, which is fine for coarse procedural shading.
//
// The bounding box is clamped to non-negative coordinates only;
// fragments beyond the right/bottom screen edges are filtered at the
// point-write stage.
func RasterizeTriangle(v0, v1, v2 Vertex) []Fragment {
	a, b, c := v0.Screen, v1.Screen, v2.Screen

	area := edgeFunction(a, b, c)
	if math.Abs(area) < degenerateArea {
		return nil
	}
	invArea := 1.0 / area

	minX := int(math.Max(0, math.Floor(min3(a.X, b.X, c.X))))
	maxX := int(math.Ceil(max3(a.X, b.X, c.X)))
	minY := int(math.Max(0, math.Floor(min3(a.Y, b.Y, c.Y))))
	maxY := int(math.Ceil(max3(a.Y, b.Y, c.Y)))
	if maxX < minX || maxY < minY {
		return nil
	}

	capHint := (maxX - minX + 1) * (maxY - minY + 1) / 2
	if capHint > 4096 {
		capHint = 4096
	}
	frags := make([]Fragment, 0, capHint)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math3d.V3(float64(x)+0.5, float64(y)+0.5, 0)

			// Normalizing by the signed area folds the winding into the
			// weights: a pixel is inside iff all three are >= 0,
			// whichever way the triangle winds on screen.
			w0 := edgeFunction(b, c, p) * invArea
			w1 := edgeFunction(c, a, p) * invArea
			w2 := edgeFunction(a, b, p) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*a.Z + w1*b.Z + w2*c.Z

			normal := v0.WorldNormal.Scale(w0).
				Add(v1.WorldNormal.Scale(w1)).
				Add(v2.WorldNormal.Scale(w2)).
				Normalize()

			position := v0.Position.Scale(w0).
				Add(v1.Position.Scale(w1)).
				Add(v2.Position.Scale(w2))

			intensity := ambient + (1-ambient)*math.Max(0, normal.Dot(lightDir))

			frags = append(frags, Fragment{
				X:         x,
				Y:         y,
				Depth:     depth,
				Normal:    normal,
				Position:  position,
				Intensity: intensity,
			})
		}
	}

	return frags
}

// edgeFunction returns the signed area (times two) of the triangle
// (a, b, p); its sign tells which side of edge a->b the point p lies on.
func edgeFunction(a, b, p math3d.Vec3) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
