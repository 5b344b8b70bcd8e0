package render

import "github.com/taigrr/orrery/pkg/math3d"

// Fragment is a single covered pixel candidate produced by rasterizing
// one triangle. It carries the interpolated per-vertex attributes the
// material shaders consume, and is discarded after shading.
type Fragment struct {
	X, Y  int     // Pixel coordinates
	Depth float64 // Interpolated depth for the z-buffer test

	// Normal is the interpolated, renormalized surface normal.
	Normal math3d.Vec3

	// Position is the interpolated model-space vertex position. The
	// materials sample noise at this position, so it acts as a stable
	// procedural texture coordinate rather than a true world position.
	Position math3d.Vec3

	// Intensity is the diffuse light intensity in [0, 1].
	Intensity float64
}
