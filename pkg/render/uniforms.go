package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
)

// Uniforms is the per-draw-call bundle of transforms and shared frame
// state. Build one per object per frame and do not mutate it afterwards;
// the noise source is the long-lived process-wide one, shared by
// reference so its internal tables are built once.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	// Time is the frame counter driving material animation.
	Time int

	Noise *noise.Source
}
