package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/taigrr/orrery/pkg/noise"
)

// skyDepth is the depth the background is committed at. It sits behind
// everything the projection produces but in front of the cleared
// sentinel, so bodies always paint over the sky without a dedicated
// pass ordering.
const skyDepth = 1.0

// Sky is a static background image prescaled to the framebuffer's
// dimensions, drawn as the farthest layer of each frame.
type Sky struct {
	width  int
	height int
	pixels []Color
}

// NewSky scales src to width x height and keeps the result; scaling
// once up front keeps the per-frame draw to a flat copy.
func NewSky(src image.Image, width, height int) *Sky {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	s := &Sky{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.pixels[y*width+x] = scaled.RGBAAt(x, y)
		}
	}
	return s
}

// NewStarfieldSky generates a procedural night sky when no image is
// available: a near-black base with noise-thresholded stars.
func NewStarfieldSky(width, height int, src *noise.Source) *Sky {
	base := RGB(5, 6, 18)

	s := &Sky{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := base
			// Sample on a fine grid so stars stay single pixels.
			n := src.Eval2(float64(x)*137.1, float64(y)*91.7)
			if n > 0.88 {
				v := uint8(180 + (n-0.88)*600)
				c = RGB(v, v, v)
			}
			s.pixels[y*width+x] = c
		}
	}
	return s
}

// Draw commits the sky at the far depth so any body fragment wins the
// depth test against it.
func (s *Sky) Draw(fb *Framebuffer) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			fb.Point(x, y, skyDepth, s.pixels[y*s.width+x])
		}
	}
}
