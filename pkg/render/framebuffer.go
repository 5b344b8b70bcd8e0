package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// DepthFar is the sentinel every depth entry is reset to by Clear. Any
// write with a nearer depth claims the pixel.
const DepthFar = math.MaxFloat64

// Framebuffer owns the pixel color buffer and its parallel depth
// buffer, row-major with a top-left origin. It is allocated once at
// startup and cleared, not reallocated, every frame.
// We use double vertical resolution in the terminal by drawing with
// half-block characters (▀▄).
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color   // Row-major pixel data
	Depth  []float64 // Nearest depth committed since the last Clear
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// For terminal output, Height should be 2x the terminal rows.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
		Depth:  make([]float64, width*height),
	}
}

// Clear resets every pixel to the background color and every depth
// entry to DepthFar.
func (fb *Framebuffer) Clear(background Color) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = background
	fb.Depth[0] = DepthFar
	// Copy-doubling fill.
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// Point performs a depth-tested pixel write: if (x, y) is in bounds and
// depth is strictly nearer than the stored depth, the color and depth
// are committed; otherwise the write is a silent no-op. Visibility is
// therefore independent of draw order.
func (fb *Framebuffer) Point(x, y int, depth float64, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth >= fb.Depth[i] {
		return
	}
	fb.Depth[i] = depth
	fb.Pixels[i] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or DepthFar if out of
// bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return DepthFar
	}
	return fb.Depth[y*fb.Width+x]
}

// setPixel writes a color without touching the depth buffer. Overlay
// drawing (lines, wireframes) paints over the committed scene.
func (fb *Framebuffer) setPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// PackedBuffer fills dst with one 0xRRGGBB integer per pixel, row-major
// with a top-left origin, and returns it, reallocating when dst is nil
// or too small.
func (fb *Framebuffer) PackedBuffer(dst []uint32) []uint32 {
	if len(dst) < len(fb.Pixels) {
		dst = make([]uint32, len(fb.Pixels))
	}
	for i, p := range fb.Pixels {
		dst[i] = Hex(p)
	}
	return dst
}

// WriteRGBA fills dst with 4 bytes per pixel in RGBA order and returns
// it, reallocating when dst is nil or too small. This is the layout the
// windowed frontend blits directly.
func (fb *Framebuffer) WriteRGBA(dst []byte) []byte {
	if len(dst) < len(fb.Pixels)*4 {
		dst = make([]byte, len(fb.Pixels)*4)
	}
	for i, p := range fb.Pixels {
		dst[i*4+0] = p.R
		dst[i*4+1] = p.G
		dst[i*4+2] = p.B
		dst[i*4+3] = p.A
	}
	return dst
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}

// SaveWebP saves the framebuffer as a lossless WebP file.
func (fb *Framebuffer) SaveWebP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	return nativewebp.Encode(f, fb.ToImage(), nil)
}
