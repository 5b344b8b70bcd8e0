// orrery - Animated solar system in your terminal
//
// A software-rasterized model system: a procedurally shaded star and
// seven planets orbiting it, rendered with half-block characters.
//
// Controls:
//
//	0-9         - Shade every body with one material (` restores)
//	Left/Right  - Orbit the camera around the system
//	W/S         - Orbit up/down
//	A/D         - Pan the view target left/right
//	Q/E         - Pan the view target up/down
//	Up/Down     - Zoom in/out (spring smoothed)
//	X           - Toggle wireframe
//	P           - Save a PNG snapshot
//	O           - Save a WebP snapshot
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
)

var (
	targetFPS   = flag.Int("fps", 30, "Target FPS")
	skyPath     = flag.String("sky", "", "Path to sky background image (PNG/JPG/TGA)")
	modelPath   = flag.String("model", "", "Planet mesh (.obj/.glb); default is a generated sphere")
	noiseSeed   = flag.Int64("seed", noise.DefaultSeed, "Noise seed for the procedural materials")
	snapshotDir = flag.String("snapshots", ".", "Directory for snapshot images")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orrery - Animated solar system in your terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orrery [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  0-9         - Shade every body with one material (` restores)\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Orbit up/down\n")
		fmt.Fprintf(os.Stderr, "  A/D/Q/E     - Pan the view target\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Zoom\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  P/O         - Save PNG/WebP snapshot\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ZoomState smooths zoom input with a critically damped spring, so
// tapping a key glides the camera instead of stepping it.
type ZoomState struct {
	velocity float64
	accel    float64
	spring   harmonica.Spring
}

func NewZoomState(fps int) *ZoomState {
	return &ZoomState{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Impulse adds zoom velocity (positive zooms in).
func (z *ZoomState) Impulse(v float64) {
	z.velocity += v
}

// Update decays the velocity toward 0 and returns the zoom step to
// apply this frame.
func (z *ZoomState) Update() float64 {
	step := z.velocity
	z.velocity, z.accel = z.spring.Update(z.velocity, z.accel, 0)
	return step
}

func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.NewUVSphere(24, 48), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	case ".obj":
		return models.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", filepath.Ext(path))
	}
}

func snapshotPath(dir, ext string) string {
	name := fmt.Sprintf("orrery-%s.%s", time.Now().Format("20060102-150405"), ext)
	return filepath.Join(dir, name)
}

func run() error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	mesh, err := loadMesh(*modelPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	src := noise.New(*noiseSeed)

	camera := scene.NewCamera(math3d.V3(0, 0, 30), math3d.V3(0, 0, 0))
	sys := scene.New(scene.SolarSystem(), mesh, camera, src)

	newSky := func(w, h int) *render.Sky {
		if *skyPath != "" {
			img, err := render.LoadImage(*skyPath)
			if err == nil {
				return render.NewSky(img, w, h)
			}
		}
		return render.NewStarfieldSky(w, h, src)
	}
	sys.Sky = newSky(fbWidth, fbHeight)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	zoom := NewZoomState(*targetFPS)

	const orbitStep = math.Pi / 50
	const panStep = 1.0
	const zoomImpulse = 0.1

	materialOverride := -1
	var snapshotErr error

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				sys.Sky = newSky(fbWidth, fbHeight)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left"):
					camera.Orbit(orbitStep, 0)
				case ev.MatchString("right"):
					camera.Orbit(-orbitStep, 0)
				case ev.MatchString("w"):
					camera.Orbit(0, -orbitStep)
				case ev.MatchString("s"):
					camera.Orbit(0, orbitStep)
				case ev.MatchString("a"):
					camera.MoveCenter(math3d.V3(-panStep, 0, 0))
				case ev.MatchString("d"):
					camera.MoveCenter(math3d.V3(panStep, 0, 0))
				case ev.MatchString("q"):
					camera.MoveCenter(math3d.V3(0, panStep, 0))
				case ev.MatchString("e"):
					camera.MoveCenter(math3d.V3(0, -panStep, 0))
				case ev.MatchString("up"):
					zoom.Impulse(zoomImpulse)
				case ev.MatchString("down"):
					zoom.Impulse(-zoomImpulse)
				case ev.MatchString("x"):
					sys.Wireframe = !sys.Wireframe
				case ev.MatchString("`"):
					materialOverride = -1
				case ev.MatchString("p"):
					snapshotErr = fb.SavePNG(snapshotPath(*snapshotDir, "png"))
				case ev.MatchString("o"):
					snapshotErr = fb.SaveWebP(snapshotPath(*snapshotDir, "webp"))
				default:
					for d := 0; d <= 9; d++ {
						if ev.MatchString(fmt.Sprintf("%d", d)) {
							materialOverride = d
							break
						}
					}
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return snapshotErr
		default:
		}

		now := time.Now()

		if step := zoom.Update(); step != 0 {
			camera.Zoom(step)
		}

		sys.Advance()
		sys.RenderFrame(fb, materialOverride)

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
