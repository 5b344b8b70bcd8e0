// orrerywin - Windowed solar system viewer
//
// The same procedurally shaded solar system as the terminal frontend,
// blitted into an OS window at full pixel resolution.
//
// Controls:
//
//	0-9         - Shade every body with one material (Backquote restores)
//	Left/Right  - Orbit the camera around the system
//	W/S         - Orbit up/down
//	A/D         - Pan the view target left/right
//	Q/E         - Pan the view target up/down
//	Up/Down     - Zoom in/out
//	X           - Toggle wireframe
//	P           - Save a PNG snapshot
//	Escape      - Quit
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
)

var (
	winWidth    = flag.Int("width", 800, "Window width in pixels")
	winHeight   = flag.Int("height", 600, "Window height in pixels")
	skyPath     = flag.String("sky", "", "Path to sky background image (PNG/JPG/TGA)")
	modelPath   = flag.String("model", "", "Planet mesh (.obj/.glb); default is a generated sphere")
	noiseSeed   = flag.Int64("seed", noise.DefaultSeed, "Noise seed for the procedural materials")
	snapshotDir = flag.String("snapshots", ".", "Directory for snapshot images")
)

// Game drives the scene and blits the framebuffer to the window.
type Game struct {
	sys    *scene.Scene
	camera *scene.Camera
	fb     *render.Framebuffer

	window *ebiten.Image
	pixels []byte

	materialOverride int
	snapshotErr      error
}

const (
	orbitStep  = math.Pi / 50
	panStep    = 1.0
	zoomStep   = 0.5
	digitCount = 10
)

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camera.Orbit(0, -orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camera.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camera.MoveCenter(math3d.V3(-panStep, 0, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camera.MoveCenter(math3d.V3(panStep, 0, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.camera.MoveCenter(math3d.V3(0, panStep, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.camera.MoveCenter(math3d.V3(0, -panStep, 0))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Zoom(-zoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sys.Wireframe = !g.sys.Wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackquote) {
		g.materialOverride = -1
	}
	for d := 0; d < digitCount; d++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit0 + ebiten.Key(d)) {
			g.materialOverride = d
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		name := fmt.Sprintf("orrery-%s.png", time.Now().Format("20060102-150405"))
		g.snapshotErr = g.fb.SavePNG(filepath.Join(*snapshotDir, name))
	}

	g.sys.Advance()
	g.sys.RenderFrame(g.fb, g.materialOverride)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.window == nil {
		g.window = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	g.pixels = g.fb.WriteRGBA(g.pixels)
	g.window.WritePixels(g.pixels)
	screen.DrawImage(g.window, nil)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.fb.Width, g.fb.Height
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

func run() error {
	mesh, err := loadMesh(*modelPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	src := noise.New(*noiseSeed)
	camera := scene.NewCamera(math3d.V3(0, 0, 30), math3d.V3(0, 0, 0))
	sys := scene.New(scene.SolarSystem(), mesh, camera, src)

	fb := render.NewFramebuffer(*winWidth, *winHeight)

	if *skyPath != "" {
		img, err := render.LoadImage(*skyPath)
		if err != nil {
			return fmt.Errorf("load sky: %w", err)
		}
		sys.Sky = render.NewSky(img, fb.Width, fb.Height)
	} else {
		sys.Sky = render.NewStarfieldSky(fb.Width, fb.Height, src)
	}

	g := &Game{
		sys:              sys,
		camera:           camera,
		fb:               fb,
		materialOverride: -1,
	}

	ebiten.SetWindowSize(fb.Width, fb.Height)
	ebiten.SetWindowTitle("orrery")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.snapshotErr
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
