package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// The material shaders sample noise at the interpolated model-space
// position, so the pattern sticks to the surface while the body rotates.
// The star, rocky, gas-giant and clay materials substitute the fragment
// depth for the position's Z, which smears the pattern along the view
// axis for a softer, more atmospheric look.

func shadeNeon(f *Fragment, u *Uniforms) Color {
	c1 := RGB(255, 20, 147)
	c2 := RGB(0, 191, 255)
	c3 := RGB(50, 205, 50)
	c4 := RGB(255, 255, 0)
	c5 := RGB(75, 0, 130)

	p := f.Position

	t := float64(u.Time) * 0.04
	waveMovement := math.Sin(p.X*10 + p.Y*10 + t)

	const zoom = 10.0
	wave := math.Sin(p.X*zoom + waveMovement)

	var base Color
	switch {
	case wave < -0.8:
		base = c1
	case wave < -0.4:
		base = c2
	case wave < 0.0:
		base = c3
	case wave < 0.4:
		base = c4
	default:
		base = c5
	}

	return MultiplyColor(base, f.Intensity)
}

func shadeSwirl(f *Fragment, u *Uniforms) Color {
	c1 := RGB(255, 0, 255)
	c2 := RGB(0, 255, 255)
	c3 := RGB(0, 255, 127)
	c4 := RGB(255, 105, 180)
	c5 := RGB(255, 165, 0)

	p := f.Position

	t := float64(u.Time) * 0.04
	swirl := math.Sin(p.X*10 + p.Y*10 + t)

	const noiseZoom = 7.0
	noiseValue := math.Abs(u.Noise.Eval3(
		p.X*noiseZoom,
		p.Y*noiseZoom,
		p.Z*noiseZoom+t,
	))

	wave := math.Sin(p.Y*12 + swirl*5)

	var base Color
	switch {
	case wave < -0.6:
		base = Lerp(c1, c2, noiseValue)
	case wave < -0.2:
		base = Lerp(c2, c3, noiseValue)
	case wave < 0.2:
		base = Lerp(c3, c4, noiseValue)
	case wave < 0.6:
		base = Lerp(c4, c5, noiseValue)
	default:
		base = Lerp(c5, c1, noiseValue)
	}

	return MultiplyColor(base, f.Intensity)
}

func shadeRinged(f *Fragment, u *Uniforms) Color {
	c1 := RGB(255, 204, 102)
	c2 := RGB(255, 153, 51)
	c3 := RGB(204, 102, 0)
	c4 := RGB(153, 76, 0)
	c5 := RGB(102, 51, 0)

	p := f.Position

	t := float64(u.Time) * 0.02
	pulsate := math.Sin(t*0.5) * 0.5

	const zoom = 10.0
	bands := math.Sin(p.Y*zoom + pulsate)

	var base Color
	switch {
	case bands < -0.8:
		base = c1
	case bands < -0.4:
		base = c2
	case bands < 0.0:
		base = c3
	case bands < 0.4:
		base = c4
	default:
		base = c5
	}

	return MultiplyColor(base, f.Intensity)
}

func shadeOcean(f *Fragment, u *Uniforms) Color {
	palette := []Color{
		RGB(173, 216, 230),
		RGB(135, 206, 250),
		RGB(0, 191, 255),
		RGB(64, 224, 208),
		RGB(0, 206, 209),
		RGB(70, 130, 180),
		RGB(0, 105, 148),
		RGB(25, 25, 112),
	}
	thresholds := []float64{-0.8, -0.6, -0.4, -0.2, 0.0, 0.2, 0.4, 0.6}

	p := f.Position

	t := float64(u.Time) * 0.02
	pulsate := math.Sin(t*0.5) * 0.5

	const zoom = 15.0
	bands := math.Sin(p.Y*zoom + pulsate)

	base := palette[len(palette)-1]
	for i, th := range thresholds {
		if bands < th {
			base = palette[i]
			break
		}
	}

	return MultiplyColor(base, f.Intensity)
}

func shadeCellular(f *Fragment, u *Uniforms) Color {
	ring1 := RGB(85, 107, 47)
	ring2 := RGB(124, 252, 0)
	ring3 := RGB(34, 139, 34)
	ring4 := RGB(173, 255, 47)

	p := f.Position

	t := float64(u.Time) * 0.03
	pulsate := math.Sin(t*0.5) * 0.2

	const zoom = 600.0
	noiseValue := math.Abs(u.Noise.Eval2(
		(p.X+pulsate)*zoom,
		p.Z*zoom+t,
	))

	var ring Color
	switch {
	case noiseValue < 0.1:
		ring = ring1
	case noiseValue < 0.3:
		ring = ring2
	case noiseValue < 0.5:
		ring = ring3
	default:
		ring = ring4
	}

	return MultiplyColor(ring, f.Intensity)
}

func shadeMottled(f *Fragment, u *Uniforms) Color {
	spotColor := RGB(139, 69, 19)
	rockBase := RGB(210, 105, 30)
	highlight := RGB(255, 140, 0)
	dotColor := RGB(255, 222, 173)

	p := f.Position

	t := float64(u.Time) * 0.03
	pulsate := math.Sin(t*0.6)*0.5 + 0.5

	const rockZoom = 15.0
	rockNoise := math.Abs(u.Noise.Eval3(
		p.X*rockZoom,
		p.Y*rockZoom,
		p.Z*rockZoom,
	))

	const spotZoom = 15.0
	spotNoise := math.Abs(u.Noise.Eval2(p.X*spotZoom, p.Y*spotZoom))
	spotThreshold := 0.2 * pulsate

	const dotsZoom = 50.0
	dotsNoise := math.Abs(u.Noise.Eval2(p.X*dotsZoom, p.Y*dotsZoom))
	const dotsThreshold = 0.05

	var base Color
	if spotNoise < spotThreshold {
		base = Lerp(spotColor, rockBase, rockNoise)
	} else {
		base = Lerp(rockBase, highlight, rockNoise)
	}

	final := base
	if dotsNoise < dotsThreshold {
		final = dotColor
	}

	return MultiplyColor(final, f.Intensity)
}

func shadeStar(f *Fragment, u *Uniforms) Color {
	coreColor := RGB(255, 255, 200)
	midColor := RGB(255, 223, 0)
	coronaColor := RGB(255, 140, 0)

	p := math3d.V3(f.Position.X, f.Position.Y, f.Depth)

	const baseFrequency = 0.5
	const pulsateAmplitude = 0.6
	t := float64(u.Time) * 0.02

	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	const zoom = 1000.0
	n1 := u.Noise.Eval3(
		p.X*zoom,
		p.Y*zoom,
		(p.Z+pulsate)*zoom,
	)
	n2 := u.Noise.Eval3(
		(p.X+1000)*zoom,
		(p.Y+1000)*zoom,
		(p.Z+1000+pulsate)*zoom,
	)
	noiseValue := (n1 + n2) * 0.5

	blended := Lerp(
		Lerp(coreColor, midColor, math.Abs(noiseValue)),
		coronaColor,
		clamp01(noiseValue*0.5+0.5),
	)

	return MultiplyColor(blended, f.Intensity)
}

func shadeRocky(f *Fragment, u *Uniforms) Color {
	palette := []Color{
		RGB(245, 222, 179),
		RGB(222, 184, 135),
		RGB(210, 180, 140),
		RGB(188, 143, 143),
		RGB(205, 133, 63),
		RGB(139, 69, 19),
		RGB(160, 82, 45),
	}
	thresholds := []float64{0.6, 0.4, 0.2, 0.0, -0.2, -0.4}

	p := math3d.V3(f.Position.X, f.Position.Y, f.Depth)

	t := float64(u.Time) * 0.01
	pulsate := math.Sin(t*0.5) * 0.1

	const zoom = 1000.0
	n1 := u.Noise.Eval3(
		(p.X+pulsate)*zoom,
		(p.Y+pulsate)*zoom,
		p.Z*zoom+t,
	)
	n2 := u.Noise.Eval3(
		(p.X+1000+pulsate)*zoom,
		(p.Y+1000+pulsate)*zoom,
		p.Z*zoom+t,
	)
	noiseValue := (n1 + n2) * 0.5

	base := palette[len(palette)-1]
	for i, th := range thresholds {
		if noiseValue > th {
			base = palette[i]
			break
		}
	}

	// This surface keys its relief off its own slanted light instead of
	// the pipeline's head-on light.
	rockyLight := math3d.V3(1, 1, 0.5).Normalize()
	diffuse := math.Max(0, rockyLight.Dot(f.Normal))

	final := MultiplyColor(base, 0.6+0.4*diffuse)

	return MultiplyColor(final, f.Intensity)
}

func shadeGasGiant(f *Fragment, u *Uniforms) Color {
	cloudColor := RGB(255, 255, 255)
	fogColor := RGB(120, 120, 120)

	p := math3d.V3(f.Position.X, f.Position.Y, f.Depth)

	t := float64(u.Time) * 0.01
	pulsate := math.Sin(t*0.3) * 0.5

	const zoom = 200.0
	n1 := u.Noise.Eval3(
		(p.X+pulsate)*zoom,
		(p.Y+pulsate)*zoom,
		p.Z*zoom+t,
	)
	n2 := u.Noise.Eval3(
		(p.X-pulsate)*zoom,
		(p.Y-pulsate)*zoom,
		p.Z*zoom-t,
	)
	noiseValue := (n1 + n2) * 0.5

	gradient := clamp01(1 - math.Abs(p.Y))

	final := Lerp(
		Lerp(cloudColor, fogColor, math.Abs(noiseValue)),
		fogColor,
		1-gradient,
	)

	return MultiplyColor(final, f.Intensity)
}

func shadeClay(f *Fragment, u *Uniforms) Color {
	c1 := RGB(173, 216, 230)
	c2 := RGB(135, 206, 250)
	c3 := RGB(70, 130, 180)
	c4 := RGB(30, 144, 255)
	c5 := RGB(0, 105, 148)

	p := math3d.V3(f.Position.X, f.Position.Y, f.Depth)

	t := float64(u.Time) * 0.02
	pulsate := math.Sin(t*0.3) * 0.3

	const zoom = 500.0
	n1 := u.Noise.Eval3(
		(p.X+pulsate)*zoom,
		(p.Y+pulsate)*zoom,
		p.Z*zoom+t,
	)
	n2 := u.Noise.Eval3(
		(p.X-pulsate)*zoom,
		(p.Y-pulsate)*zoom,
		p.Z*zoom-t,
	)
	noiseValue := (n1 + n2) * 0.5

	gradient := clamp01(1 - math.Abs(p.Y))

	var base Color
	switch {
	case noiseValue > 0.4:
		base = c1
	case noiseValue > 0.2:
		base = c2
	case noiseValue > 0.0:
		base = c3
	case noiseValue > -0.2:
		base = c4
	default:
		base = c5
	}

	final := Lerp(base, c5, 1-gradient)

	return MultiplyColor(final, f.Intensity)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
