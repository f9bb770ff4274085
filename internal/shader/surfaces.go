package shader

import (
	"math"
	"math/rand"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
)

// Earth shades an elevation-banded planet surface: ocean, shallow water,
// land and mountains with snow on the peaks, driven by a 2D noise sample
// over the object-space position.
func Earth(frag geometry.Fragment, u *Uniforms) color.Color {
	elevation := u.Noise.Sample(frag.VertexPosition.X()*10, frag.VertexPosition.Z()*10)

	const (
		oceanThreshold    = 0.0
		landThreshold     = 0.2
		mountainThreshold = 0.5
	)

	var (
		ocean        = color.New(0, 105, 148)
		shallowWater = color.New(0, 191, 255)
		land         = color.New(34, 139, 34)
		mountain     = color.New(139, 69, 19)
		snow         = color.White()
	)

	var c color.Color
	switch {
	case elevation <= oceanThreshold:
		c = ocean
	case elevation <= landThreshold:
		c = shallowWater
	case elevation <= mountainThreshold:
		c = land
	default:
		c = mountain
		if elevation > mountainThreshold+0.3 {
			c = c.Add(snow.Scale(0.5))
		}
	}

	return c.Scale(frag.Intensity)
}

// Moon shades a cratered surface: gray bands on a finer noise frequency
// than Earth.
func Moon(frag geometry.Fragment, u *Uniforms) color.Color {
	elevation := u.Noise.Sample(frag.VertexPosition.X()*20, frag.VertexPosition.Z()*20)

	const (
		lowThreshold    = -0.1
		mediumThreshold = 0.1
		highThreshold   = 0.3
	)

	var c color.Color
	switch {
	case elevation < lowThreshold:
		c = color.New(169, 169, 169)
	case elevation < mediumThreshold:
		c = color.New(211, 211, 211)
	case elevation < highThreshold:
		c = color.White() // crater floors
	default:
		c = color.New(240, 240, 240)
	}

	return c.Scale(frag.Intensity)
}

// Sun shades a radial star glow: hot core fading to a red rim, with a
// noise-driven halo that drifts over time. Self-luminous, so the lighting
// intensity is ignored.
func Sun(frag geometry.Fragment, u *Uniforms) color.Color {
	core := color.New(255, 230, 110)
	edge := color.New(255, 90, 0)

	radius := frag.VertexPosition.Len()
	halo := u.Noise.Sample(
		frag.VertexPosition.X()*4+u.Time*0.2,
		frag.VertexPosition.Z()*4,
	)

	t := radius + 0.15*halo
	c := core.Lerp(edge, t)

	// Flares past the nominal surface brighten additively.
	if t > 0.9 {
		c = c.Add(color.New(255, 160, 0).Scale((t - 0.9) * 0.5))
	}
	return c
}

// GasGiant shades latitude bands warped by noise, blended between a base
// and an accent color, with slow-moving cloud streaks on top.
func GasGiant(frag geometry.Fragment, u *Uniforms) color.Color {
	base := color.New(196, 148, 92)
	accent := color.New(140, 86, 52)
	cloud := color.New(236, 226, 204)

	warp := u.Noise.Sample(frag.VertexPosition.X()*3, frag.VertexPosition.Z()*3)
	band := float32(math.Sin(float64(frag.VertexPosition.Y()*6 + 2*warp)))

	c := base.Lerp(accent, (band+1)/2)

	streak := u.Noise.Sample(
		frag.VertexPosition.X()*8+u.Time*0.1,
		frag.VertexPosition.Z()*8,
	)
	if streak > 0.45 {
		c = c.Lerp(cloud, (streak-0.45)*1.5)
	}

	return c.Scale(frag.Intensity)
}

// Rocky shades a barren surface from two noise octaves, multiplied by a
// warm dust tint.
func Rocky(frag geometry.Fragment, u *Uniforms) color.Color {
	coarse := u.Noise.Sample(frag.VertexPosition.X()*15, frag.VertexPosition.Z()*15)
	fine := u.Noise.Sample(frag.VertexPosition.X()*40, frag.VertexPosition.Z()*40)
	elevation := 0.7*coarse + 0.3*fine

	var c color.Color
	switch {
	case elevation < -0.2:
		c = color.New(70, 60, 55)
	case elevation < 0.2:
		c = color.New(120, 105, 90)
	case elevation < 0.5:
		c = color.New(160, 140, 120)
	default:
		c = color.New(200, 190, 180)
	}

	c = c.BlendMultiply(color.New(236, 222, 208))
	return c.Scale(frag.Intensity)
}

// Fantasy mixes three colors by noise-derived weights and adds a sparse
// sparkle whose PRNG is reseeded from position×time, so the result is
// still deterministic for a fixed (fragment, uniforms) pair.
func Fantasy(frag geometry.Fragment, u *Uniforms) color.Color {
	base := color.New(90, 40, 130)
	accent := color.New(0, 200, 180)
	cloud := color.New(255, 120, 200)

	f1 := (u.Noise.Sample(frag.VertexPosition.X()*5, frag.VertexPosition.Z()*5) + 1) / 2
	f2 := (u.Noise.Sample(frag.VertexPosition.X()*12+100, frag.VertexPosition.Z()*12) + 1) / 2

	c := base.Lerp(accent, f1).Lerp(cloud, f2*f2*0.6)

	rng := rand.New(rand.NewSource(sparkleSeed(frag, u.Time)))
	if rng.Float32() < 0.002 {
		c = c.Add(color.White().Scale(0.8))
	}

	return c.Scale(frag.Intensity)
}

func sparkleSeed(frag geometry.Fragment, time float32) int64 {
	return int64(frag.Position.X())<<20 ^
		int64(frag.Position.Y())<<8 ^
		int64(time*31)
}
