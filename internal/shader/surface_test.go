package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
	"planet-renderer/internal/noise"
)

func litFragment() geometry.Fragment {
	return geometry.Fragment{
		Position:       mgl32.Vec2{10, 10},
		Intensity:      1,
		VertexPosition: mgl32.Vec3{0.3, 0.1, -0.2},
	}
}

func flatUniforms(level float32) *Uniforms {
	return &Uniforms{Noise: noise.Flat(level)}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil || s == nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("nebula"); err == nil {
		t.Fatal("unknown surface did not error")
	}
}

func TestEarthBands(t *testing.T) {
	tests := []struct {
		level float32
		want  color.Color
	}{
		{-0.5, color.New(0, 105, 148)}, // ocean
		{0.1, color.New(0, 191, 255)},  // shallow water
		{0.4, color.New(34, 139, 34)},  // land
		{0.7, color.New(139, 69, 19)},  // mountain, below snow line
		{0.9, color.New(255, 196, 146)}, // mountain + snow*0.5, saturating
	}
	for _, tt := range tests {
		got := Earth(litFragment(), flatUniforms(tt.level))
		if got != tt.want {
			t.Errorf("noise %v: got %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestEarthScalesByIntensity(t *testing.T) {
	frag := litFragment()
	frag.Intensity = 0.5

	got := Earth(frag, flatUniforms(-1))
	want := color.New(0, 105, 148).Scale(0.5)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMoonBands(t *testing.T) {
	tests := []struct {
		level float32
		want  color.Color
	}{
		{-0.5, color.New(169, 169, 169)},
		{0.0, color.New(211, 211, 211)},
		{0.2, color.White()},
		{0.5, color.New(240, 240, 240)},
	}
	for _, tt := range tests {
		got := Moon(litFragment(), flatUniforms(tt.level))
		if got != tt.want {
			t.Errorf("noise %v: got %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSunIgnoresIntensity(t *testing.T) {
	frag := litFragment()
	frag.Intensity = 0
	frag.VertexPosition = mgl32.Vec3{}

	// Radius 0 with flat noise 0 samples the core color exactly; zero
	// lighting intensity must not darken an emissive surface.
	got := Sun(frag, flatUniforms(0))
	if got != color.New(255, 230, 110) {
		t.Fatalf("core color = %v", got)
	}
}

func TestSurfacesDeterministic(t *testing.T) {
	u := &Uniforms{Noise: noise.Flat(0.3), Time: 42}
	frag := litFragment()

	for _, name := range Names() {
		s, _ := Lookup(name)
		first := s(frag, u)
		for i := 0; i < 3; i++ {
			if got := s(frag, u); got != first {
				t.Errorf("%s not deterministic: %v then %v", name, first, got)
			}
		}
	}
}

func TestGasGiantScalesByIntensity(t *testing.T) {
	frag := litFragment()
	frag.Intensity = 0

	if got := GasGiant(frag, flatUniforms(0.2)); !got.IsBlack() {
		t.Fatalf("unlit gas giant = %v, want black", got)
	}
}

func TestRockyUsesTint(t *testing.T) {
	// Flat noise 0 selects the mid band (120,105,90) multiplied by the
	// dust tint (236,222,208).
	got := Rocky(litFragment(), flatUniforms(0))
	want := color.New(120, 105, 90).BlendMultiply(color.New(236, 222, 208))
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
