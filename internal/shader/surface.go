package shader

import (
	"fmt"
	"sort"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
)

// Surface computes the final color for one fragment. Strategies are plain
// values so a renderer (or a test) can swap them freely; every strategy is
// deterministic given (fragment, uniforms).
type Surface func(frag geometry.Fragment, u *Uniforms) color.Color

var surfaces = map[string]Surface{
	"earth":   Earth,
	"moon":    Moon,
	"sun":     Sun,
	"gas":     GasGiant,
	"rocky":   Rocky,
	"fantasy": Fantasy,
}

// Lookup resolves a surface shader by its configuration name.
func Lookup(name string) (Surface, error) {
	s, ok := surfaces[name]
	if !ok {
		return nil, fmt.Errorf("shader: unknown surface %q (have %v)", name, Names())
	}
	return s, nil
}

// Names lists the registered surface shaders in sorted order.
func Names() []string {
	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
