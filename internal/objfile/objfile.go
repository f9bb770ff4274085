// Package objfile loads the Wavefront OBJ subset the renderer consumes:
// v, vt, vn and f records, with faces fan-triangulated into a flat vertex
// array ready for the pipeline.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/geometry"
)

// Defaults for faces that reference no normal or texture coordinate.
var (
	defaultNormal    = mgl32.Vec3{0, 1, 0}
	defaultTexCoords = mgl32.Vec2{0, 0}
)

// Load reads an OBJ file and returns the flattened vertex array, three
// consecutive vertices per triangle. Elevation is taken from the Y
// coordinate of each position.
func Load(path string) ([]geometry.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()

	verts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: parse %s: %w", path, err)
	}
	return verts, nil
}

// Parse reads OBJ data from r. Texture V coordinates are stored flipped
// (1 − v), matching the convention the source format expects.
func Parse(r io.Reader) ([]geometry.Vertex, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		texCoords []mgl32.Vec2
		verts     []geometry.Vertex
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "vt":
			t, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			texCoords = append(texCoords, mgl32.Vec2{t.X(), 1 - t.Y()})

		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: face with %d corners", lineNo, len(corners))
			}
			// Fan triangulation.
			for i := 1; i+1 < len(corners); i++ {
				for _, ref := range []string{corners[0], corners[i], corners[i+1]} {
					v, err := resolveCorner(ref, positions, normals, texCoords)
					if err != nil {
						return nil, fmt.Errorf("line %d: %w", lineNo, err)
					}
					verts = append(verts, v)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return verts, nil
}

// resolveCorner turns an "i", "i/j", "i//k" or "i/j/k" face reference into
// a vertex, applying the defaults when normal or texcoord are absent.
func resolveCorner(ref string, positions, normals []mgl32.Vec3, texCoords []mgl32.Vec2) (geometry.Vertex, error) {
	parts := strings.Split(ref, "/")

	pi, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return geometry.Vertex{}, fmt.Errorf("face position ref %q: %w", ref, err)
	}
	position := positions[pi]

	texCoord := defaultTexCoords
	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(texCoords))
		if err != nil {
			return geometry.Vertex{}, fmt.Errorf("face texcoord ref %q: %w", ref, err)
		}
		texCoord = texCoords[ti]
	}

	normal := defaultNormal
	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return geometry.Vertex{}, fmt.Errorf("face normal ref %q: %w", ref, err)
		}
		normal = normals[ni]
	}

	return geometry.NewVertex(position, normal, texCoord, position.Y()), nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a
// 0-based slice index.
func resolveIndex(s string, length int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = length + n
	} else {
		n--
	}
	if n < 0 || n >= length {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, length)
	}
	return n, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("want 3 components, have %d", len(fields))
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(fields []string) (mgl32.Vec2, error) {
	if len(fields) < 2 {
		return mgl32.Vec2{}, fmt.Errorf("want 2 components, have %d", len(fields))
	}
	var v mgl32.Vec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec2{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
