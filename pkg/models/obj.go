package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/orrery/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file. Positions, normals and texture
// coordinates are read; material libraries and groups are ignored.
// Polygon faces are fan-triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))

	var positions []math3d.Vec3
	var normals []math3d.Vec3
	var uvs []math3d.Vec2

	// OBJ indexes positions, normals and UVs independently; the mesh
	// wants one vertex per unique combination.
	vertexCache := make(map[string]int)

	resolveVertex := func(spec string) (int, error) {
		if idx, ok := vertexCache[spec]; ok {
			return idx, nil
		}

		var v MeshVertex
		parts := strings.Split(spec, "/")

		pi, err := objIndex(parts[0], len(positions))
		if err != nil {
			return 0, fmt.Errorf("vertex %q: %w", spec, err)
		}
		v.Position = positions[pi]

		if len(parts) > 1 && parts[1] != "" {
			ti, err := objIndex(parts[1], len(uvs))
			if err != nil {
				return 0, fmt.Errorf("vertex %q: %w", spec, err)
			}
			v.UV = uvs[ti]
		}
		if len(parts) > 2 && parts[2] != "" {
			ni, err := objIndex(parts[2], len(normals))
			if err != nil {
				return 0, fmt.Errorf("vertex %q: %w", spec, err)
			}
			v.Normal = normals[ni]
		}

		idx := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, v)
		vertexCache[spec] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: short vt", lineNo)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vv, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uvs = append(uvs, math3d.V2(u, vv))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with fewer than 3 vertices", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				vi, err := resolveVertex(spec)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, vi)
			}
			// Fan triangulation
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{idx[0], idx[i], idx[i+1]},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if len(normals) == 0 {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()

	return mesh, nil
}

// objIndex converts a 1-based (possibly negative) OBJ index into a
// 0-based slice index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range", s)
	}
	return i, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Zero3(), fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var out [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Zero3(), err
		}
		out[i] = v
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}
