// Package loader reads SMF mesh descriptions into a scene.Mesh.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"MeshView3D/internal/logger"
	"MeshView3D/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// LoadSMF parses a line-oriented SMF file: "v x y z" appends a vertex
// position, "f a b c" appends a triangle by 1-based vertex indices. Blank
// lines are skipped and lines with any other leading token are ignored, so
// richer formats still load. Authored normals or texture coordinates are
// never consumed; normals are always derived from geometry.
func LoadSMF(filename string) (*scene.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open mesh file: %w", err)
	}
	defer file.Close()

	mesh := &scene.Mesh{}
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			pos, err := parsePosition(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Positions = append(mesh.Positions, pos)
		case "f":
			tri, err := parseTriangle(parts[1:], len(mesh.Positions))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Triangles = append(mesh.Triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}

	logger.Log.Info("Mesh loaded",
		zap.String("path", filename),
		zap.Int("positions", len(mesh.Positions)),
		zap.Int("triangles", len(mesh.Triangles)))

	return mesh, nil
}

func parsePosition(parts []string) (mgl32.Vec3, error) {
	var pos mgl32.Vec3
	if len(parts) < 3 {
		return pos, fmt.Errorf("vertex line needs 3 coordinates, got %d", len(parts))
	}
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return pos, fmt.Errorf("invalid vertex value %q: %w", parts[i], err)
		}
		pos[i] = float32(val)
	}
	return pos, nil
}

// parseTriangle converts the 1-based on-disk indices to 0-based and checks
// them against the positions read so far. A repeated index within the
// triangle is tolerated (degenerate, zero-area triangle).
func parseTriangle(parts []string, positionCount int) (scene.Triangle, error) {
	var tri scene.Triangle
	if len(parts) < 3 {
		return tri, fmt.Errorf("face line needs 3 indices, got %d", len(parts))
	}
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return tri, fmt.Errorf("invalid face index %q: %w", parts[i], err)
		}
		if val == 0 || int(val) > positionCount {
			return tri, fmt.Errorf("face index %d out of range (have %d vertices)", val, positionCount)
		}
		tri[i] = uint32(val - 1)
	}
	return tri, nil
}
