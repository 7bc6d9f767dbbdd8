package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NormalMode selects which normal estimation strategy the geometry stream
// carries. Chosen at preparation time, not per frame.
type NormalMode int

const (
	FaceNormalMode NormalMode = iota
	SmoothNormalMode
)

func (m NormalMode) String() string {
	if m == FaceNormalMode {
		return "face"
	}
	return "smooth"
}

// FloatsPerVertex is the interleaved stream layout: position(3), normal(3),
// color(3).
const FloatsPerVertex = 9

// Geometry is the duplicated-per-triangle vertex stream ready for upload,
// together with the framing scalars derived from the source mesh.
type Geometry struct {
	Stream      []float32
	VertexCount int
	Centroid    mgl32.Vec3
	Radius      float32
}

// Build expands the indexed mesh into a flat stream: three output vertices
// per triangle, each pairing the corner position with the normal selected by
// the active strategy. The derived color channel is abs(normal), used by the
// normal visualization shading mode.
//
// Deterministic: the same mesh and mode always produce a bit-identical
// stream.
func Build(m *Mesh, mode NormalMode) *Geometry {
	geom := &Geometry{
		Stream:      make([]float32, 0, len(m.Triangles)*3*FloatsPerVertex),
		VertexCount: len(m.Triangles) * 3,
		Centroid:    m.Centroid(),
		Radius:      m.BoundingRadius(),
	}

	var faceNormals, vertexNormals []mgl32.Vec3
	if mode == FaceNormalMode {
		faceNormals = m.FaceNormals()
	} else {
		vertexNormals = m.SmoothNormals()
	}

	for i, tri := range m.Triangles {
		for _, idx := range tri {
			var n mgl32.Vec3
			if mode == FaceNormalMode {
				n = faceNormals[i]
			} else {
				n = vertexNormals[idx]
			}
			p := m.Positions[idx]
			geom.Stream = append(geom.Stream,
				p.X(), p.Y(), p.Z(),
				n.X(), n.Y(), n.Z(),
				abs(n.X()), abs(n.Y()), abs(n.Z()),
			)
		}
	}
	return geom
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
