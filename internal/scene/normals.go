package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// degenerateEpsilon is the squared cross-product length below which a
// triangle is treated as zero-area (collinear points).
const degenerateEpsilon = 1e-12

// FaceNormal computes the unit normal of the triangle (p0,p1,p2) from the
// cross product of its edges. Returns the zero vector for degenerate
// triangles instead of dividing by zero.
func FaceNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	cross := p1.Sub(p0).Cross(p2.Sub(p0))
	if cross.LenSqr() < degenerateEpsilon {
		return mgl32.Vec3{}
	}
	return cross.Normalize()
}

// FaceNormals computes one normal per triangle. Winding order of the input
// faces determines the outward-facing sign; no consistency repair is done
// across inconsistently wound faces.
func (m *Mesh) FaceNormals() []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(m.Triangles))
	for i, tri := range m.Triangles {
		normals[i] = FaceNormal(m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]])
	}
	return normals
}

// SmoothNormals averages the face normals of all triangles incident to each
// position and renormalizes. Positions with no incident triangles keep the
// zero vector.
func (m *Mesh) SmoothNormals() []mgl32.Vec3 {
	faceNormals := m.FaceNormals()
	normals := make([]mgl32.Vec3, len(m.Positions))
	counts := make([]int, len(m.Positions))

	for i, tri := range m.Triangles {
		for _, idx := range tri {
			normals[idx] = normals[idx].Add(faceNormals[i])
			counts[idx]++
		}
	}

	for i := range normals {
		if counts[i] == 0 {
			continue
		}
		averaged := normals[i].Mul(1.0 / float32(counts[i]))
		if averaged.LenSqr() < degenerateEpsilon {
			normals[i] = mgl32.Vec3{}
			continue
		}
		normals[i] = averaged.Normalize()
	}
	return normals
}
