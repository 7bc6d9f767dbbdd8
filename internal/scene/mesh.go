// Package scene holds the viewer's geometry data model: the indexed
// triangle mesh, normal estimation and the expanded vertex stream that
// gets uploaded to the GPU.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is an ordered triple of 0-based indices into the position list.
// A repeated index denotes a degenerate, zero-area triangle and is tolerated.
type Triangle [3]uint32

// Mesh owns the position list and the triangle list. It is created once at
// load time and never mutated afterwards.
type Mesh struct {
	Positions []mgl32.Vec3
	Triangles []Triangle
}

// Centroid returns the arithmetic mean of all positions.
func (m *Mesh) Centroid() mgl32.Vec3 {
	var c mgl32.Vec3
	if len(m.Positions) == 0 {
		return c
	}
	for _, p := range m.Positions {
		c = c.Add(p)
	}
	return c.Mul(1.0 / float32(len(m.Positions)))
}

// BoundingRadius returns the max distance from the centroid to any position.
func (m *Mesh) BoundingRadius() float32 {
	centroid := m.Centroid()
	var max float32
	for _, p := range m.Positions {
		if d := p.Sub(centroid).Len(); d > max {
			max = d
		}
	}
	return max
}
