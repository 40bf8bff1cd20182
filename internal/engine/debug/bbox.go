// Package debug builds line geometry for wireframe views of a scene graph
// and writes framebuffer captures.
package debug

import (
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Vertex is one line endpoint, position then color.
type Vertex struct {
	X, Y, Z float32
	R, G, B float32
}

// BoxVertexCount is the number of vertices in one box wireframe (12 edges x 2).
const BoxVertexCount = 24

// boxEdges indexes the corners produced by corners(), bottom face first.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical
}

// corners returns the 8 corners of b; bit 0 picks X, bit 1 Z, bit 2 Y.
func corners(b scene.Bounds) [8]math.Vec3 {
	var out [8]math.Vec3
	for i := range out {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Z = b.Max.Z
		}
		if i&4 != 0 {
			c.Y = b.Max.Y
		}
		out[i] = c
	}
	return out
}

// BoxLines appends the wireframe of an axis-aligned box.
func BoxLines(dst []Vertex, b scene.Bounds, color [3]float32) []Vertex {
	return OrientedBoxLines(dst, b, math.Identity(), color)
}

// OrientedBoxLines appends the wireframe of local-space box b transformed
// by m. Edges stay attached to their corners, so rotation is preserved.
func OrientedBoxLines(dst []Vertex, b scene.Bounds, m math.Mat4, color [3]float32) []Vertex {
	c := corners(b)
	for i := range c {
		c[i] = m.TransformVec3(c[i])
	}
	for _, e := range boxEdges {
		dst = append(dst, vertex(c[e[0]], color), vertex(c[e[1]], color))
	}
	return dst
}

// Pad grows b by amount on every side.
func Pad(b scene.Bounds, amount float32) scene.Bounds {
	p := math.Vec3{X: amount, Y: amount, Z: amount}
	return scene.Bounds{Min: b.Min.Sub(p), Max: b.Max.Add(p)}
}

func vertex(p math.Vec3, color [3]float32) Vertex {
	return Vertex{X: p.X, Y: p.Y, Z: p.Z, R: color[0], G: color[1], B: color[2]}
}
