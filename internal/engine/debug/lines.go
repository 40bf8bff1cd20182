package debug

import (
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Line colors used by SceneLines.
var (
	MeshColor   = [3]float32{0.9, 0.75, 0.3}
	PlaneColor  = [3]float32{0.3, 0.35, 0.4}
	SkyboxColor = [3]float32{0.35, 0.55, 0.9}
)

// GridLines appends a size x size grid on the XZ plane of m, with
// divisions cells per side. The centre lines use a brighter color.
func GridLines(dst []Vertex, size float32, divisions int, m math.Mat4, color [3]float32) []Vertex {
	if divisions <= 0 || size <= 0 {
		return dst
	}
	half := size / 2
	step := size / float32(divisions)
	centre := [3]float32{color[0] * 1.5, color[1] * 1.5, color[2] * 1.5}

	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		c := color
		if 2*i == divisions {
			c = centre
		}
		dst = append(dst,
			vertex(m.TransformVec3(math.Vec3{X: k, Z: -half}), c),
			vertex(m.TransformVec3(math.Vec3{X: k, Z: half}), c),
			vertex(m.TransformVec3(math.Vec3{X: -half, Z: k}), c),
			vertex(m.TransformVec3(math.Vec3{X: half, Z: k}), c),
		)
	}
	return dst
}

// GridVertexCount returns how many vertices GridLines emits.
func GridVertexCount(divisions int) int {
	if divisions <= 0 {
		return 0
	}
	return 4 * (divisions + 1)
}

// SceneLines appends a wireframe of every visible node under roots:
// grids as grids, meshes and planes as world-space boxes, skyboxes as
// rotated unit cubes. Invisible nodes hide their subtree.
func SceneLines(dst []Vertex, roots []*scene.Node) []Vertex {
	for _, root := range roots {
		root.Traverse(func(n *scene.Node) bool {
			if !n.Visible {
				return false
			}
			switch n.Kind {
			case scene.KindGridHelper:
				if n.Geometry != nil {
					size := n.Geometry.Max.X - n.Geometry.Min.X
					dst = GridLines(dst, size, n.Divisions, n.WorldMatrix(), n.Color)
				}
			case scene.KindSkybox:
				unit := scene.Bounds{
					Min: math.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
					Max: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
				}
				dst = OrientedBoxLines(dst, unit, n.WorldMatrix(), SkyboxColor)
			case scene.KindPlane:
				if n.Geometry != nil {
					dst = OrientedBoxLines(dst, *n.Geometry, n.WorldMatrix(), PlaneColor)
				}
			case scene.KindMesh:
				if b, ok := n.WorldBounds(); ok {
					dst = BoxLines(dst, b, MeshColor)
				}
			}
			return true
		})
	}
	return dst
}
