package scene

import (
	gomath "math"

	"github.com/Faultbox/scenepick/pkg/math"
)

// GroundName is the name given to ground planes built by NewGround.
const GroundName = "plane"

// NewScene creates an empty root node.
func NewScene() *Node {
	return New("Scene", KindGroup)
}

// NewGroup creates a node without geometry.
func NewGroup(name string) *Node {
	return New(name, KindGroup)
}

// NewMesh creates a hittable node with the given local bounds.
func NewMesh(name string, bounds Bounds) *Node {
	n := New(name, KindMesh)
	b := bounds
	n.Geometry = &b
	return n
}

// NewBox creates a mesh centred on its origin.
func NewBox(name string, width, height, depth float32) *Node {
	half := math.Vec3{X: width / 2, Y: height / 2, Z: depth / 2}
	return NewMesh(name, Bounds{Min: half.Scale(-1), Max: half})
}

// NewPlane creates a width x height plane authored in the XY plane.
func NewPlane(name string, width, height float32) *Node {
	n := New(name, KindPlane)
	n.Geometry = &Bounds{
		Min: math.Vec3{X: -width / 2, Y: -height / 2},
		Max: math.Vec3{X: width / 2, Y: height / 2},
	}
	return n
}

// NewGround creates a plane named GroundName laid flat on XZ.
func NewGround(size float32) *Node {
	n := NewPlane(GroundName, size, size)
	n.Rotation = math.QuatFromAxisAngle(math.Vec3{X: 1}, -gomath.Pi/2)
	return n
}

// NewGridHelper creates a size x size line grid on XZ. It carries flat
// bounds so rays hit it the way they hit line geometry.
func NewGridHelper(size float32, divisions int) *Node {
	n := New("", KindGridHelper)
	n.Geometry = &Bounds{
		Min: math.Vec3{X: -size / 2, Z: -size / 2},
		Max: math.Vec3{X: size / 2, Z: size / 2},
	}
	n.Divisions = divisions
	n.Color = [3]float32{0.53, 0.53, 0.53}
	return n
}

// NewAmbientLight creates a light node with no geometry.
func NewAmbientLight(color [3]float32, intensity float32) *Node {
	n := New("", KindLight)
	n.Color = color
	n.Intensity = intensity
	return n
}

// NewSkybox creates a cube enclosing the scene. Skyboxes are drawn but
// carry no geometry for picking; a click from inside would always hit it.
func NewSkybox(size float32) *Node {
	n := New("skybox", KindSkybox)
	n.Scale = math.Vec3{X: size, Y: size, Z: size}
	return n
}
