// Package scene provides the hierarchical scene graph shared by the demos,
// the picking code and the renderer.
package scene

import (
	"errors"

	"github.com/Faultbox/scenepick/pkg/math"
)

// Kind tags what a node represents. Picking and rendering switch on it
// instead of type assertions.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindPlane
	KindGridHelper
	KindLight
	KindSkybox
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindPlane:
		return "plane"
	case KindGridHelper:
		return "grid"
	case KindLight:
		return "light"
	case KindSkybox:
		return "skybox"
	default:
		return "unknown"
	}
}

var (
	// ErrCycle is returned when adding a child would make a node its own ancestor.
	ErrCycle = errors.New("scene: adding child would create a cycle")
	// ErrNilChild is returned when adding a nil child.
	ErrNilChild = errors.New("scene: nil child")
)

// Bounds is an axis-aligned box in some coordinate space.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Union returns the smallest box enclosing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Transform returns the axis-aligned box enclosing all eight corners of b
// transformed by m.
func (b Bounds) Transform(m math.Mat4) Bounds {
	var out Bounds
	for i := 0; i < 8; i++ {
		corner := math.Vec3{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z}
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		p := m.TransformVec3(corner)
		if i == 0 {
			out = Bounds{Min: p, Max: p}
			continue
		}
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}

// Node is one entry in the scene graph. The parent link and the parent's
// children slice are only ever changed together through Add and Remove.
type Node struct {
	Name    string
	Kind    Kind
	Visible bool

	// Local transform. Matrix, when non-zero, replaces the TRS fields.
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Matrix   math.Mat4

	// Geometry holds local-space bounds; nil for nodes that cannot be hit.
	Geometry *Bounds

	Color     [3]float32
	Intensity float32 // lights
	Divisions int     // grid helpers

	parent   *Node
	children []*Node
}

// New creates a visible node with an identity transform.
func New(name string, kind Kind) *Node {
	return &Node{
		Name:     name,
		Kind:     kind,
		Visible:  true,
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Color:    [3]float32{1, 1, 1},
	}
}

// Parent returns the parent node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the ordered child list. Callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Add appends child to n, detaching it from any previous parent first.
func (n *Node) Add(child *Node) error {
	if child == nil {
		return ErrNilChild
	}
	if child.IsAncestorOf(n) {
		return ErrCycle
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// MustAdd is Add for scene construction code where a failure is a bug.
func (n *Node) MustAdd(children ...*Node) *Node {
	for _, c := range children {
		if err := n.Add(c); err != nil {
			panic(err)
		}
	}
	return n
}

// Remove detaches child from n. Returns false if child is not a child of n.
func (n *Node) Remove(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	n.removeChild(child)
	child.parent = nil
	return true
}

// RemoveFromParent detaches n from its parent. No-op at the root.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// IsAncestorOf reports whether n is node itself or one of its ancestors.
func (n *Node) IsAncestorOf(node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Root returns the top of n's tree.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of parent links between n and its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() math.Mat4 {
	if !n.Matrix.IsZero() {
		return n.Matrix
	}
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix returns the node's transform relative to its root.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// WorldBounds returns the node's geometry bounds in root space.
// ok is false for nodes without geometry.
func (n *Node) WorldBounds() (b Bounds, ok bool) {
	if n.Geometry == nil {
		return Bounds{}, false
	}
	return n.Geometry.Transform(n.WorldMatrix()), true
}

// Traverse visits n and its descendants depth-first in child order.
// Returning false from fn skips that node's subtree.
func (n *Node) Traverse(fn func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(node) {
			continue
		}
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
}

// Find returns the first node in n's subtree with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Traverse(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Path returns the names from the root down to n, for logs.
func (n *Node) Path() []string {
	var names []string
	for p := n; p != nil; p = p.parent {
		names = append(names, p.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}
