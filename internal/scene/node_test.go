package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/scenepick/pkg/math"
)

func TestAddSetsParent(t *testing.T) {
	root := NewScene()
	child := NewGroup("child")

	if err := root.Add(child); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if child.Parent() != root {
		t.Error("child.Parent() should be root")
	}
	if len(root.Children()) != 1 || root.Children()[0] != child {
		t.Errorf("root children = %v, want [child]", root.Children())
	}
}

func TestAddReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")

	a.MustAdd(child)
	b.MustAdd(child)

	if child.Parent() != b {
		t.Error("child should be reparented to b")
	}
	if len(a.Children()) != 0 {
		t.Errorf("a should have no children after reparent, got %d", len(a.Children()))
	}
	if len(b.Children()) != 1 {
		t.Errorf("b should have 1 child, got %d", len(b.Children()))
	}
}

func TestAddRejectsCycle(t *testing.T) {
	root := NewGroup("root")
	mid := NewGroup("mid")
	leaf := NewGroup("leaf")
	root.MustAdd(mid)
	mid.MustAdd(leaf)

	tests := []struct {
		name   string
		parent *Node
		child  *Node
	}{
		{"self", root, root},
		{"root under leaf", leaf, root},
		{"mid under leaf", leaf, mid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parent.Add(tt.child); !errors.Is(err, ErrCycle) {
				t.Errorf("Add() error = %v, want ErrCycle", err)
			}
		})
	}

	if leaf.Parent() != mid || mid.Parent() != root {
		t.Error("rejected Add should leave the tree unchanged")
	}
}

func TestAddNil(t *testing.T) {
	if err := NewScene().Add(nil); !errors.Is(err, ErrNilChild) {
		t.Errorf("Add(nil) error = %v, want ErrNilChild", err)
	}
}

func TestRemove(t *testing.T) {
	root := NewScene()
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	root.MustAdd(a, b, c)

	if !root.Remove(b) {
		t.Fatal("Remove(b) should succeed")
	}
	if b.Parent() != nil {
		t.Error("removed node should have no parent")
	}
	children := root.Children()
	if len(children) != 2 || children[0] != a || children[1] != c {
		t.Errorf("children after remove = %v, want [a c]", children)
	}
	if root.Remove(b) {
		t.Error("removing a non-child should return false")
	}

	c.RemoveFromParent()
	if len(root.Children()) != 1 {
		t.Errorf("RemoveFromParent: root has %d children, want 1", len(root.Children()))
	}
}

func TestDepthAndRoot(t *testing.T) {
	root := NewScene()
	a := NewGroup("a")
	b := NewGroup("b")
	root.MustAdd(a)
	a.MustAdd(b)

	if b.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", b.Depth())
	}
	if b.Root() != root {
		t.Error("Root() should return scene root")
	}
	if root.Depth() != 0 {
		t.Errorf("root Depth() = %d, want 0", root.Depth())
	}
}

func TestTraverseOrderAndSkip(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	a1 := NewGroup("a1")
	b := NewGroup("b")
	root.MustAdd(a, b)
	a.MustAdd(a1)

	var visited []string
	root.Traverse(func(n *Node) bool {
		visited = append(visited, n.Name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, visited[i], want[i])
		}
	}

	visited = visited[:0]
	root.Traverse(func(n *Node) bool {
		visited = append(visited, n.Name)
		return n != a
	})
	for _, name := range visited {
		if name == "a1" {
			t.Error("skipped subtree should not be visited")
		}
	}
}

func TestFind(t *testing.T) {
	root := NewScene()
	soldier := NewGroup("Soldier")
	body := NewBox("Body", 1, 1, 1)
	root.MustAdd(soldier)
	soldier.MustAdd(body)

	if got := root.Find("Body"); got != body {
		t.Errorf("Find(Body) = %v, want body", got)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
}

func TestPath(t *testing.T) {
	root := NewScene()
	soldier := NewGroup("Soldier")
	body := NewBox("Body", 1, 1, 1)
	root.MustAdd(soldier)
	soldier.MustAdd(body)

	got := body.Path()
	want := []string{"Scene", "Soldier", "Body"}
	if len(got) != len(want) {
		t.Fatalf("Path() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Path()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWorldMatrixChain(t *testing.T) {
	root := NewScene()
	root.Position = math.Vec3{X: 10}
	child := NewGroup("child")
	child.Position = math.Vec3{Y: 5}
	child.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	leaf := NewGroup("leaf")
	leaf.Position = math.Vec3{Z: 1}
	root.MustAdd(child)
	child.MustAdd(leaf)

	got := leaf.WorldMatrix().TransformVec3(math.Vec3{})
	want := math.Vec3{X: 10, Y: 5, Z: 2}
	if got != want {
		t.Errorf("leaf world origin = %v, want %v", got, want)
	}
}

func TestWorldBoundsGround(t *testing.T) {
	ground := NewGround(100)
	b, ok := ground.WorldBounds()
	if !ok {
		t.Fatal("ground should have geometry")
	}
	const eps = 0.001
	if abs(b.Min.X+50) > eps || abs(b.Max.X-50) > eps {
		t.Errorf("ground X extent = [%f, %f], want [-50, 50]", b.Min.X, b.Max.X)
	}
	if abs(b.Min.Z+50) > eps || abs(b.Max.Z-50) > eps {
		t.Errorf("ground Z extent = [%f, %f], want [-50, 50]", b.Min.Z, b.Max.Z)
	}
	if abs(b.Min.Y) > eps || abs(b.Max.Y) > eps {
		t.Errorf("ground should be flat at Y=0, got [%f, %f]", b.Min.Y, b.Max.Y)
	}
}

func TestWorldBoundsNoGeometry(t *testing.T) {
	if _, ok := NewGroup("g").WorldBounds(); ok {
		t.Error("group should have no world bounds")
	}
}

func TestKindString(t *testing.T) {
	if KindGridHelper.String() != "grid" {
		t.Errorf("KindGridHelper.String() = %s", KindGridHelper.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %s", Kind(99).String())
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
