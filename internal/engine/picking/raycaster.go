package picking

import (
	"cmp"
	gomath "math"
	"slices"

	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Hit is one intersected node.
type Hit struct {
	Node     *scene.Node
	Distance float32   // along the ray from its origin
	Point    math.Vec3 // world-space entry point
}

// Raycaster collects every node with geometry that a ray passes through.
type Raycaster struct {
	Near float32
	Far  float32
}

// NewRaycaster returns a raycaster with an unbounded range.
func NewRaycaster() *Raycaster {
	return &Raycaster{Near: 0, Far: gomath.MaxFloat32}
}

// IntersectObject tests node, and its descendants when recursive is set.
func (rc *Raycaster) IntersectObject(ray Ray, node *scene.Node, recursive bool) []Hit {
	hits := rc.collect(ray, node, recursive, nil)
	sortHits(hits)
	return hits
}

// IntersectObjects tests every root and returns hits sorted nearest first.
// Occluded nodes are included; equal distances keep traversal order.
func (rc *Raycaster) IntersectObjects(ray Ray, roots []*scene.Node, recursive bool) []Hit {
	var hits []Hit
	for _, root := range roots {
		hits = rc.collect(ray, root, recursive, hits)
	}
	sortHits(hits)
	return hits
}

func (rc *Raycaster) collect(ray Ray, root *scene.Node, recursive bool, hits []Hit) []Hit {
	if root == nil {
		return hits
	}
	root.Traverse(func(n *scene.Node) bool {
		if !n.Visible {
			return false
		}
		if b, ok := n.WorldBounds(); ok {
			if t, hit := ray.IntersectAABB(FromBounds(b)); hit && t >= rc.Near && t <= rc.Far {
				hits = append(hits, Hit{Node: n, Distance: t, Point: ray.At(t)})
			}
		}
		return recursive
	})
	return hits
}

func sortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}
