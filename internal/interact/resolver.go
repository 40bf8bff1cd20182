package interact

import (
	"github.com/Faultbox/scenepick/internal/engine/picking"
	"github.com/Faultbox/scenepick/internal/scene"
)

// DefaultTarget is the entity name the soldier demo reacts to.
const DefaultTarget = "Soldier"

// IsDecoration reports whether n is scene furniture that clicks pass
// through: the ground plane (by name) or a grid helper (by kind).
func IsDecoration(n *scene.Node) bool {
	return n.Name == scene.GroundName || n.Kind == scene.KindGridHelper
}

// Resolver maps hit records to a named entity.
type Resolver struct {
	Target string
	Ignore func(*scene.Node) bool
}

// NewResolver returns a resolver for target that ignores decorations.
func NewResolver(target string) Resolver {
	return Resolver{Target: target, Ignore: IsDecoration}
}

func (r Resolver) ignored(n *scene.Node) bool {
	return r.Ignore != nil && r.Ignore(n)
}

// Filter returns the hits whose nodes are not ignored, in input order.
func (r Resolver) Filter(hits []picking.Hit) []picking.Hit {
	out := make([]picking.Hit, 0, len(hits))
	for _, h := range hits {
		if h.Node == nil || r.ignored(h.Node) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// First returns the node of the first hit that is not ignored.
func (r Resolver) First(hits []picking.Hit) (*scene.Node, bool) {
	for _, h := range hits {
		if h.Node != nil && !r.ignored(h.Node) {
			return h.Node, true
		}
	}
	return nil, false
}

// Resolve walks from node up through its ancestors and returns the first
// one named Target, node itself included.
func (r Resolver) Resolve(node *scene.Node) (*scene.Node, bool) {
	target, _ := r.walk(node)
	return target, target != nil
}

// walk returns the match and the number of nodes examined, which is at most
// node.Depth()+1.
func (r Resolver) walk(node *scene.Node) (*scene.Node, int) {
	steps := 0
	for n := node; n != nil; n = n.Parent() {
		steps++
		if n.Name == r.Target {
			return n, steps
		}
	}
	return nil, steps
}

// ResolveHits filters hits, takes the nearest remaining node and resolves
// it. Hits behind that node are never examined.
func (r Resolver) ResolveHits(hits []picking.Hit) (*scene.Node, bool) {
	first, ok := r.First(hits)
	if !ok {
		return nil, false
	}
	return r.Resolve(first)
}
