package assets

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/scenepick/internal/animation"
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

var (
	// ErrNoScene is returned for documents without a usable scene.
	ErrNoScene = errors.New("assets: document has no scene")
	// ErrClipNotFound is returned by FindClip.
	ErrClipNotFound = errors.New("assets: clip not found")
)

const positionAttr = "POSITION"

var identity64 = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// Model is a converted glTF scene.
type Model struct {
	Root  *scene.Node
	Clips []*animation.Clip
}

// FindClip returns the clip with the given name.
func (m *Model) FindClip(name string) (*animation.Clip, error) {
	for _, c := range m.Clips {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrClipNotFound, name)
}

// FromDocument converts the document's default scene into a group node
// named name holding the scene's root nodes, plus one clip per animation.
func FromDocument(doc *gltf.Document, name string) (*Model, error) {
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
		return nil, ErrNoScene
	}

	root := scene.NewGroup(name)
	seen := make(map[int]bool)
	for _, idx := range doc.Scenes[sceneIdx].Nodes {
		n, err := convertNode(doc, idx, seen)
		if err != nil {
			return nil, err
		}
		if err := root.Add(n); err != nil {
			return nil, err
		}
	}

	clips := make([]*animation.Clip, 0, len(doc.Animations))
	for i, a := range doc.Animations {
		clip, err := convertAnimation(doc, a)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		clips = append(clips, clip)
	}

	return &Model{Root: root, Clips: clips}, nil
}

func convertNode(doc *gltf.Document, idx int, seen map[int]bool) (*scene.Node, error) {
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("node index %d out of range", idx)
	}
	if seen[idx] {
		return nil, fmt.Errorf("node %d referenced more than once", idx)
	}
	seen[idx] = true

	src := doc.Nodes[idx]
	n := scene.NewGroup(src.Name)
	applyTransform(n, src)

	if src.Mesh != nil {
		bounds, ok, err := meshBounds(doc, *src.Mesh)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", idx, err)
		}
		if ok {
			n.Kind = scene.KindMesh
			n.Geometry = &bounds
		}
	}

	for _, c := range src.Children {
		child, err := convertNode(doc, c, seen)
		if err != nil {
			return nil, err
		}
		if err := n.Add(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func applyTransform(n *scene.Node, src *gltf.Node) {
	if src.Matrix != [16]float64{} && src.Matrix != identity64 {
		n.Matrix = math.FromFloat64(src.Matrix)
		return
	}
	t := src.Translation
	n.Position = math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])}
	n.Rotation = math.QuatFromFloat64(src.Rotation)
	if s := src.Scale; s != [3]float64{} {
		n.Scale = math.Vec3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])}
	}
}

// meshBounds unions the POSITION accessor min/max of every primitive.
func meshBounds(doc *gltf.Document, meshIdx int) (scene.Bounds, bool, error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return scene.Bounds{}, false, fmt.Errorf("mesh index %d out of range", meshIdx)
	}

	var (
		bounds scene.Bounds
		found  bool
	)
	for _, prim := range doc.Meshes[meshIdx].Primitives {
		accIdx, ok := prim.Attributes[positionAttr]
		if !ok || accIdx < 0 || accIdx >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[accIdx]
		if len(acc.Min) < 3 || len(acc.Max) < 3 {
			continue
		}
		b := scene.Bounds{
			Min: math.Vec3{X: float32(acc.Min[0]), Y: float32(acc.Min[1]), Z: float32(acc.Min[2])},
			Max: math.Vec3{X: float32(acc.Max[0]), Y: float32(acc.Max[1]), Z: float32(acc.Max[2])},
		}
		if !found {
			bounds, found = b, true
			continue
		}
		bounds = bounds.Union(b)
	}
	return bounds, found, nil
}

// convertAnimation takes the clip duration from the largest keyframe time
// across the animation's samplers.
func convertAnimation(doc *gltf.Document, a *gltf.Animation) (*animation.Clip, error) {
	clip := &animation.Clip{Name: a.Name, Channels: len(a.Channels)}
	for _, s := range a.Samplers {
		if s.Input < 0 || s.Input >= len(doc.Accessors) {
			return nil, fmt.Errorf("sampler input %d out of range", s.Input)
		}
		acc := doc.Accessors[s.Input]
		if len(acc.Max) == 0 {
			continue
		}
		if d := float32(acc.Max[0]); d > clip.Duration {
			clip.Duration = d
		}
	}
	return clip, nil
}
