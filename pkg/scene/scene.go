// Package scene holds the ordered set of visual nodes a renderer draws.
// Attachment order is stacking order: later nodes draw above earlier ones.
package scene

import "SlideBox/pkg/layout"

// Node is a single visual element with an animatable frame and opacity.
type Node struct {
	name    string
	frame   layout.Rect
	opacity float64
}

// NewNode returns a fully opaque node with a zero frame.
func NewNode(name string) *Node {
	return &Node{name: name, opacity: 1}
}

// Name returns the node's identifier.
func (n *Node) Name() string { return n.name }

// Frame returns the node's current frame.
func (n *Node) Frame() layout.Rect { return n.frame }

// SetFrame moves the node.
func (n *Node) SetFrame(r layout.Rect) { n.frame = r }

// Opacity returns the node's opacity in [0,1].
func (n *Node) Opacity() float64 { return n.opacity }

// SetOpacity sets the node's opacity, clamped to [0,1].
func (n *Node) SetOpacity(o float64) {
	if o < 0 {
		o = 0
	}
	if o > 1 {
		o = 1
	}
	n.opacity = o
}

// Scene is the ordered collection of attached nodes.
type Scene struct {
	nodes []*Node
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Nodes returns the attached nodes in stacking order. The returned slice
// is a copy; mutating it does not affect the scene.
func (s *Scene) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Len returns the number of attached nodes.
func (s *Scene) Len() int { return len(s.nodes) }

// Contains reports whether n is attached.
func (s *Scene) Contains(n *Node) bool {
	for _, m := range s.nodes {
		if m == n {
			return true
		}
	}
	return false
}

// Attach inserts n at the given stacking index. Out-of-range indices
// append to the top. Attaching an already-attached node is a no-op.
func (s *Scene) Attach(n *Node, index int) {
	if n == nil || s.Contains(n) {
		return
	}
	if index < 0 || index > len(s.nodes) {
		index = len(s.nodes)
	}
	s.nodes = append(s.nodes, nil)
	copy(s.nodes[index+1:], s.nodes[index:])
	s.nodes[index] = n
}

// SetOrder restacks the attached nodes to match order. Entries that are
// nil, duplicated, or not attached are skipped; attached nodes missing
// from order keep their relative order beneath the restacked ones.
func (s *Scene) SetOrder(order []*Node) {
	seen := make(map[*Node]bool, len(order))
	top := make([]*Node, 0, len(s.nodes))
	for _, n := range order {
		if n == nil || seen[n] || !s.Contains(n) {
			continue
		}
		seen[n] = true
		top = append(top, n)
	}
	if len(top) == len(s.nodes) {
		s.nodes = top
		return
	}
	next := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		if !seen[n] {
			next = append(next, n)
		}
	}
	s.nodes = append(next, top...)
}

// Detach removes n from the scene. Detaching an unattached node is a no-op.
func (s *Scene) Detach(n *Node) {
	for i, m := range s.nodes {
		if m == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}
