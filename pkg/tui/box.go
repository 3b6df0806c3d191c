package tui

import (
	"SlideBox/pkg/layout"
	"SlideBox/pkg/scene"
	"SlideBox/pkg/transition"
)

// BoxState is the demo node's finite state domain.
type BoxState int

const (
	// StateFirst parks both boxes on the left.
	StateFirst BoxState = iota
	// StateSecond slides the mover right, fades the vanishing box out,
	// and attaches the badge.
	StateSecond
)

func (s BoxState) String() string {
	if s == StateSecond {
		return "second"
	}
	return "first"
}

// Other returns the opposite state.
func (s BoxState) Other() BoxState {
	if s == StateFirst {
		return StateSecond
	}
	return StateFirst
}

// Box dimensions in cells.
const (
	boxW   = 14
	boxH   = 5
	badgeW = 8
	badgeH = 3
	edgeX  = 2
	edgeY  = 1
)

// Boxes is the demo delegate: a mover box that slides across the canvas,
// a vanishing box that fades out in the second state, and a badge that
// only exists in the second state.
type Boxes struct {
	Mover    *scene.Node
	Vanisher *scene.Node
	Badge    *scene.Node

	// travel is the drag distance mapping to a full transition,
	// refreshed on every window resize.
	travel float64
}

// NewBoxes returns the demo delegate with its nodes.
func NewBoxes() *Boxes {
	return &Boxes{
		Mover:    scene.NewNode("mover"),
		Vanisher: scene.NewNode("vanisher"),
		Badge:    scene.NewNode("badge"),
		travel:   30,
	}
}

// SetTravel updates the full-transition drag distance from the canvas
// width.
func (b *Boxes) SetTravel(width float64) {
	b.travel = max(10, width/3)
}

// LayoutSpec returns the layout for a state. The first state is a plain
// padded row; the second pins the mover to the right edge with the badge
// tucked beneath it while the vanisher keeps its row position.
func (b *Boxes) LayoutSpec(cs layout.Constraints, state BoxState) layout.Element {
	if state == StateFirst {
		return layout.Inset{
			Top:  edgeY,
			Left: edgeX,
			Child: layout.HStack{
				Spacing: 2,
				Children: []layout.Element{
					layout.Box{Item: b.Mover, Size: layout.Size{W: boxW, H: boxH}},
					layout.Box{Item: b.Vanisher, Size: layout.Size{W: boxW, H: boxH}},
				},
			},
		}
	}

	moverX := max(edgeX, cs.Max.W-boxW-edgeX)
	return layout.Overlay{
		Children: []layout.Element{
			layout.Offset{Dx: edgeX + boxW + 2, Dy: edgeY,
				Child: layout.Box{Item: b.Vanisher, Size: layout.Size{W: boxW, H: boxH}}},
			layout.Offset{Dx: moverX, Dy: edgeY,
				Child: layout.Box{Item: b.Mover, Size: layout.Size{W: boxW, H: boxH}}},
			layout.Offset{Dx: moverX + (boxW-badgeW)/2, Dy: edgeY + boxH + 1,
				Child: layout.Box{Item: b.Badge, Size: layout.Size{W: badgeW, H: badgeH}}},
		},
	}
}

// NodesForState returns the nodes each state needs, bottom to top. The
// vanisher stays attached in the second state; only its opacity changes.
func (b *Boxes) NodesForState(state *BoxState) []*scene.Node {
	if state == nil || *state == StateSecond {
		return []*scene.Node{b.Vanisher, b.Mover, b.Badge}
	}
	return []*scene.Node{b.Vanisher, b.Mover}
}

// ApplyProperties sets each node's opacity for a state.
func (b *Boxes) ApplyProperties(state BoxState) {
	b.Mover.SetOpacity(1)
	if state == StateSecond {
		b.Vanisher.SetOpacity(0)
		b.Badge.SetOpacity(1)
	} else {
		b.Vanisher.SetOpacity(1)
		b.Badge.SetOpacity(0)
	}
}

// GestureDestination accepts horizontal drags pointing away from the
// current state: rightward from first, leftward from second.
func (b *Boxes) GestureDestination(from BoxState, g transition.Gesture) (BoxState, bool) {
	dx, dy := g.Translation.X, g.Translation.Y
	if abs(dy) > abs(dx) {
		return from, false
	}
	if from == StateFirst && dx > 0 {
		return StateSecond, true
	}
	if from == StateSecond && dx < 0 {
		return StateFirst, true
	}
	return from, false
}

// GestureFraction maps drag distance along the transition's direction to
// progress. Dragging back past the origin yields zero, not a negative
// fraction.
func (b *Boxes) GestureFraction(from, to BoxState, g transition.Gesture) float64 {
	dx := g.Translation.X
	if to == StateFirst {
		dx = -dx
	}
	return dx / b.travel
}

// AnimationStarted is a lifecycle hook with no demo side effects.
func (b *Boxes) AnimationStarted(interactive bool) {}

// AnimationFinished is a lifecycle hook with no demo side effects.
func (b *Boxes) AnimationFinished(interactive, completed bool) {}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
