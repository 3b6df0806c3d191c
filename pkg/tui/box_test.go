package tui

import (
	"testing"

	"SlideBox/pkg/layout"
	"SlideBox/pkg/transition"
)

func gesture(dx, dy float64) transition.Gesture {
	return transition.Gesture{Translation: layout.Point{X: dx, Y: dy}}
}

func TestBoxesGestureDestination(t *testing.T) {
	b := NewBoxes()

	tests := []struct {
		name     string
		from     BoxState
		dx, dy   float64
		want     BoxState
		accepted bool
	}{
		{"right drag from first", StateFirst, 5, 0, StateSecond, true},
		{"left drag from first rejected", StateFirst, -5, 0, StateFirst, false},
		{"left drag from second", StateSecond, -5, 0, StateFirst, true},
		{"right drag from second rejected", StateSecond, 5, 0, StateSecond, false},
		{"vertical drag rejected", StateFirst, 2, 5, StateFirst, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.GestureDestination(tt.from, gesture(tt.dx, tt.dy))
			if ok != tt.accepted {
				t.Fatalf("accepted = %v, want %v", ok, tt.accepted)
			}
			if ok && got != tt.want {
				t.Fatalf("destination = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxesGestureFractionDirection(t *testing.T) {
	b := NewBoxes()
	b.SetTravel(90) // travel = 30

	if got := b.GestureFraction(StateFirst, StateSecond, gesture(15, 0)); got != 0.5 {
		t.Errorf("forward fraction = %v, want 0.5", got)
	}
	// Toward first, leftward drag counts as positive progress.
	if got := b.GestureFraction(StateSecond, StateFirst, gesture(-15, 0)); got != 0.5 {
		t.Errorf("reverse fraction = %v, want 0.5", got)
	}
	// Dragging against the transition direction goes negative; the
	// controller clamps it.
	if got := b.GestureFraction(StateFirst, StateSecond, gesture(-15, 0)); got != -0.5 {
		t.Errorf("backward fraction = %v, want -0.5", got)
	}
}

func TestBoxesNodeSets(t *testing.T) {
	b := NewBoxes()

	first := StateFirst
	if nodes := b.NodesForState(&first); len(nodes) != 2 {
		t.Errorf("first state: %d nodes, want 2", len(nodes))
	}
	second := StateSecond
	if nodes := b.NodesForState(&second); len(nodes) != 3 {
		t.Errorf("second state: %d nodes, want 3", len(nodes))
	}
	if nodes := b.NodesForState(nil); len(nodes) != 3 {
		t.Errorf("union: %d nodes, want 3", len(nodes))
	}
}

func TestBoxesLayoutKeepsVanisherInPlace(t *testing.T) {
	b := NewBoxes()
	cs := layout.Loose(layout.Size{W: 80, H: 20})

	firstFrames := layout.Resolve(cs, b.LayoutSpec(cs, StateFirst))
	secondFrames := layout.Resolve(cs, b.LayoutSpec(cs, StateSecond))

	if firstFrames[b.Vanisher] != secondFrames[b.Vanisher] {
		t.Errorf("vanisher moved: %v vs %v", firstFrames[b.Vanisher], secondFrames[b.Vanisher])
	}
	if firstFrames[b.Mover].X >= secondFrames[b.Mover].X {
		t.Errorf("mover should slide right: %v vs %v", firstFrames[b.Mover], secondFrames[b.Mover])
	}
	if _, ok := firstFrames[b.Badge]; ok {
		t.Error("badge must not appear in the first state's layout")
	}
	if _, ok := secondFrames[b.Badge]; !ok {
		t.Error("badge missing from the second state's layout")
	}
}

func TestBoxesProperties(t *testing.T) {
	b := NewBoxes()

	b.ApplyProperties(StateSecond)
	if b.Vanisher.Opacity() != 0 {
		t.Errorf("vanisher opacity = %v, want 0", b.Vanisher.Opacity())
	}
	if b.Badge.Opacity() != 1 {
		t.Errorf("badge opacity = %v, want 1", b.Badge.Opacity())
	}

	b.ApplyProperties(StateFirst)
	if b.Vanisher.Opacity() != 1 {
		t.Errorf("vanisher opacity = %v, want 1", b.Vanisher.Opacity())
	}
	if b.Badge.Opacity() != 0 {
		t.Errorf("badge opacity = %v, want 0", b.Badge.Opacity())
	}
}
