package transition

import (
	"SlideBox/pkg/layout"
	"SlideBox/pkg/scene"
)

// Delegate supplies the per-state knowledge a Controller needs: layouts,
// node sets, animatable properties, and gesture interpretation. It is a
// strategy object passed at construction rather than an inheritance
// hook, so one controller type serves any concrete node.
//
// All methods are invoked on the controller's event-loop thread.
type Delegate[S comparable] interface {
	// LayoutSpec returns the declarative layout for a state. The
	// controller resolves it with the layout engine to obtain target
	// frames for the destination of a transition.
	LayoutSpec(cs layout.Constraints, state S) layout.Element

	// NodesForState returns the nodes that must be attached for a state,
	// in stacking order. A nil state means the union of all nodes the
	// delegate can ever present.
	NodesForState(state *S) []*scene.Node

	// ApplyProperties sets non-frame animatable properties (opacity) on
	// the delegate's nodes for the given state. The controller captures
	// the resulting values as interpolation targets.
	ApplyProperties(state S)

	// GestureDestination maps a gesture-begin payload to a candidate
	// destination state. Returning false rejects the gesture.
	GestureDestination(from S, g Gesture) (S, bool)

	// GestureFraction maps a gesture-changed payload to a progress
	// fraction. The controller clamps the result to [0,1] defensively;
	// the delegate owns the mapping.
	GestureFraction(from, to S, g Gesture) float64

	// AnimationStarted is called when a transition begins.
	AnimationStarted(interactive bool)

	// AnimationFinished is called when a transition settles. completed
	// is false when the transition reverted to its source state.
	AnimationFinished(interactive, completed bool)
}
