package transition

import "SlideBox/pkg/layout"

// Gesture is the payload a recognizer attaches to each lifecycle event.
// Translation is cumulative since the gesture began; Location is the
// pointer position in layout coordinates.
type Gesture struct {
	Translation layout.Point
	Location    layout.Point
	Velocity    layout.Point
}
