// Package layout resolves a declarative element tree into concrete frames.
//
// Resolve is pure and synchronous: the same constraints and element tree
// always produce the same frames, and nothing outside the returned map is
// touched. Frames are float-valued so callers can interpolate between two
// resolved layouts without accumulating rounding jitter.
package layout

// Point is a position in the layout coordinate space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates each coordinate of two points.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// LerpRect interpolates origin and size of two rectangles.
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		W: Lerp(a.W, b.W, t),
		H: Lerp(a.H, b.H, t),
	}
}

// Constraints bound the space an element may occupy.
type Constraints struct {
	Min, Max Size
}

// Exact returns constraints that admit only the given size.
func Exact(s Size) Constraints {
	return Constraints{Min: s, Max: s}
}

// Loose returns constraints from zero up to the given size.
func Loose(s Size) Constraints {
	return Constraints{Max: s}
}

// clampSize fits s into the constraint bounds.
func (cs Constraints) clampSize(s Size) Size {
	if s.W < cs.Min.W {
		s.W = cs.Min.W
	}
	if s.H < cs.Min.H {
		s.H = cs.Min.H
	}
	if s.W > cs.Max.W {
		s.W = cs.Max.W
	}
	if s.H > cs.Max.H {
		s.H = cs.Max.H
	}
	return s
}

// Alignment positions children on a stack's cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// placement is an item's frame relative to the owning element's origin.
type placement struct {
	item any
	rect Rect
}

// Element is a node in a declarative layout tree.
type Element interface {
	// layout measures the element under cs and returns its size together
	// with the placements of all items inside it, relative to its origin.
	layout(cs Constraints) (Size, []placement)
}

// Resolve lays out root under cs and returns the absolute frame of every
// item mentioned in the tree.
func Resolve(cs Constraints, root Element) map[any]Rect {
	frames := make(map[any]Rect)
	if root == nil {
		return frames
	}
	_, placed := root.layout(cs)
	for _, p := range placed {
		frames[p.item] = p.rect
	}
	return frames
}

// Box places a single item at a fixed preferred size.
type Box struct {
	Item any
	Size Size
}

func (b Box) layout(cs Constraints) (Size, []placement) {
	s := cs.clampSize(b.Size)
	if b.Item == nil {
		return s, nil
	}
	return s, []placement{{item: b.Item, rect: Rect{W: s.W, H: s.H}}}
}

// HStack lays children out left to right.
type HStack struct {
	Spacing  float64
	Align    Alignment
	Children []Element
}

func (h HStack) layout(cs Constraints) (Size, []placement) {
	type measured struct {
		size   Size
		placed []placement
	}
	var (
		kids   []measured
		x      float64
		height float64
	)
	remaining := cs.Max.W
	for _, child := range h.Children {
		if child == nil {
			continue
		}
		childCS := Loose(Size{W: remaining, H: cs.Max.H})
		s, placed := child.layout(childCS)
		kids = append(kids, measured{size: s, placed: placed})
		remaining -= s.W + h.Spacing
		if remaining < 0 {
			remaining = 0
		}
		if s.H > height {
			height = s.H
		}
	}
	var out []placement
	for _, kid := range kids {
		y := crossOffset(h.Align, height, kid.size.H)
		out = append(out, shift(kid.placed, x, y)...)
		x += kid.size.W + h.Spacing
	}
	if len(kids) > 0 {
		x -= h.Spacing
	}
	return cs.clampSize(Size{W: x, H: height}), out
}

// VStack lays children out top to bottom.
type VStack struct {
	Spacing  float64
	Align    Alignment
	Children []Element
}

func (v VStack) layout(cs Constraints) (Size, []placement) {
	type measured struct {
		size   Size
		placed []placement
	}
	var (
		kids  []measured
		y     float64
		width float64
	)
	remaining := cs.Max.H
	for _, child := range v.Children {
		if child == nil {
			continue
		}
		childCS := Loose(Size{W: cs.Max.W, H: remaining})
		s, placed := child.layout(childCS)
		kids = append(kids, measured{size: s, placed: placed})
		remaining -= s.H + v.Spacing
		if remaining < 0 {
			remaining = 0
		}
		if s.W > width {
			width = s.W
		}
	}
	var out []placement
	for _, kid := range kids {
		x := crossOffset(v.Align, width, kid.size.W)
		out = append(out, shift(kid.placed, x, y)...)
		y += kid.size.H + v.Spacing
	}
	if len(kids) > 0 {
		y -= v.Spacing
	}
	return cs.clampSize(Size{W: width, H: y}), out
}

// Inset pads a child on all four sides.
type Inset struct {
	Top, Right, Bottom, Left float64
	Child                    Element
}

func (i Inset) layout(cs Constraints) (Size, []placement) {
	inner := Loose(Size{
		W: max(0, cs.Max.W-i.Left-i.Right),
		H: max(0, cs.Max.H-i.Top-i.Bottom),
	})
	if i.Child == nil {
		return cs.clampSize(Size{W: i.Left + i.Right, H: i.Top + i.Bottom}), nil
	}
	s, placed := i.Child.layout(inner)
	total := Size{W: s.W + i.Left + i.Right, H: s.H + i.Top + i.Bottom}
	return cs.clampSize(total), shift(placed, i.Left, i.Top)
}

// Center fills the available space and centers its child inside it.
type Center struct {
	Child Element
}

func (c Center) layout(cs Constraints) (Size, []placement) {
	if c.Child == nil {
		return cs.Max, nil
	}
	s, placed := c.Child.layout(Loose(cs.Max))
	dx := (cs.Max.W - s.W) / 2
	dy := (cs.Max.H - s.H) / 2
	return cs.Max, shift(placed, dx, dy)
}

// Offset displaces a child from the parent origin.
type Offset struct {
	Dx, Dy float64
	Child  Element
}

func (o Offset) layout(cs Constraints) (Size, []placement) {
	if o.Child == nil {
		return Size{}, nil
	}
	s, placed := o.Child.layout(cs)
	return Size{W: s.W + o.Dx, H: s.H + o.Dy}, shift(placed, o.Dx, o.Dy)
}

// Overlay layers children on top of each other at the parent origin.
// Later children stack above earlier ones.
type Overlay struct {
	Children []Element
}

func (o Overlay) layout(cs Constraints) (Size, []placement) {
	var (
		out  []placement
		size Size
	)
	for _, child := range o.Children {
		if child == nil {
			continue
		}
		s, placed := child.layout(cs)
		out = append(out, placed...)
		if s.W > size.W {
			size.W = s.W
		}
		if s.H > size.H {
			size.H = s.H
		}
	}
	return cs.clampSize(size), out
}

func crossOffset(a Alignment, total, item float64) float64 {
	switch a {
	case AlignCenter:
		return (total - item) / 2
	case AlignEnd:
		return total - item
	default:
		return 0
	}
}

func shift(placed []placement, dx, dy float64) []placement {
	out := make([]placement, len(placed))
	for i, p := range placed {
		p.rect.X += dx
		p.rect.Y += dy
		out[i] = p
	}
	return out
}
