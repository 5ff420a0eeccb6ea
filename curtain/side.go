// Package curtain implements a directional hover overlay behavior for DOM
// elements. Attaching the behavior to a host element injects an overlay that
// slides in from the edge a pointer entered through and slides back out
// through the edge it left from; touch input uses fixed, configured edges.
// Detaching restores the host's original content.
package curtain

// Edge names one side of a host element, or its center.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeCenter Edge = "center"
)

// DetectSide returns the edge of a width x height rectangle closest to the
// point (x, y), where x and y are relative to the rectangle's top-left
// corner. Ties resolve in the order left, right, top, bottom: a later edge
// only wins by being strictly closer than the best so far.
func DetectSide(x, y, width, height float64) Edge {
	side := EdgeLeft
	best := x
	if d := width - x; d < best {
		side, best = EdgeRight, d
	}
	if y < best {
		side, best = EdgeTop, y
	}
	if d := height - y; d < best {
		side = EdgeBottom
	}
	return side
}
