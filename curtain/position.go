package curtain

// positionFor maps an edge to the overlay's translation offset in percent.
// The magnitude is 101 rather than 100 so the overlay fully clears the
// host's bounds and never leaves a visible sliver at the boundary. Unknown
// edges fall back to bottom's offset.
func positionFor(edge Edge) (x, y float64) {
	switch edge {
	case EdgeLeft:
		return -101, 0
	case EdgeRight:
		return 101, 0
	case EdgeTop:
		return 0, -101
	case EdgeBottom:
		return 0, 101
	case EdgeCenter:
		return 0, 0
	}
	return 0, 101
}
