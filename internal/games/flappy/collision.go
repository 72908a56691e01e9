package flappy

// CheckCollisions reports whether the actor touches a live obstacle half or
// leaves the vertical bounds. It does not change any state.
func CheckCollisions(actor HasBounds, pairs []*ObstaclePair, ceiling, floor float64) bool {
	b := actor.Bounds()
	if b.Top() <= ceiling || b.Bottom() >= floor {
		return true
	}
	for _, p := range pairs {
		if !p.Alive {
			continue
		}
		if b.Intersects(p.Upper().Bounds()) || b.Intersects(p.Lower().Bounds()) {
			return true
		}
	}
	return false
}
