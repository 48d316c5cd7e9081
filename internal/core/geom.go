// Package core holds the frontend-neutral types shared by games and
// platforms: input frames, events, runtime config and the cell screen.
package core

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
