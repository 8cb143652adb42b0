package gallery

// Spacing returns the uniform gap between count items of total usedWidth in a
// row of maxWidth, and the x of the first item. Free space is clamped at zero
// and divided by count+1 with floor division; the remainder stays unused at
// the right edge.
func Spacing(usedWidth, count, maxWidth int) (gap, startX int) {
	if count <= 0 {
		return 0, 0
	}
	free := maxWidth - usedWidth
	if free < 0 {
		free = 0
	}
	gap = free / (count + 1)
	return gap, gap
}
