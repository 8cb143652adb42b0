package gallery

// Package gallery implements the responsive row-packing layout engine: an
// ordered item registry, a greedy row packer, an even row spacer, a placement
// driver that places new items and moves already placed ones, and a controller
// that re-runs the pass when the viewport size actually changes. All of it is
// meant to run on the UI goroutine.
