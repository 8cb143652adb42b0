package gallery

import "fmt"

// command is one call recorded by recordingSurface
type command struct {
	Op     string
	Handle int
	X, Y   int
}

func (c command) String() string {
	return fmt.Sprintf("%s(%d,%d,%d)", c.Op, c.Handle, c.X, c.Y)
}

// recordingSurface records every call made by the layout engine
type recordingSurface struct {
	commands      []command
	containerW    int
	containerH    int
	containerSets int
	clears        int
	measured      map[int]int
	onPlace       func(handle int)
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{measured: make(map[int]int)}
}

func (s *recordingSurface) Place(handle, x, y int) {
	s.commands = append(s.commands, command{Op: "place", Handle: handle, X: x, Y: y})
	if s.onPlace != nil {
		s.onPlace(handle)
	}
}

func (s *recordingSurface) Move(handle, x, y int) {
	s.commands = append(s.commands, command{Op: "move", Handle: handle, X: x, Y: y})
}

func (s *recordingSurface) MeasureWidth(handle int) int {
	return s.measured[handle]
}

func (s *recordingSurface) SetContainerSize(width, height int) {
	s.containerW = width
	s.containerH = height
	s.containerSets++
}

func (s *recordingSurface) Clear() {
	s.clears++
}

func (s *recordingSurface) reset() {
	s.commands = nil
}

// positions maps handle to the last issued coordinates
func (s *recordingSurface) positions() map[int][2]int {
	pos := make(map[int][2]int)
	for _, c := range s.commands {
		pos[c.Handle] = [2]int{c.X, c.Y}
	}
	return pos
}
