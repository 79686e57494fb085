package ui

// Point is a position in screen pixels
type Point struct {
	X, Y int
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DragState tracks a title bar drag. The offset is the pointer position
// inside the bar when the button went down.
type DragState struct {
	offset Point
	active bool
}

// Press records where the pointer grabbed the bar
func (d *DragState) Press(pointer Point) {
	d.offset = pointer
	d.active = true
}

// Motion returns the new window origin for a pointer at the given position
// inside the bar. It returns false when no drag is in progress.
func (d *DragState) Motion(origin, pointer Point) (Point, bool) {
	if !d.active {
		return origin, false
	}
	return origin.Add(pointer.Sub(d.offset)), true
}

// Release ends the drag
func (d *DragState) Release() {
	d.offset = Point{}
	d.active = false
}

// Active reports whether a drag is in progress
func (d *DragState) Active() bool {
	return d.active
}
