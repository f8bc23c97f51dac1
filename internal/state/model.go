package state

// Point is a position in surface-local pixel space.
type Point struct{ X, Y float64 }

// Stroke summarises one completed gesture, from pointer-down to the end of the
// stroke.
type Stroke struct {
	ID       string
	Seq      uint64 // order of completion in this session
	Start    Point
	End      Point
	Segments int
}

// Canvas is the subset of the drawing surface the controller paints with.
type Canvas interface {
	BeginStroke(x, y float64)
	ExtendStroke(toX, toY, fromX, fromY float64) error
}

// Saver persists the canvas once a stroke is done.
type Saver interface {
	Save()
}

// strokeState is either idle or drawing. Only drawing carries a last point.
type strokeState interface {
	isStrokeState()
}

type idle struct{}

type drawing struct {
	id       string
	start    Point
	last     Point
	segments int
}

func (idle) isStrokeState()     {}
func (*drawing) isStrokeState() {}
