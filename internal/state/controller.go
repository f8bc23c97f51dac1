package state

import (
	"log"
)

// Controller turns pointer events into stroke segments on a Canvas. It owns the
// stroke state; every handler runs on the UI goroutine.
type Controller struct {
	canvas Canvas
	saver  Saver
	state  strokeState

	// OnStrokeEnd runs after the stroke has been handed to the Saver.
	OnStrokeEnd func(s Stroke)
}

func NewController(canvas Canvas, saver Saver) *Controller {
	return &Controller{
		canvas: canvas,
		saver:  saver,
		state:  idle{},
	}
}

// SetSaver replaces the Saver used for strokes completed from now on.
func (c *Controller) SetSaver(saver Saver) {
	c.saver = saver
}

// Active reports whether a stroke is in progress.
func (c *Controller) Active() bool {
	_, ok := c.state.(*drawing)
	return ok
}

// LastPoint returns the most recent committed point of the active stroke.
func (c *Controller) LastPoint() (Point, bool) {
	if d, ok := c.state.(*drawing); ok {
		return d.last, true
	}
	return Point{}, false
}

func (c *Controller) PointerDown(p Point) {
	if d, ok := c.state.(*drawing); ok {
		// the up for the previous stroke never arrived
		log.Printf("[STROKE] %s: pointer down while drawing, closing it", d.id)
		c.finish(d)
	}

	c.canvas.BeginStroke(p.X, p.Y)
	c.state = &drawing{id: newStrokeID(), start: p, last: p}
}

// PointerMove paints a segment from the last point. Ignored while idle.
func (c *Controller) PointerMove(p Point) {
	d, ok := c.state.(*drawing)
	if !ok {
		return
	}
	c.segment(d, p)
}

// PointerUp commits the final segment and saves. Ignored while idle.
func (c *Controller) PointerUp(p Point) {
	d, ok := c.state.(*drawing)
	if !ok {
		return
	}
	c.segment(d, p)
	c.finish(d)
}

// PointerLeave ends an active stroke without a final segment, for when the
// pointer is released somewhere the surface never sees.
func (c *Controller) PointerLeave() {
	d, ok := c.state.(*drawing)
	if !ok {
		return
	}
	c.finish(d)
}

func (c *Controller) segment(d *drawing, p Point) {
	if err := c.canvas.ExtendStroke(p.X, p.Y, d.last.X, d.last.Y); err != nil {
		log.Printf("[STROKE] %s: %v", d.id, err)
	}
	d.last = p
	d.segments++
}

func (c *Controller) finish(d *drawing) {
	c.state = idle{}

	s := Stroke{
		ID:       d.id,
		Seq:      nextSeq(),
		Start:    d.start,
		End:      d.last,
		Segments: d.segments,
	}
	log.Printf("[STROKE] %s done: %d segments", s.ID, s.Segments)

	if c.saver != nil {
		c.saver.Save()
	}
	if c.OnStrokeEnd != nil {
		c.OnStrokeEnd(s)
	}
}
