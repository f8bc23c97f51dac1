package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"PaintPlus/internal/config"
	"PaintPlus/internal/state"
	"PaintPlus/internal/storage"
	"PaintPlus/internal/surface"
)

// Paint is one drawing window with its board and persistence.
type Paint struct {
	Window    fyne.Window
	Board     *BoardWidget
	Persister *storage.Persister

	// Loaded closes once the stored drawing, if any, has been dealt with.
	Loaded <-chan struct{}
}

// NewPaint builds the window. Any error here is a setup failure.
func NewPaint(a fyne.App, conf config.Config, store storage.Store) (*Paint, error) {
	surf, err := surface.New(conf.Width, conf.Height)
	if err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	initial, err := surface.ParseColor(conf.InitialColor)
	if err != nil {
		return nil, fmt.Errorf("initial color: %w", err)
	}
	surf.SetStrokeColor(initial)
	surf.SetStrokeWidth(surface.ClampWidth(conf.InitialWidth))

	board := NewBoardWidget(surf)
	persister := storage.NewPersister(store, conf.StorageKey, board)
	board.SetSaver(persister)

	persister.OnRestored = func() { board.SetStatus("Restored previous drawing") }
	board.Controller().OnStrokeEnd = func(s state.Stroke) {
		board.SetStatus(fmt.Sprintf("Stroke %d: %d segments", s.Seq, s.Segments))
	}

	win := a.NewWindow(conf.Title)
	win.SetContent(container.NewBorder(
		nil,
		board.StatusBar(),
		nil, nil,
		container.NewVBox(container.NewCenter(board), NewToolbar(board, win)),
	))
	win.SetFixedSize(true)

	return &Paint{
		Window:    win,
		Board:     board,
		Persister: persister,
		Loaded:    persister.LoadIfPresent(fyne.Do),
	}, nil
}

func RunApp(a fyne.App, conf config.Config, store storage.Store) error {
	p, err := NewPaint(a, conf, store)
	if err != nil {
		return err
	}
	p.Window.ShowAndRun()
	return nil
}
