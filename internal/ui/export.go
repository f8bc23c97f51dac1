package ui

import (
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"PaintPlus/internal/export"
)

// ExportTo writes the current drawing to w, choosing PDF or PNG from name's
// extension, and closes w.
func (b *BoardWidget) ExportTo(w io.WriteCloser, name string) {
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("[UI] closing %s: %v", name, err)
		}
	}()

	var write func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		write = export.WritePNG
	default:
		write = export.WritePDF
	}

	if err := write(w, b.Image()); err != nil {
		log.Printf("[UI] export %s: %v", name, err)
		b.SetStatus("Export failed")
		return
	}
	log.Printf("[UI] exported %s", name)
	b.SetStatus(fmt.Sprintf("Exported %s", filepath.Base(name)))
}

func showExportDialog(b *BoardWidget, win fyne.Window, fileName string) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		b.ExportTo(w, w.URI().Name())
	}, win)
	d.SetFileName(fileName)
	d.Show()
}
