package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"

	"PaintPlus/internal/config"
	"PaintPlus/internal/export"
	"PaintPlus/internal/storage"
	"PaintPlus/internal/surface"
	"PaintPlus/internal/ui"
)

const AppID = "io.github.paintplus"

type CLIOpts struct {
	configPath string
	doLog      bool
	reset      bool
	ephemeral  bool
	exportPath string
}

func parseCLIOpts() CLIOpts {
	var opt CLIOpts
	flag.StringVar(&opt.configPath, "config", config.DefaultPath(), "Path to the TOML config file")
	flag.BoolVar(&opt.doLog, "log", false, "Print rendering debug output to stderr")
	flag.BoolVar(&opt.reset, "reset", false, "Forget the saved drawing before starting")
	flag.BoolVar(&opt.ephemeral, "ephemeral", false, "Keep the drawing in memory only")
	flag.StringVar(&opt.exportPath, "export", "", "Write the saved drawing to this .pdf or .png file and exit")
	flag.Parse()
	return opt
}

func main() {
	opt := parseCLIOpts()

	if opt.doLog {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	conf, err := config.Load(opt.configPath)
	if err != nil {
		log.Fatalf("Couldn't load config: %v", err)
	}

	a := app.NewWithID(AppID)

	var store storage.Store = storage.NewPreferencesStore(a.Preferences())
	if opt.ephemeral {
		store = storage.NewMemoryStore()
	}

	if opt.reset {
		storage.NewPersister(store, conf.StorageKey, nil).Clear()
	}

	if opt.exportPath != "" {
		if err := exportSaved(store, conf.StorageKey, opt.exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't export drawing: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log.Printf("Starting %s (%dx%d, key %q)", conf.Title, conf.Width, conf.Height, conf.StorageKey)
	if err := ui.RunApp(a, conf, store); err != nil {
		log.Fatalf("Couldn't start: %v", err)
	}
}

func exportSaved(store storage.Store, key, path string) error {
	value, ok := store.Get(key)
	if !ok {
		return fmt.Errorf("no drawing saved under %q", key)
	}
	img, err := surface.DecodeSnapshot(value)
	if err != nil {
		return err
	}
	if err := export.File(path, img); err != nil {
		return err
	}
	log.Printf("Exported %q to %s", key, path)
	return nil
}
