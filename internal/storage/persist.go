package storage

import (
	"image"
	"log"

	"PaintPlus/internal/surface"
)

// Canvas is what the Persister snapshots and restores.
type Canvas interface {
	Snapshot() (string, error)
	Restore(img image.Image)
}

// Persister keeps a single snapshot of the canvas under one key.
type Persister struct {
	store  Store
	key    string
	canvas Canvas

	// OnSaved runs after a successful write, OnRestored after a restore.
	OnSaved    func()
	OnRestored func()
}

func NewPersister(store Store, key string, canvas Canvas) *Persister {
	return &Persister{store: store, key: key, canvas: canvas}
}

func (p *Persister) Key() string { return p.key }

// Save writes the current snapshot over the previous one. Failures are logged
// and otherwise ignored; the canvas in memory stays correct.
func (p *Persister) Save() {
	snap, err := p.canvas.Snapshot()
	if err != nil {
		log.Printf("[STORE] snapshot failed: %v", err)
		return
	}
	if err := p.store.Set(p.key, snap); err != nil {
		log.Printf("[STORE] saving %q failed: %v", p.key, err)
		return
	}
	log.Printf("[STORE] saved %q (%d bytes)", p.key, len(snap))
	if p.OnSaved != nil {
		p.OnSaved()
	}
}

// LoadIfPresent restores the stored snapshot, if any. Decoding happens on its own
// goroutine and the restore is handed to post, which must run it on the UI
// goroutine. It returns at once; the channel closes when the attempt is over.
func (p *Persister) LoadIfPresent(post func(func())) <-chan struct{} {
	done := make(chan struct{})

	value, ok := p.store.Get(p.key)
	if !ok {
		log.Printf("[STORE] nothing stored under %q", p.key)
		close(done)
		return done
	}

	go func() {
		img, err := surface.DecodeSnapshot(value)
		if err != nil {
			log.Printf("[STORE] ignoring stored image %q: %v", p.key, err)
			close(done)
			return
		}
		post(func() {
			defer close(done)
			p.canvas.Restore(img)
			log.Printf("[STORE] restored %q (%dx%d)", p.key, img.Bounds().Dx(), img.Bounds().Dy())
			if p.OnRestored != nil {
				p.OnRestored()
			}
		})
	}()
	return done
}

// Clear drops the stored snapshot.
func (p *Persister) Clear() {
	p.store.Remove(p.key)
	log.Printf("[STORE] cleared %q", p.key)
}
