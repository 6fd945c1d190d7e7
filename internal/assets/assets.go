// Package assets loads sprite descriptions in the background. Callers get a
// handle immediately and poll it; nothing blocks the simulation.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/reblhell/internal/core"
)

// Sprite paths used by the simulation.
const (
	PlayerSprite     = "sprites/ball_blue_large.yaml"
	EnemySprite      = "sprites/ball_red_large.yaml"
	ProjectileSprite = "sprites/ball_blue_small.yaml"
)

// maxConcurrentLoads bounds the number of background readers.
const maxConcurrentLoads = 4

//go:embed sprites/*.yaml
var embedded embed.FS

// ErrEmptyGlyph is returned for sprite documents without a glyph.
var ErrEmptyGlyph = errors.New("assets: sprite has no glyph")

// Handle identifies a requested asset. The zero Handle is never issued.
type Handle uint32

// LoadState reports the progress of a handle.
type LoadState int

const (
	StateUnknown LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sprite is a decoded sprite document.
type Sprite struct {
	Name  string
	Glyph rune
	Color core.Color
}

type spriteDoc struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type entry struct {
	path   string
	state  LoadState
	sprite Sprite
	err    error
}

// Loader resolves sprite paths against a filesystem.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger

	mu      sync.RWMutex
	next    Handle
	byPath  map[string]Handle
	entries map[Handle]*entry
	failure error
	pending int
	settled *sync.Cond // signalled on l.mu when pending drops to zero

	slots chan struct{}
}

// NewLoader creates a loader reading from fsys. A nil fsys selects the
// embedded sprites; a nil logger discards log output.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if fsys == nil {
		fsys = embedded
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loader{
		fsys:    fsys,
		logger:  logger,
		byPath:  make(map[string]Handle),
		entries: make(map[Handle]*entry),
		slots:   make(chan struct{}, maxConcurrentLoads),
	}
	l.settled = sync.NewCond(&l.mu)
	return l
}

// Load requests path and returns its handle without waiting. Requesting the
// same path twice returns the same handle.
func (l *Loader) Load(path string) Handle {
	l.mu.Lock()
	if h, ok := l.byPath[path]; ok {
		l.mu.Unlock()
		return h
	}
	l.next++
	h := l.next
	l.byPath[path] = h
	l.entries[h] = &entry{path: path, state: StateLoading}
	l.pending++
	l.mu.Unlock()

	go func() {
		l.slots <- struct{}{}
		defer func() { <-l.slots }()
		l.load(h, path)
	}()
	return h
}

// Get returns the sprite for h once it has loaded.
func (l *Loader) Get(h Handle) (Sprite, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[h]
	if !ok || e.state != StateLoaded {
		return Sprite{}, false
	}
	return e.sprite, true
}

// State returns the load state of h.
func (l *Loader) State(h Handle) LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if e, ok := l.entries[h]; ok {
		return e.state
	}
	return StateUnknown
}

// Err returns the failure recorded for h, if any.
func (l *Loader) Err(h Handle) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if e, ok := l.entries[h]; ok {
		return e.err
	}
	return nil
}

// Wait blocks until no load is in flight and returns the first load
// failure. Loads requested while Wait blocks are waited for too. The
// simulation never calls it; it is for tests and tools that need every
// sprite resolved before drawing.
func (l *Loader) Wait() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.pending > 0 {
		l.settled.Wait()
	}
	return l.failure
}

func (l *Loader) load(h Handle, path string) {
	sprite, err := decode(l.fsys, path)

	l.mu.Lock()
	e := l.entries[h]
	if err != nil {
		e.state = StateFailed
		e.err = err
		if l.failure == nil {
			l.failure = err
		}
	} else {
		e.state = StateLoaded
		e.sprite = sprite
	}
	l.pending--
	if l.pending == 0 {
		l.settled.Broadcast()
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.Error("asset load failed", "path", path, "err", err)
		return
	}
	l.logger.Debug("asset loaded", "path", path, "handle", h)
}

func decode(fsys fs.FS, path string) (Sprite, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: read %s: %w", path, err)
	}
	var doc spriteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Sprite{}, fmt.Errorf("assets: parse %s: %w", path, err)
	}
	glyph, size := utf8.DecodeRuneInString(doc.Glyph)
	if size == 0 || glyph == utf8.RuneError {
		return Sprite{}, fmt.Errorf("assets: %s: %w", path, ErrEmptyGlyph)
	}
	return Sprite{
		Name:  doc.Name,
		Glyph: glyph,
		Color: core.ParseColor(doc.Color),
	}, nil
}
