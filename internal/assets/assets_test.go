package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/reblhell/internal/core"
)

func TestLoaderEmbeddedSprites(t *testing.T) {
	l := NewLoader(nil, nil)

	tests := []struct {
		path  string
		glyph rune
		color core.Color
	}{
		{PlayerSprite, '●', core.ColorBrightBlue},
		{EnemySprite, '●', core.ColorRed},
		{ProjectileSprite, '•', core.ColorBrightBlue},
	}

	handles := make([]Handle, len(tests))
	for i, tt := range tests {
		handles[i] = l.Load(tt.path)
		if handles[i] == 0 {
			t.Fatalf("Load(%s) returned zero handle", tt.path)
		}
	}
	if err := l.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	for i, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if st := l.State(handles[i]); st != StateLoaded {
				t.Fatalf("state = %v, want loaded", st)
			}
			sp, ok := l.Get(handles[i])
			if !ok {
				t.Fatal("Get returned !ok after load")
			}
			if sp.Glyph != tt.glyph || sp.Color != tt.color {
				t.Errorf("sprite = %+v, want glyph %q color %v", sp, tt.glyph, tt.color)
			}
		})
	}
}

func TestLoaderDeduplicatesPaths(t *testing.T) {
	l := NewLoader(nil, nil)
	a := l.Load(EnemySprite)
	b := l.Load(EnemySprite)
	if a != b {
		t.Fatalf("same path gave handles %d and %d", a, b)
	}
	if err := l.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml":   {Data: []byte("glyph: [")},
		"blank.yaml": {Data: []byte("name: blank\ncolor: red\n")},
	}
	l := NewLoader(fsys, nil)

	missing := l.Load("missing.yaml")
	bad := l.Load("bad.yaml")
	blank := l.Load("blank.yaml")

	if err := l.Wait(); err == nil {
		t.Fatal("Wait should report a failure")
	}

	for _, h := range []Handle{missing, bad, blank} {
		if st := l.State(h); st != StateFailed {
			t.Errorf("handle %d state = %v, want failed", h, st)
		}
		if _, ok := l.Get(h); ok {
			t.Errorf("handle %d resolved despite failure", h)
		}
	}
	if !errors.Is(l.Err(missing), fs.ErrNotExist) {
		t.Errorf("missing err = %v, want fs.ErrNotExist", l.Err(missing))
	}
	if !errors.Is(l.Err(blank), ErrEmptyGlyph) {
		t.Errorf("blank err = %v, want ErrEmptyGlyph", l.Err(blank))
	}
}

func TestUnknownHandle(t *testing.T) {
	l := NewLoader(nil, nil)
	if st := l.State(99); st != StateUnknown {
		t.Errorf("state = %v, want unknown", st)
	}
	if _, ok := l.Get(99); ok {
		t.Error("unknown handle resolved")
	}
}

func TestWaitConcurrentWithLoad(t *testing.T) {
	fsys := fstest.MapFS{}
	paths := make([]string, 32)
	for i := range paths {
		paths[i] = fmt.Sprintf("sprites/s%02d.yaml", i)
		fsys[paths[i]] = &fstest.MapFile{Data: []byte("glyph: \"*\"\ncolor: green\n")}
	}
	l := NewLoader(fsys, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- l.Wait()
		}()
	}

	handles := make([]Handle, len(paths))
	for i, p := range paths {
		handles[i] = l.Load(p)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("Wait: %v", err)
		}
	}

	if err := l.Wait(); err != nil {
		t.Fatalf("final Wait: %v", err)
	}
	for i, h := range handles {
		if st := l.State(h); st != StateLoaded {
			t.Errorf("%s state = %v, want loaded", paths[i], st)
		}
	}
}

func TestWaitWithNothingRequested(t *testing.T) {
	l := NewLoader(nil, nil)
	if err := l.Wait(); err != nil {
		t.Errorf("Wait on idle loader: %v", err)
	}
}
