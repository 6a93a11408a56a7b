package assets

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/webp"
)

type Request struct {
	Key  string
	Path string
}

type Result struct {
	Key   string
	Image image.Image
	Err   error
}

// Loader decodes images off the main thread. Requests fan out over a small
// worker pool; results come back on Res and must be drained by the caller
// (decoded images still need main-thread GPU upload).
type Loader struct {
	Req chan Request
	Res chan Result

	dir       string
	quit      chan struct{}
	closeOnce sync.Once
}

// NewLoader starts workers goroutines resolving request paths relative to
// dir ("" means the working directory).
func NewLoader(dir string, workers int) *Loader {
	if workers < 1 {
		workers = 1
	}
	l := &Loader{
		Req:  make(chan Request, 16),
		Res:  make(chan Result, 16),
		dir:  dir,
		quit: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go l.loop()
	}
	return l
}

// Close is idempotent and never blocks, even with requests still queued.
func (l *Loader) Close() {
	l.closeOnce.Do(func() { close(l.quit) })
}

func (l *Loader) loop() {
	for {
		select {
		case <-l.quit:
			return
		case req := <-l.Req:
			img, err := l.loadImage(req.Path)
			select {
			case l.Res <- Result{Key: req.Key, Image: img, Err: err}:
			case <-l.quit:
				return
			}
		}
	}
}

func (l *Loader) loadImage(path string) (image.Image, error) {
	if l.dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
