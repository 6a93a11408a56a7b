package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderDecodesRelativeToDir(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "sprite.png")

	l := NewLoader(dir, 2)
	defer l.Close()

	l.Req <- Request{Key: "sprite", Path: "sprite.png"}

	select {
	case r := <-l.Res:
		if r.Err != nil {
			t.Fatalf("load failed: %v", r.Err)
		}
		if b := r.Image.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
			t.Fatalf("bounds = %v, want 8x8", b)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestLoaderReportsMissingFile(t *testing.T) {
	l := NewLoader(t.TempDir(), 1)
	defer l.Close()

	l.Req <- Request{Key: "ghost", Path: "nope.png"}

	select {
	case r := <-l.Res:
		if r.Err == nil {
			t.Fatal("missing file produced no error")
		}
		if r.Key != "ghost" {
			t.Fatalf("key = %q, want ghost", r.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestLoaderCloseIsIdempotentUnderBackpressure(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "sprite.png")

	l := NewLoader(dir, 2)
	defer l.Close()

	for i := range 256 {
		select {
		case l.Req <- Request{
			Key:  strconv.Itoa(i),
			Path: "sprite.png",
		}:
		default:
		}
	}

	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		l.Close()
		l.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("loader close blocked under backpressure")
	}
}
