package wallpaper

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writePNG writes a real, decodable PNG of the given size.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestScanImages(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.png")
	touch(t, dir, "a.jpg")
	touch(t, dir, "c.webp")
	touch(t, dir, "skip.txt")
	touch(t, dir, "skip.pdf")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	images, err := ScanImages(dir)
	if err != nil {
		t.Fatalf("ScanImages() unexpected error: %v", err)
	}

	if len(images) != 3 {
		t.Fatalf("ScanImages() returned %d files, want 3: %v", len(images), images)
	}
	if !sort.StringsAreSorted(images) {
		t.Errorf("ScanImages() output not sorted: %v", images)
	}
	if filepath.Base(images[0]) != "a.jpg" {
		t.Errorf("ScanImages()[0] = %s, want a.jpg", images[0])
	}
}

func TestScanImagesMissingDirectory(t *testing.T) {
	if _, err := ScanImages(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("ScanImages() succeeded on a missing directory")
	}
}

func TestValidateImage(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "ok.png")
	writePNG(t, valid, 4, 4)
	if err := ValidateImage(valid); err != nil {
		t.Errorf("ValidateImage() rejected a valid png: %v", err)
	}

	bogus := touch(t, dir, "bogus.png")
	if err := ValidateImage(bogus); err == nil {
		t.Error("ValidateImage() accepted a file with no image data")
	}
}

func TestImageDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dims.png")
	writePNG(t, path, 640, 360)

	w, h, err := ImageDimensions(path)
	if err != nil {
		t.Fatalf("ImageDimensions() unexpected error: %v", err)
	}
	if w != 640 || h != 360 {
		t.Errorf("ImageDimensions() = %dx%d, want 640x360", w, h)
	}
}
