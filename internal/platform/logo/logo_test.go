package logo

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func jpegFixture(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for x := 0; x < 8; x++ {
		for y := 0; y < 6; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg fixture: %v", err)
	}
	return buf.Bytes()
}

func TestSlug(t *testing.T) {
	if got := Slug("Los Tigres FC"); got != "los_tigres_fc" {
		t.Fatalf("unexpected slug: %q", got)
	}
}

func TestSniff_TranscodesToPNG(t *testing.T) {
	out := Sniff(jpegFixture(t))
	if !out.OK() {
		t.Fatalf("expected image outcome, got placeholder: %s", out.Reason)
	}
	if out.ImageType != ImageTypePNG {
		t.Fatalf("unexpected image type: %q", out.ImageType)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Data))
	if err != nil || format != "png" {
		t.Fatalf("expected png output, format=%q err=%v", format, err)
	}
	if cfg.Width != 8 || cfg.Height != 6 {
		t.Fatalf("unexpected dimensions: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSniff_RejectsNonImages(t *testing.T) {
	for _, payload := range [][]byte{nil, []byte("<html>not found</html>")} {
		out := Sniff(payload)
		if out.OK() || !out.Placeholder {
			t.Fatalf("expected placeholder for %q", payload)
		}
		if out.Reason == "" {
			t.Fatalf("expected placeholder reason")
		}
	}
}

func TestLoadAsset(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "los_tigres.jpg"), jpegFixture(t), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "los_leones.png"), jpegFixture(t), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if out := LoadAsset(dir, "Los Leones"); !out.OK() {
		t.Fatalf("expected asset to load, got: %s", out.Reason)
	}
	if out := LoadAsset(dir, "Los Tigres"); out.OK() {
		t.Fatalf("expected only .png assets to be considered")
	}
	if out := LoadAsset(dir, ""); out.OK() {
		t.Fatalf("expected placeholder for empty name")
	}
}
