// Package logo resolves team crests for report rendering. Every function here
// is best-effort: failures become a placeholder Outcome instead of an error.
package logo

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ImageTypePNG is the only type handed to the renderer; other formats are
// transcoded on the way in.
const ImageTypePNG = "PNG"

// MaxPixels caps decoded images so a hostile crest cannot exhaust memory.
const MaxPixels = 4096 * 4096

// Outcome is either renderable image data or a placeholder with a reason.
type Outcome struct {
	Data        []byte
	ImageType   string
	Placeholder bool
	Reason      string
}

// OK reports whether the outcome carries an image.
func (o Outcome) OK() bool {
	return !o.Placeholder && len(o.Data) > 0
}

// Placeholder builds a non-image outcome.
func Placeholder(format string, args ...any) Outcome {
	return Outcome{Placeholder: true, Reason: fmt.Sprintf(format, args...)}
}

// Slug maps a team name onto its bundled asset file stem.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// LoadAsset reads <dir>/<slug(name)>.png.
func LoadAsset(dir, name string) Outcome {
	if strings.TrimSpace(name) == "" {
		return Placeholder("empty team name")
	}
	path := filepath.Join(dir, Slug(name)+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		return Placeholder("asset %s: %v", path, err)
	}
	return Sniff(data)
}

// Sniff validates a PNG, JPEG or GIF payload and re-encodes it as a plain
// 8-bit PNG the renderer can embed. Anything else becomes a placeholder.
func Sniff(data []byte) Outcome {
	if len(data) == 0 {
		return Placeholder("empty image payload")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Placeholder("unrecognized image: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return Placeholder("%s image has unsupported size %dx%d", format, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Placeholder("decode %s: %v", format, err)
	}

	bounds := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return Placeholder("encode png: %v", err)
	}

	return Outcome{Data: buf.Bytes(), ImageType: ImageTypePNG}
}
