package layers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

// ThumbnailSize bounds both sides of a thumbnail
const ThumbnailSize = 200

// Export formats
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Thumbnail scales img to fit within ThumbnailSize, keeping its aspect,
// and returns it as a PNG data URL. Small images keep their size.
func Thumbnail(img image.Image) (string, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > ThumbnailSize || h > ThumbnailSize {
		ratio := min(float64(ThumbnailSize)/float64(w), float64(ThumbnailSize)/float64(h))
		w = max(int(float64(w)*ratio), 1)
		h = max(int(float64(h)*ratio), 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Compose draws a layer onto a transparent canvas of the document size at
// the layer's offset
func Compose(doc *Document, n *Node) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, doc.Width, doc.Height))
	src := n.Image.Bounds()
	at := image.Rect(n.Left, n.Top, n.Left+src.Dx(), n.Top+src.Dy())
	draw.Draw(canvas, at, n.Image, src.Min, draw.Over)
	return canvas
}

// Encode writes img in the requested format. Anything but png is JPEG at
// full quality.
func Encode(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	if format == FormatPNG {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode png: %w", err)
		}
		return buf.Bytes(), "png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		return nil, "", fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), "jpg", nil
}

var unsafeName = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// FileName returns a file-system safe base name for a layer
func FileName(name string, id int) string {
	name = unsafeName.Replace(strings.TrimSpace(name))
	if name == "" {
		return fmt.Sprintf("Layer_%d", id)
	}
	return name
}
