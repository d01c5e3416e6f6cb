// Package layers extracts raster layers from a decoded layered document and
// exports them as images. The work runs on a worker goroutine that talks to
// its caller only through Request and Response messages.
package layers

import (
	"bytes"
	"fmt"
	"image"

	// Formats accepted by ImageDecoder
	_ "image/jpeg"
	_ "image/png"
)

// Node is a layer or a group in a document tree. Groups have a non-nil
// Children slice, layers carry their pixels in Image.
type Node struct {
	Name     string
	Hidden   bool
	Left     int
	Top      int
	Image    image.Image
	Children []*Node
}

// IsGroup reports whether the node holds children instead of pixels
func (n *Node) IsGroup() bool {
	return n.Children != nil
}

// Document is a decoded file: a canvas size and its top-level nodes
type Document struct {
	Width    int
	Height   int
	Children []*Node
}

// Decoder turns raw file bytes into a document tree
type Decoder interface {
	Decode(data []byte) (*Document, error)
}

// ImageDecoder reads a flat PNG or JPEG as a document with a single layer
type ImageDecoder struct {
	Name string
}

// Decode implements Decoder
func (d ImageDecoder) Decode(data []byte) (*Document, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	name := d.Name
	if name == "" {
		name = format
	}
	b := img.Bounds()
	return &Document{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Children: []*Node{{Name: name, Image: img}},
	}, nil
}

// collect returns the visible raster leaves in document order. Hidden
// groups are skipped with everything below them.
func collect(nodes []*Node, out []*Node) []*Node {
	for _, n := range nodes {
		if n.IsGroup() {
			if !n.Hidden {
				out = collect(n.Children, out)
			}
			continue
		}
		if n.Hidden || n.Image == nil {
			continue
		}
		if b := n.Image.Bounds(); b.Dx() > 0 && b.Dy() > 0 {
			out = append(out, n)
		}
	}
	return out
}
