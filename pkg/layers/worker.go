package layers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
)

// Request types
const (
	RequestParse  = "parse"
	RequestExport = "export"
)

// Response types
const (
	ResponseParsed = "parsed"
	ResponseError  = "error"
	ResponseExport = "exportData"
)

var (
	ErrNoDocument = errors.New("PSD data not found. Please reload file.")
	ErrNoLayers   = errors.New("No visible raster layers found in this PSD.")
)

// Request is a message to the worker. Buffer is read by parse,
// IDs and Format by export.
type Request struct {
	Type   string
	Buffer []byte
	IDs    []int
	Format string
}

// LayerInfo describes one extracted layer
type LayerInfo struct {
	ID        int
	Name      string
	Width     int
	Height    int
	Thumbnail string
}

// File is one exported image
type File struct {
	Name string
	Data []byte
}

// Response is a message from the worker
type Response struct {
	Type    string
	Layers  []LayerInfo
	Files   []File
	Message string
}

// Worker owns the last parsed document. Layer IDs are indexes into the
// layers found by the last parse.
type Worker struct {
	decoder Decoder
	doc     *Document
	layers  []*Node
}

// NewWorker creates a worker that decodes with dec
func NewWorker(dec Decoder) *Worker {
	return &Worker{decoder: dec}
}

// Start runs the worker on its own goroutine. It stops when ctx is done or
// requests is closed, closing the returned channel.
func (w *Worker) Start(ctx context.Context, requests <-chan Request) <-chan Response {
	responses := make(chan Response)
	go func() {
		defer close(responses)
		for {
			select {
			case <-ctx.Done():
				return
			case req, ok := <-requests:
				if !ok {
					return
				}
				select {
				case responses <- w.Handle(req):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return responses
}

// Handle processes one request. A failure becomes an error response and
// leaves the worker ready for the next request.
func (w *Worker) Handle(req Request) Response {
	var (
		resp Response
		err  error
	)
	switch req.Type {
	case RequestParse:
		resp, err = w.parse(req.Buffer)
	case RequestExport:
		resp, err = w.export(req.IDs, req.Format)
	default:
		err = fmt.Errorf("unknown request type %q", req.Type)
	}
	if err != nil {
		log.Printf("Layer worker: %v", err)
		return Response{Type: ResponseError, Message: err.Error()}
	}
	return resp
}

func (w *Worker) parse(data []byte) (Response, error) {
	doc, err := w.decoder.Decode(data)
	if err != nil {
		return Response{}, err
	}
	found := collect(doc.Children, nil)
	if len(found) == 0 {
		return Response{}, ErrNoLayers
	}

	infos := make([]LayerInfo, 0, len(found))
	for i, n := range found {
		thumb, err := Thumbnail(n.Image)
		if err != nil {
			return Response{}, err
		}
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("Layer %d", i+1)
		}
		b := n.Image.Bounds()
		infos = append(infos, LayerInfo{
			ID:        i,
			Name:      name,
			Width:     b.Dx(),
			Height:    b.Dy(),
			Thumbnail: thumb,
		})
	}

	w.doc = doc
	w.layers = found
	return Response{Type: ResponseParsed, Layers: infos}, nil
}

func (w *Worker) export(ids []int, format string) (Response, error) {
	if w.doc == nil {
		return Response{}, ErrNoDocument
	}

	var files []File
	for id, n := range w.layers {
		if !slices.Contains(ids, id) {
			continue
		}
		data, ext, err := Encode(Compose(w.doc, n), format)
		if err != nil {
			return Response{}, err
		}
		files = append(files, File{
			Name: FileName(n.Name, id) + "." + ext,
			Data: data,
		})
	}
	return Response{Type: ResponseExport, Files: files}, nil
}
