// layerx lists the layers of an image and exports them through the layer
// worker.
//
// Usage:
//
//	layerx image.png                      # list layers
//	layerx -x 0 -f jpeg -o out image.png  # export layer 0 as out/<name>.jpg
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golangdaddy/rush80/pkg/layers"
)

func main() {
	var (
		ids    string
		format string
		outDir string
	)
	flag.StringVar(&ids, "x", "", "Comma separated layer IDs to export (empty lists layers)")
	flag.StringVar(&format, "f", layers.FormatPNG, "Export format: 'png' or 'jpeg'")
	flag.StringVar(&outDir, "o", ".", "Output directory")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: layerx [options] <image>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	requests := make(chan layers.Request)
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	responses := layers.NewWorker(layers.ImageDecoder{Name: name}).Start(ctx, requests)

	requests <- layers.Request{Type: layers.RequestParse, Buffer: data}
	resp := <-responses
	if resp.Type == layers.ResponseError {
		log.Fatal(resp.Message)
	}

	if ids == "" {
		for _, l := range resp.Layers {
			fmt.Printf("%3d  %-24s %dx%d\n", l.ID, l.Name, l.Width, l.Height)
		}
		return
	}

	selected, err := parseIDs(ids)
	if err != nil {
		log.Fatal(err)
	}
	requests <- layers.Request{Type: layers.RequestExport, IDs: selected, Format: format}
	resp = <-responses
	if resp.Type == layers.ResponseError {
		log.Fatal(resp.Message)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", outDir, err)
	}
	for _, f := range resp.Files {
		dst := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", dst, err)
		}
		fmt.Println(dst)
	}
}

func parseIDs(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid layer id %q", part)
		}
		out = append(out, id)
	}
	return out, nil
}
