package main

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/qoifgo/qoif/endian"
	"github.com/qoifgo/qoif/pixel"
)

// source is a decoded input ready for encoding.
type source struct {
	width  uint32
	height uint32
	pixels []pixel.Pixel
	format string
}

// openInput returns a reader for path. "-" is stdin, which is never closed.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

// readImage decodes any registered image format.
func readImage(r io.Reader) (source, error) {
	img, name, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return source{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()

	return source{
		width:  uint32(bounds.Dx()), //nolint: gosec
		height: uint32(bounds.Dy()), //nolint: gosec
		pixels: pixel.FromImage(img),
		format: name,
	}, nil
}

// readRaw reads 32-bit pixel words of the given byte order. The word count
// must match the dimensions.
func readRaw(r io.Reader, dims string, order string) (source, error) {
	width, height, err := parseDimensions(dims)
	if err != nil {
		return source{}, err
	}

	engine, err := endian.ParseEngine(order)
	if err != nil {
		return source{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return source{}, fmt.Errorf("read raw input: %w", err)
	}

	pixels, err := pixel.FromBytes(engine, data)
	if err != nil {
		return source{}, err
	}

	if uint64(len(pixels)) != uint64(width)*uint64(height) {
		return source{}, fmt.Errorf("raw input holds %d pixels, %dx%d needs %d",
			len(pixels), width, height, uint64(width)*uint64(height))
	}

	return source{width: width, height: height, pixels: pixels, format: "raw"}, nil
}

// parseDimensions parses "WxH".
func parseDimensions(s string) (uint32, uint32, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid dimensions %q, want WxH", s)
	}

	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}

	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}

	return uint32(width), uint32(height), nil
}
