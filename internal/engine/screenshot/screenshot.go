// Package screenshot saves rendered frames as image files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Image formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// ErrUnknownFormat is returned by New for an unsupported image format.
var ErrUnknownFormat = errors.New("unknown screenshot format")

var encoders = map[string]func(io.Writer, image.Image) error{
	FormatPNG: png.Encode,
	FormatBMP: bmp.Encode,
}

// Capture writes frames to timestamped image files.
type Capture struct {
	outputDir string
	prefix    string
	format    string
	encode    func(io.Writer, image.Image) error
	now       func() time.Time
}

// New creates a capture writing <prefix>_<timestamp>.<format> files into
// outputDir. An empty outputDir means the working directory and an empty
// format means PNG.
func New(outputDir, prefix, format string) (*Capture, error) {
	if format == "" {
		format = FormatPNG
	}
	encode, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		encode:    encode,
		now:       time.Now,
	}, nil
}

// Filename returns the path the next capture would be written to.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", c.prefix, timestamp, c.format)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// SavePixels saves bottom-up RGBA pixels as read from OpenGL.
// The image is flipped vertically since OpenGL has origin at bottom-left.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := range height {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return c.SaveImage(img)
}

// SaveImage saves an image.
func (c *Capture) SaveImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := c.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.format, err)
	}

	return filename, nil
}
