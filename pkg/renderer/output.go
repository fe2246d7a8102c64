package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
)

// Supported output formats
const (
	FormatPNG = "png"
	FormatPPM = "ppm"
)

// ErrUnknownFormat is returned for output formats other than png and ppm
var ErrUnknownFormat = xerrors.New("unknown image format")

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return xerrors.Errorf("encoding png: %w", err)
	}
	return nil
}

// WritePPM encodes img as a plain-text P3 pixmap, top row first
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return xerrors.Errorf("writing ppm header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return xerrors.Errorf("writing ppm pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return xerrors.Errorf("flushing ppm: %w", err)
	}
	return nil
}

// SaveImage writes img to path in the given format, creating parent directories
func SaveImage(path, format string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch format {
	case FormatPNG:
		encode = WritePNG
	case FormatPPM:
		encode = WritePPM
	default:
		return xerrors.Errorf("saving %s as %q: %w", path, format, ErrUnknownFormat)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return xerrors.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("creating %s: %w", path, err)
	}

	if err := encode(file, img); err != nil {
		file.Close()
		return xerrors.Errorf("saving %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return xerrors.Errorf("closing %s: %w", path, err)
	}
	return nil
}
