// Package image loads base photos, fits them to a requested size and
// encodes rendered previews.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultQuality is the JPEG quality used for previews.
const DefaultQuality = 75

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// LoadImage loads an image from the given file path, detecting the format
// from its content. Supported formats: JPEG, PNG, WebP.
func LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: read file: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// EncodeJPEG encodes img as JPEG to w with the given quality (1-100).
// Out of range qualities are clamped.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// SaveJPEG writes img to path as a JPEG file.
func SaveJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodeJPEG(f, img, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
