package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImageSize bounds the output dimensions of a processed image.
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	SizeThumbnail = ImageSize{Name: "thumbnail", Width: 150, Height: 150}
	SizeListing   = ImageSize{Name: "listing", Width: 800, Height: 800}
	SizeFull      = ImageSize{Name: "full", Width: 1600, Height: 1600}
)

// Processor downscales and re-encodes product photos before storage.
type Processor struct {
	quality int
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Process decodes the image, fits it inside size keeping the aspect
// ratio, and re-encodes it in the requested format. An empty format
// keeps the source format.
func (p *Processor) Process(reader io.Reader, size ImageSize, format string) (io.Reader, error) {
	img, srcFormat, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := p.resize(img, size.Width, size.Height)

	if format == "" {
		format = srcFormat
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &buf, nil
}

func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight
	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// IsValidImage reports whether the reader holds a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
