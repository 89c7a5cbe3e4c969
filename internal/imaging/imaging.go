// Package imaging normalises uploaded catalog photos and renders the
// fallback image shown for broken image links.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// DefaultMaxDimension is the largest width or height kept for uploads.
const DefaultMaxDimension = 1024

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Result contains the processed image data.
type Result struct {
	Data []byte
	MIME string
}

// Processor re-encodes uploads within a bounding box.
type Processor struct {
	MaxDimension int
}

// Process reads image data, validates the format by sniffing bytes,
// downscales to fit MaxDimension and re-encodes as JPEG.
func (p Processor) Process(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	maxDim := p.MaxDimension
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	img = fit(img, maxDim, maxDim)

	return encodeJPEG(img)
}

// Placeholder renders a neutral w×h JPEG with a framed silhouette, used when
// a catalog image link is broken.
func Placeholder(w, h int) (*Result, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %dx%d", w, h)
	}

	// Draw at a small size and let the scaler smooth it up.
	const base = 64
	src := image.NewRGBA(image.Rect(0, 0, base, base))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.RGBA{0xf3, 0xf4, 0xf6, 0xff}}, image.Point{}, draw.Src)
	frame := color.RGBA{0xd1, 0xd5, 0xdb, 0xff}
	draw.Draw(src, image.Rect(16, 12, 48, 52), &image.Uniform{frame}, image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(20, 16, 44, 48), &image.Uniform{color.RGBA{0xe5, 0xe7, 0xeb, 0xff}}, image.Point{}, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return encodeJPEG(dst)
}

func encodeJPEG(img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return &Result{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// fit resizes img so it fits within maxW×maxH, preserving aspect ratio.
// Images already within bounds are returned unchanged.
func fit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxW && h <= maxH {
		return img
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
