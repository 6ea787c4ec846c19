// Package imageenc turns rendered charts and QR codes into PNG data URIs and files.
package imageenc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"io"
)

// DataURIPrefix is prepended to every encoded image.
const DataURIPrefix = "data:image/png;base64,"

// Image is anything that can encode itself as PNG.
type Image interface {
	EncodePNG(w io.Writer) error
}

// RasterImage wraps an in-memory raster.
type RasterImage struct {
	Img image.Image
}

// EncodePNG writes the raster as PNG.
func (r RasterImage) EncodePNG(w io.Writer) error {
	if r.Img == nil {
		return errors.New("raster image is nil")
	}
	return png.Encode(w, r.Img)
}

// FigureImage wraps a figure that already knows how to produce PNG bytes,
// such as the io.WriterTo returned by plot.Plot.WriterTo.
type FigureImage struct {
	Figure io.WriterTo
}

// EncodePNG streams the figure's PNG bytes into w.
func (f FigureImage) EncodePNG(w io.Writer) error {
	if f.Figure == nil {
		return errors.New("figure is nil")
	}
	_, err := f.Figure.WriteTo(w)
	return err
}

// ToBase64 encodes img as a PNG data URI. It reports false when img is nil,
// encoding fails or nothing was produced.
func ToBase64(img Image) (string, bool) {
	if img == nil {
		return "", false
	}
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return "", false
	}
	if buf.Len() == 0 {
		return "", false
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), true
}
