package imageenc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
)

type writerToFunc func(w io.Writer) (int64, error)

func (f writerToFunc) WriteTo(w io.Writer) (int64, error) { return f(w) }

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 73, G: 109, B: 137, A: 255})
		}
	}
	return img
}

func TestToBase64Raster(t *testing.T) {
	uri, ok := ToBase64(RasterImage{Img: solid(4, 4)})
	if !ok {
		t.Fatal("expected raster to encode")
	}
	if !strings.HasPrefix(uri, DataURIPrefix) {
		t.Fatalf("unexpected prefix %q", uri[:20])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Fatal("expected PNG signature")
	}
}

func TestToBase64FigureOnly(t *testing.T) {
	fig := writerToFunc(func(w io.Writer) (int64, error) {
		n, err := w.Write([]byte("\x89PNG fake figure bytes"))
		return int64(n), err
	})
	uri, ok := ToBase64(FigureImage{Figure: fig})
	if !ok {
		t.Fatal("expected figure to encode")
	}
	want := DataURIPrefix + base64.StdEncoding.EncodeToString([]byte("\x89PNG fake figure bytes"))
	if uri != want {
		t.Fatalf("expected %q, got %q", want, uri)
	}
}

func TestToBase64Failures(t *testing.T) {
	failing := writerToFunc(func(w io.Writer) (int64, error) {
		return 0, errors.New("savefig failed")
	})
	empty := writerToFunc(func(w io.Writer) (int64, error) { return 0, nil })

	cases := map[string]Image{
		"nil image":        nil,
		"nil raster":       RasterImage{},
		"nil figure":       FigureImage{},
		"failing producer": FigureImage{Figure: failing},
		"empty producer":   FigureImage{Figure: empty},
	}
	for name, img := range cases {
		if uri, ok := ToBase64(img); ok || uri != "" {
			t.Fatalf("%s: expected failure, got %q", name, uri)
		}
	}
}
