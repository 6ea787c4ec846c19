package imageenc

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// QRSize is the edge length in pixels of generated QR codes.
const QRSize = 256

// QRCode encodes payload as a scaled QR code raster.
func QRCode(payload string) (RasterImage, error) {
	if payload == "" {
		return RasterImage{}, errors.New("qr payload is empty")
	}
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return RasterImage{}, fmt.Errorf("encode qr: %w", err)
	}
	scaled, err := barcode.Scale(code, QRSize, QRSize)
	if err != nil {
		return RasterImage{}, fmt.Errorf("scale qr: %w", err)
	}
	return RasterImage{Img: scaled}, nil
}

// WriteQRFile writes payload as a QR PNG at path and returns a handle on the
// written image positioned at its start. The caller closes it. Each call
// encodes into its own temp file renamed over path, so concurrent writers of
// the same path never truncate a handle another caller is reading.
func WriteQRFile(payload, path string) (*os.File, error) {
	img, err := QRCode(payload)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	discard := func(err error) (*os.File, error) {
		f.Close()
		_ = os.Remove(f.Name())
		return nil, err
	}
	if err := png.Encode(f, img.Img); err != nil {
		return discard(fmt.Errorf("write qr %s: %w", path, err))
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return discard(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
