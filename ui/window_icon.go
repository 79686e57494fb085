package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// maxIconSize caps the window icon edge in pixels
const maxIconSize = 256

// LoadWindowIcon reads an .ico file and converts it into a PNG resource
// Fyne can use as application icon.
func LoadWindowIcon(path string) (fyne.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	icon, err := ico.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode ICO %s: %w", path, err)
	}
	icon = scaleDown(icon, maxIconSize)

	var buf bytes.Buffer
	if err := png.Encode(&buf, icon); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	return fyne.NewStaticResource(name, buf.Bytes()), nil
}

// scaleDown shrinks img so that neither edge exceeds size
func scaleDown(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= size && h <= size {
		return img
	}

	if w >= h {
		h = h * size / w
		w = size
	} else {
		w = w * size / h
		h = size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
