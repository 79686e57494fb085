package ui

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeIcon(t *testing.T, dir, program string, width, height int) string {
	t.Helper()
	path := IconPath(dir, program)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, pngBytes(t, width, height), 0644))
	return path
}

// icoBytes wraps a PNG image in a single-entry ICO container
func icoBytes(t *testing.T, size int) []byte {
	t.Helper()
	payload := pngBytes(t, size, size)

	var buf bytes.Buffer
	write := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }
	dim := uint8(size)
	if size >= 256 {
		dim = 0
	}
	write(uint16(0))
	write(uint16(1))
	write(uint16(1))
	write(dim)
	write(dim)
	write(uint8(0))
	write(uint8(0))
	write(uint16(1))
	write(uint16(32))
	write(uint32(len(payload)))
	write(uint32(6 + 16))
	buf.Write(payload)
	return buf.Bytes()
}
