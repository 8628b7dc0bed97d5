package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sampila/pdfcli/internal/config"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	p := filepath.Join(dir, "photo.dat")
	writePNG(t, p, img)

	got, err := LoadImage(p)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Bounds().Dx())
	assert.Equal(t, 3, got.Bounds().Dy())
	r, g, b, a := got.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
	// transparent pixels end up white
	r, g, b, a = got.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestLoadImageRejects(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4\n%fake\n"), 0o644))
	_, err := LoadImage(p)
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = LoadImage(filepath.Join(dir, "none.png"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestFlattenAlphaOpaque(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Same(t, img, FlattenAlpha(img))
}

func TestEncodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	var buf bytes.Buffer
	require.NoError(t, EncodeImage(&buf, img, RenderOptions{Format: config.FormatPNG}))
	_, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	buf.Reset()
	require.NoError(t, EncodeImage(&buf, img, RenderOptions{Format: config.FormatJPEG, Quality: 80}))
	_, format, err = image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	assert.ErrorIs(t, EncodeImage(&buf, img, RenderOptions{Format: "gif"}), ErrInvalidInput)
	assert.Equal(t, ".jpg", RenderOptions{Format: config.FormatJPEG}.Ext())
	assert.Equal(t, ".png", RenderOptions{}.Ext())
}
