package cli

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"

	"github.com/unidoc/unipdf/v4/model"
	"github.com/unidoc/unipdf/v4/render"

	"github.com/sampila/pdfcli/internal/config"
)

// RenderOptions controls page rasterisation.
type RenderOptions struct {
	Width   int
	Format  string
	Quality int
}

// Ext returns the file extension for the configured format.
func (o RenderOptions) Ext() string {
	if o.Format == config.FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// RenderPdfPage rasterises page and writes it to outputDir/page_<n>.<ext>,
// where pageNumber is one-based.
func RenderPdfPage(pageNumber int, page *model.PdfPage, outputDir string, opts RenderOptions) (string, error) {
	if page == nil {
		return "", errors.New("page is nil")
	}

	device := render.NewImageDevice()
	device.OutputWidth = opts.Width

	img, err := device.Render(page)
	if err != nil {
		return "", fmt.Errorf("render page %d: %w", pageNumber, err)
	}

	outputFilePath := filepath.Join(outputDir, fmt.Sprintf("page_%d%s", pageNumber, opts.Ext()))
	err = WriteFileAtomic(outputFilePath, func(w io.Writer) error {
		return EncodeImage(w, img, opts)
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return outputFilePath, nil
}

// EncodeImage writes img as PNG or JPEG.
func EncodeImage(w io.Writer, img image.Image, opts RenderOptions) error {
	switch opts.Format {
	case config.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.Quality})
	case config.FormatPNG, "":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("%w: image format %q", ErrInvalidInput, opts.Format)
	}
}
