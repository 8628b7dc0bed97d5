package cli

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v4/creator"
	"golang.org/x/sync/errgroup"
)

// ImagesToPDF writes one page per image, sized to the image, in argument
// order.
func ImagesToPDF(e *Env, images []string, output string) (string, error) {
	if len(images) == 0 {
		return "", fmt.Errorf("%w: no input images", ErrInvalidInput)
	}
	output, err := EnsureExtension(output, ".pdf")
	if err != nil {
		return "", err
	}
	decoded := make([]image.Image, 0, len(images))
	for _, path := range images {
		img, err := LoadImage(path)
		if err != nil {
			return "", err
		}
		decoded = append(decoded, img)
	}
	if err := PrepareFile(output, e.AssumeYes, e.Prompt); err != nil {
		return "", err
	}

	bar := NewProgress(e.Progress, len(decoded), "Converting...")
	defer bar.Finish()
	c := creator.New()
	for i, img := range decoded {
		cimg, err := c.NewImageFromGoImage(img)
		if err != nil {
			return "", fmt.Errorf("%s: %w", images[i], err)
		}
		c.SetPageSize(creator.PageSize{cimg.Width(), cimg.Height()})
		c.NewPage()
		cimg.SetPos(0, 0)
		if err := c.Draw(cimg); err != nil {
			return "", fmt.Errorf("%s: %w", images[i], err)
		}
		_ = bar.Add(1)
	}
	if err := WriteFileAtomic(output, func(w io.Writer) error { return c.Write(w) }); err != nil {
		return "", err
	}
	e.logger().WithFields(logrus.Fields{"images": len(images), "output": output}).Info("created PDF")
	return output, nil
}

// PDFToImages renders the selected pages (all when pages is empty) into
// outputDir as page_<n>.<ext>. With parallel set, the pages are dealt out to
// e.Workers workers, each rendering its share on one reader of its own.
func PDFToImages(ctx context.Context, e *Env, input, outputDir, pages string, parallel bool) ([]string, error) {
	doc, err := OpenDocument(input, e.PasswordFunc())
	if err != nil {
		return nil, err
	}
	indices, err := ParsePageRange(pages, doc.NumPages())
	if err != nil {
		return nil, err
	}
	dir, err := PrepareDir(outputDir, "out_images", e.AssumeYes, e.Prompt)
	if err != nil {
		return nil, err
	}

	bar := NewProgress(e.Progress, len(indices), "Converting...")
	defer bar.Finish()
	written := make([]string, len(indices))
	renderOne := func(src PageSource, slot, idx int) error {
		page, err := src.Page(idx)
		if err != nil {
			return err
		}
		out, err := RenderPdfPage(idx+1, page, dir, e.Render)
		if err != nil {
			return err
		}
		written[slot] = out
		e.logger().WithFields(logrus.Fields{"page": idx + 1, "output": out}).Debug("rendered page")
		_ = bar.Add(1)
		return nil
	}

	if !parallel || e.Workers <= 1 {
		for slot, idx := range indices {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := renderOne(doc, slot, idx); err != nil {
				return nil, err
			}
		}
	} else {
		open := func() (PageSource, error) { return doc.Clone() }
		if err := renderShards(ctx, e.Workers, indices, open, renderOne); err != nil {
			return nil, err
		}
	}
	e.logger().WithFields(logrus.Fields{"input": input, "dir": dir, "pages": len(indices)}).Info("rendered")
	return written, nil
}

// renderShards deals indices round-robin to at most workers goroutines. Each
// goroutine opens one source and renders its whole share from it.
func renderShards(ctx context.Context, workers int, indices []int, open func() (PageSource, error), render func(src PageSource, slot, idx int) error) error {
	workers = min(workers, len(indices))
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			src, err := open()
			if err != nil {
				return err
			}
			for slot := w; slot < len(indices); slot += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := render(src, slot, indices[slot]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
