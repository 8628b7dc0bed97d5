package cli

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v4/model"
)

// Merge appends every page of every input, in argument order, into output.
func Merge(e *Env, inputs []string, output string) (string, error) {
	if len(inputs) == 0 {
		return "", fmt.Errorf("%w: no input files", ErrInvalidInput)
	}
	output, err := EnsureExtension(output, ".pdf")
	if err != nil {
		return "", err
	}
	docs := make([]*Document, 0, len(inputs))
	total := 0
	for _, in := range inputs {
		doc, err := OpenDocument(in, e.PasswordFunc())
		if err != nil {
			return "", err
		}
		docs = append(docs, doc)
		total += doc.NumPages()
	}
	if err := PrepareFile(output, e.AssumeYes, e.Prompt); err != nil {
		return "", err
	}

	bar := NewProgress(e.Progress, total, "Merging...")
	err = WritePDF(output, func(w *model.PdfWriter) error {
		for _, doc := range docs {
			if err := CopyPages(w, doc, AllPages(doc.NumPages())); err != nil {
				return fmt.Errorf("%s: %w", doc.Path, err)
			}
			_ = bar.Add(doc.NumPages())
		}
		return nil
	})
	_ = bar.Finish()
	if err != nil {
		return "", err
	}
	e.logger().WithFields(logrus.Fields{"inputs": len(inputs), "output": output, "pages": total}).Info("merged")
	return output, nil
}

// Reorder writes input with the pages named by order first and the rest
// after them in their original order. No page is dropped.
func Reorder(e *Env, input, output, order string) (string, error) {
	return rewrite(e, input, output, "reordered", func(total int) ([]int, error) {
		return ReorderPlan(order, total)
	})
}

// Trim writes only the pages named by pages, in the order given.
func Trim(e *Env, input, output, pages string) (string, error) {
	return rewrite(e, input, output, "trimmed", func(total int) ([]int, error) {
		return TrimPlan(pages, total)
	})
}

func rewrite(e *Env, input, output, verb string, plan func(total int) ([]int, error)) (string, error) {
	output, err := EnsureExtension(output, ".pdf")
	if err != nil {
		return "", err
	}
	doc, err := OpenDocument(input, e.PasswordFunc())
	if err != nil {
		return "", err
	}
	indices, err := plan(doc.NumPages())
	if err != nil {
		return "", err
	}
	if err := PrepareFile(output, e.AssumeYes, e.Prompt); err != nil {
		return "", err
	}
	err = WritePDF(output, func(w *model.PdfWriter) error {
		return CopyPages(w, doc, indices)
	})
	if err != nil {
		return "", err
	}
	e.logger().WithFields(logrus.Fields{
		"input":  input,
		"output": output,
		"pages":  len(indices),
	}).Info(verb)
	return output, nil
}

// Split writes one document per comma separated part of parts into
// outputDir as output-1.pdf, output-2.pdf, ... Parts may overlap.
func Split(e *Env, input, outputDir, parts string) ([]string, error) {
	doc, err := OpenDocument(input, e.PasswordFunc())
	if err != nil {
		return nil, err
	}
	groups, err := SplitPlan(parts, doc.NumPages())
	if err != nil {
		return nil, err
	}
	dir, err := PrepareDir(outputDir, "out_pdfs", e.AssumeYes, e.Prompt)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(groups))
	for i, group := range groups {
		path := filepath.Join(dir, fmt.Sprintf("output-%d.pdf", i+1))
		err := WritePDF(path, func(w *model.PdfWriter) error {
			return CopyPages(w, doc, group)
		})
		if err != nil {
			return written, err
		}
		e.logger().WithFields(logrus.Fields{"output": path, "pages": len(group)}).Debug("split part written")
		written = append(written, path)
	}
	e.logger().WithFields(logrus.Fields{"input": input, "dir": dir, "parts": len(written)}).Info("split")
	return written, nil
}
