package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/unidoc/unipdf/v4/model"

	"github.com/sampila/pdfcli/pkg/pagespec"
)

// PageSource is a document pages can be copied from. Indices are zero-based.
type PageSource interface {
	NumPages() int
	Page(i int) (*model.PdfPage, error)
}

// PageSink receives copied pages. *model.PdfWriter implements it.
type PageSink interface {
	AddPage(page *model.PdfPage) error
}

// PasswordFunc supplies the password for an encrypted input.
type PasswordFunc func(path string) (string, error)

// Document is an opened, decrypted PDF.
type Document struct {
	Path     string
	data     []byte
	password string
	reader   *model.PdfReader
	pages    int
}

var _ PageSource = (*Document)(nil)

// OpenDocument reads path, checks that it is a PDF, and decrypts it when
// needed. An empty user password is tried before asking pw.
func OpenDocument(path string, pw PasswordFunc) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotPDF, path, mt.String())
	}
	d := &Document{Path: path, data: data}
	if err := d.open(pw); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) open(pw PasswordFunc) error {
	r, err := model.NewPdfReader(bytes.NewReader(d.data))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotPDF, d.Path, err)
	}
	encrypted, err := r.IsEncrypted()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotPDF, d.Path, err)
	}
	if encrypted {
		if err := d.decrypt(r, pw); err != nil {
			return err
		}
	}
	n, err := r.GetNumPages()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotPDF, d.Path, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s has no pages", ErrInvalidInput, d.Path)
	}
	d.reader, d.pages = r, n
	return nil
}

func (d *Document) decrypt(r *model.PdfReader, pw PasswordFunc) error {
	if d.password == "" {
		if ok, err := r.Decrypt([]byte("")); err == nil && ok {
			return nil
		}
		if pw == nil {
			return fmt.Errorf("%w: %s", ErrEncrypted, d.Path)
		}
		p, err := pw(d.Path)
		if err != nil {
			return err
		}
		if p == "" {
			return fmt.Errorf("%w: %s", ErrEncrypted, d.Path)
		}
		d.password = p
	}
	ok, err := r.Decrypt([]byte(d.password))
	if err != nil {
		return fmt.Errorf("decrypt %s: %w", d.Path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrBadPassword, d.Path)
	}
	return nil
}

// Clone opens an independent reader over the same bytes. Readers are not
// safe for concurrent use, so each worker takes its own clone.
func (d *Document) Clone() (*Document, error) {
	c := &Document{Path: d.Path, data: d.data, password: d.password}
	if err := c.open(nil); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *Document) NumPages() int { return d.pages }

// Page returns page i, counting from zero.
func (d *Document) Page(i int) (*model.PdfPage, error) {
	if err := pagespec.ValidateBounds([]int{i}, d.pages); err != nil {
		return nil, err
	}
	return d.reader.GetPage(i + 1)
}

// Size returns the input size in bytes.
func (d *Document) Size() int64 { return int64(len(d.data)) }

// CopyPages appends the pages of src named by indices to dst, in order.
// The whole plan is bounds checked before the first page is copied.
func CopyPages(dst PageSink, src PageSource, indices []int) error {
	if err := pagespec.ValidateBounds(indices, src.NumPages()); err != nil {
		return err
	}
	for _, i := range indices {
		page, err := src.Page(i)
		if err != nil {
			return fmt.Errorf("read page %d: %w", i+1, err)
		}
		if err := dst.AddPage(page); err != nil {
			return fmt.Errorf("copy page %d: %w", i+1, err)
		}
	}
	return nil
}

// AllPages returns 0..n-1.
func AllPages(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// WritePDF builds a document with fill and writes it atomically to path.
func WritePDF(path string, fill func(w *model.PdfWriter) error) error {
	w := model.NewPdfWriter()
	if err := fill(&w); err != nil {
		return err
	}
	return WriteFileAtomic(path, func(out io.Writer) error {
		return w.Write(out)
	})
}
