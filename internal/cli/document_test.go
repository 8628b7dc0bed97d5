package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unipdf/v4/model"

	"github.com/sampila/pdfcli/pkg/pagespec"
)

type fakeSource struct {
	pages []*model.PdfPage
	reads []int
}

func newFakeSource(n int) *fakeSource {
	s := &fakeSource{}
	for i := 0; i < n; i++ {
		s.pages = append(s.pages, model.NewPdfPage())
	}
	return s
}

func (s *fakeSource) NumPages() int { return len(s.pages) }

func (s *fakeSource) Page(i int) (*model.PdfPage, error) {
	s.reads = append(s.reads, i)
	return s.pages[i], nil
}

type fakeSink struct {
	pages []*model.PdfPage
	fail  int
}

func (s *fakeSink) AddPage(p *model.PdfPage) error {
	if s.fail > 0 && len(s.pages)+1 == s.fail {
		return errors.New("disk full")
	}
	s.pages = append(s.pages, p)
	return nil
}

func TestCopyPagesOrder(t *testing.T) {
	src := newFakeSource(5)
	dst := &fakeSink{}
	require.NoError(t, CopyPages(dst, src, []int{2, 0, 1, 3, 4}))

	require.Len(t, dst.pages, 5)
	for i, want := range []int{2, 0, 1, 3, 4} {
		assert.Same(t, src.pages[want], dst.pages[i], "position %d", i)
	}
}

func TestCopyPagesDuplicates(t *testing.T) {
	src := newFakeSource(3)
	dst := &fakeSink{}
	require.NoError(t, CopyPages(dst, src, []int{1, 1}))
	assert.Len(t, dst.pages, 2)
}

func TestCopyPagesValidatesFirst(t *testing.T) {
	src := newFakeSource(3)
	dst := &fakeSink{}
	err := CopyPages(dst, src, []int{0, 1, 3})
	assert.ErrorIs(t, err, pagespec.ErrOutOfRange)
	assert.Empty(t, dst.pages)
	assert.Empty(t, src.reads)

	err = CopyPages(dst, src, nil)
	assert.ErrorIs(t, err, pagespec.ErrOutOfRange)
}

func TestCopyPagesSinkError(t *testing.T) {
	src := newFakeSource(3)
	dst := &fakeSink{fail: 2}
	err := CopyPages(dst, src, []int{0, 1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy page 2")
}

func TestAllPages(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, AllPages(3))
	assert.Empty(t, AllPages(0))
}

func TestOpenDocumentMissing(t *testing.T) {
	_, err := OpenDocument(filepath.Join(t.TempDir(), "missing.pdf"), nil)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestOpenDocumentNotPDF(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(p, []byte("just some text\n"), 0o644))
	_, err := OpenDocument(p, nil)
	assert.ErrorIs(t, err, ErrNotPDF)
	assert.Contains(t, err.Error(), "text/plain")
}
