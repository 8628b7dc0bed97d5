package cli

import (
	"errors"
	"io/fs"

	"github.com/sampila/pdfcli/internal/config"
	"github.com/sampila/pdfcli/pkg/pagespec"
)

var (
	ErrInvalidPath          = errors.New("path is invalid")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInputNotFound        = errors.New("input not found")
	ErrNotPDF               = errors.New("not a PDF file")
	ErrNotImage             = errors.New("not an image file")
	ErrEncrypted            = errors.New("document is encrypted and no password was given")
	ErrBadPassword          = errors.New("wrong password")
	ErrAborted              = errors.New("aborted")
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")
)

// Exit codes returned by the binary.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitNotFound    = 2
	ExitInvalidPDF  = 3
	ExitOutputError = 4
)

// ExitCode maps an error to the process exit code. Only sentinels and
// standard error types are inspected, never message text.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, ErrNotPDF), errors.Is(err, ErrEncrypted), errors.Is(err, ErrBadPassword):
		return ExitInvalidPDF
	case errors.Is(err, pagespec.ErrMalformedSpec),
		errors.Is(err, pagespec.ErrOutOfRange),
		errors.Is(err, pagespec.ErrPolicy),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, ErrInvalidPath),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotImage),
		errors.Is(err, ErrUnsupportedAlgorithm),
		errors.Is(err, ErrAborted):
		return ExitUsage
	default:
		return ExitOutputError
	}
}
