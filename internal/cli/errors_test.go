package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sampila/pdfcli/internal/config"
	"github.com/sampila/pdfcli/pkg/pagespec"
)

func TestExitCode(t *testing.T) {
	_, specErr := pagespec.ParseSpec("3-", false, false)
	rangeErr := pagespec.ValidateBounds([]int{9}, 2)
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{specErr, ExitUsage},
		{rangeErr, ExitUsage},
		{fmt.Errorf("wrap: %w", config.ErrInvalid), ExitUsage},
		{fmt.Errorf("out: %w", ErrInvalidPath), ExitUsage},
		{ErrAborted, ExitUsage},
		{fmt.Errorf("x: %w", ErrInputNotFound), ExitNotFound},
		{&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, ExitNotFound},
		{fmt.Errorf("x: %w", ErrBadPassword), ExitInvalidPDF},
		{ErrEncrypted, ExitInvalidPDF},
		{ErrNotPDF, ExitInvalidPDF},
		{errors.New("disk full"), ExitOutputError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExitCode(tc.err), "%v", tc.err)
	}
}
