package cli

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a bar that clears itself when done. A nil writer
// discards output.
func NewProgress(w io.Writer, total int, desc string) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
