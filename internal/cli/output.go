package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const writeBufSize = 64 * 1024

// WriteFileAtomic runs write against a temporary file next to dest and
// renames it into place once write and the flush succeed. On failure dest
// is left untouched and the temporary file is removed.
func WriteFileAtomic(dest string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriterSize(tmp, writeBufSize)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}
