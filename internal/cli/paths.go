package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const invalidChars = `\/:*?"<>|`

var windowsReserved = func() map[string]struct{} {
	m := map[string]struct{}{"CON": {}, "PRN": {}, "AUX": {}, "NUL": {}}
	for i := 1; i <= 9; i++ {
		m[fmt.Sprintf("COM%d", i)] = struct{}{}
		m[fmt.Sprintf("LPT%d", i)] = struct{}{}
	}
	return m
}()

// ValidFilename reports whether name can be used as a file name on every
// platform we ship for. name must not contain path separators.
func ValidFilename(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return validComponent(name)
}

func validComponent(part string) bool {
	if strings.HasSuffix(part, ".") || strings.HasSuffix(part, " ") {
		return false
	}
	if strings.ContainsAny(part, invalidChars) {
		return false
	}
	stem := part
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	_, reserved := windowsReserved[strings.ToUpper(stem)]
	return !reserved
}

// ValidPath checks every component of path. An empty path falls back to
// def; both empty is invalid. "." and ".." components are allowed.
func ValidPath(path, def string) bool {
	path = strings.TrimSpace(path)
	if path == "" {
		if def == "" {
			return false
		}
		path = def
	}
	path = strings.TrimPrefix(path, filepath.VolumeName(path))
	for _, part := range strings.Split(strings.ReplaceAll(path, `\`, "/"), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if !validComponent(part) {
			return false
		}
	}
	return true
}

// EnsureExtension validates the file name part of path and appends ext when
// it is missing (compared case-insensitively). The result is NFC normalized.
func EnsureExtension(path, ext string) (string, error) {
	path = norm.NFC.String(strings.TrimSpace(path))
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`) {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidPath, path)
	}
	if !ValidPath(path, "") || !ValidFilename(filepath.Base(path)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		path += ext
	}
	return path, nil
}

// PrepareDir validates dir (falling back to def), asks before reusing an
// existing directory unless yes is set, and creates it otherwise.
func PrepareDir(dir, def string, yes bool, p Prompter) (string, error) {
	dir = norm.NFC.String(strings.TrimSpace(dir))
	if !ValidPath(dir, def) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, dir)
	}
	if dir == "" {
		dir = def
	}
	st, err := os.Stat(dir)
	switch {
	case err == nil && !st.IsDir():
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, dir)
	case err == nil:
		if err := confirmOverwrite(dir, "Folder already exists. Overwrite?", yes, p); err != nil {
			return "", err
		}
		return dir, nil
	case !os.IsNotExist(err):
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// PrepareFile asks before replacing an existing file unless yes is set.
func PrepareFile(path string, yes bool, p Prompter) error {
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	return confirmOverwrite(path, "File already exists. Overwrite?", yes, p)
}

func confirmOverwrite(target, question string, yes bool, p Prompter) error {
	if yes {
		return nil
	}
	if p == nil {
		return fmt.Errorf("%w: %s exists (use --yes to overwrite)", ErrAborted, target)
	}
	ok, err := p.Confirm(fmt.Sprintf("%s %s", target, question))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s exists", ErrAborted, target)
	}
	return nil
}
