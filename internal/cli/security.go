package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v4/core/security"
	"github.com/unidoc/unipdf/v4/model"
	"github.com/unidoc/unipdf/v4/model/optimize"
)

// DefaultAlgorithm is used when encrypt is given no algorithm.
const DefaultAlgorithm = "AES-256"

var algorithms = map[string]model.EncryptionAlgorithm{
	"RC4-128": model.RC4_128bit,
	"AES-128": model.AES_128bit,
	"AES-256": model.AES_256bit,
}

// Algorithms lists the accepted algorithm names.
func Algorithms() []string { return []string{"RC4-128", "AES-128", "AES-256"} }

// ParseAlgorithm maps an algorithm name, case-insensitively, to unipdf's
// constant.
func ParseAlgorithm(name string) (model.EncryptionAlgorithm, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		name = DefaultAlgorithm
	}
	alg, ok := algorithms[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
	return alg, nil
}

// EncryptOptions configures Encrypt. OwnerPassword defaults to
// UserPassword.
type EncryptOptions struct {
	UserPassword  string
	OwnerPassword string
	Algorithm     string
}

// Encrypt copies input into a password protected output.
func Encrypt(e *Env, input, output string, opts EncryptOptions) (string, error) {
	alg, err := ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return "", err
	}
	if opts.UserPassword == "" {
		return "", fmt.Errorf("%w: empty password", ErrInvalidInput)
	}
	owner := opts.OwnerPassword
	if owner == "" {
		owner = opts.UserPassword
	}
	output, err = EnsureExtension(output, ".pdf")
	if err != nil {
		return "", err
	}
	doc, err := OpenDocument(input, e.PasswordFunc())
	if err != nil {
		return "", err
	}
	if err := PrepareFile(output, e.AssumeYes, e.Prompt); err != nil {
		return "", err
	}
	err = WritePDF(output, func(w *model.PdfWriter) error {
		if err := CopyPages(w, doc, AllPages(doc.NumPages())); err != nil {
			return err
		}
		return w.Encrypt([]byte(opts.UserPassword), []byte(owner), &model.EncryptOptions{
			Permissions: security.PermOwner,
			Algorithm:   alg,
		})
	})
	if err != nil {
		return "", err
	}
	e.logger().WithFields(logrus.Fields{"input": input, "output": output}).Info("encrypted")
	return output, nil
}

// CompressOptions maps a 0-9 level onto the optimizer. Level 0 only merges
// duplicate objects; stream compression starts at 1, object streams at 5,
// and image recompression at 7.
func CompressOptions(level int) (optimize.Options, error) {
	if level < 0 || level > 9 {
		return optimize.Options{}, fmt.Errorf("%w: level %d is outside of range 0-9", ErrInvalidInput, level)
	}
	opts := optimize.Options{
		CombineDuplicateDirectObjects:   true,
		CombineIdenticalIndirectObjects: true,
		CombineDuplicateStreams:         true,
	}
	if level >= 1 {
		opts.CompressStreams = true
	}
	if level >= 5 {
		opts.UseObjectStreams = true
	}
	if level >= 7 {
		opts.ImageQuality = 100 - (level-6)*10
		opts.ImageUpperPPI = 150
	}
	return opts, nil
}

// Compress rewrites input through the optimizer and returns the size
// reduction in percent.
func Compress(e *Env, input, output string, level int) (string, float64, error) {
	opts, err := CompressOptions(level)
	if err != nil {
		return "", 0, err
	}
	output, err = EnsureExtension(output, ".pdf")
	if err != nil {
		return "", 0, err
	}
	doc, err := OpenDocument(input, e.PasswordFunc())
	if err != nil {
		return "", 0, err
	}
	if err := PrepareFile(output, e.AssumeYes, e.Prompt); err != nil {
		return "", 0, err
	}
	err = WritePDF(output, func(w *model.PdfWriter) error {
		w.SetOptimizer(optimize.New(opts))
		return CopyPages(w, doc, AllPages(doc.NumPages()))
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to compress PDF: %w", err)
	}
	st, err := os.Stat(output)
	if err != nil {
		return "", 0, err
	}
	reduced := Reduction(doc.Size(), st.Size())
	e.logger().WithFields(logrus.Fields{"input": input, "output": output, "level": level}).Info("compressed")
	return output, reduced, nil
}

// Reduction returns how much smaller after is than before, in percent,
// rounded to two decimals. A larger output yields a negative value.
func Reduction(before, after int64) float64 {
	if before <= 0 {
		return 0
	}
	pct := (1 - float64(after)/float64(before)) * 100
	return math.Round(pct*100) / 100
}
