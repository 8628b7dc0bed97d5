package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Env carries what every command needs from the process: where to report,
// how to ask, and the settings resolved at startup. Commands get it
// explicitly; nothing here is package state.
type Env struct {
	Log       *logrus.Logger
	Out       io.Writer
	Progress  io.Writer
	Prompt    Prompter
	AssumeYes bool
	Password  string
	Render    RenderOptions
	Workers   int
}

// NewEnv fills the terminal dependent parts of Env. Progress bars are only
// drawn when stderr is a terminal.
func NewEnv(log *logrus.Logger, out io.Writer) *Env {
	e := &Env{Log: log, Out: out, Prompt: NewTermPrompter(), Workers: 1}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		e.Progress = os.Stderr
	}
	return e
}

// PasswordFunc returns the configured password, or asks for one when a
// prompter is available.
func (e *Env) PasswordFunc() PasswordFunc {
	return func(path string) (string, error) {
		if e.Password != "" {
			return e.Password, nil
		}
		if e.Prompt == nil {
			return "", nil
		}
		return e.Prompt.Password(path + " is encrypted. Enter password")
	}
}

func (e *Env) logger() logrus.FieldLogger {
	if e.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return e.Log
}
