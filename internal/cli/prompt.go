package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for decisions the command line did not settle.
type Prompter interface {
	Confirm(question string) (bool, error)
	Password(question string) (string, error)
}

// TermPrompter prompts on a terminal. It refuses to prompt when In is not a
// terminal so that scripted runs fail instead of hanging.
type TermPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTermPrompter returns a prompter on stdin/stderr, or nil when stdin is
// not a terminal.
func NewTermPrompter() Prompter {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	return &TermPrompter{In: os.Stdin, Out: os.Stderr}
}

func (p *TermPrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *TermPrompter) Password(question string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", question)
	b, err := term.ReadPassword(int(p.In.Fd()))
	fmt.Fprintln(p.Out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
