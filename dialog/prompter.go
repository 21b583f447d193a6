package dialog

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/wasm-proxy/errors"
)

// Prompter asks a person for input.
type Prompter interface {
	// Print shows a message outside any prompt.
	Print(msg string) error
	// Input asks for one line of text until check accepts it.
	Input(prompt string, dep int, check func(string) error) (string, error)
	// Select asks for one of options and returns its index.
	Select(prompt string, options []string, dep int) (int, error)
}

// NewTerminal returns the interactive prompter when in is a terminal and
// a line-reading prompter otherwise.
func NewTerminal(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newTTY(f, out)
	}
	return NewLines(in, out)
}

func indent(dep int) string {
	return strings.Repeat("  ", dep)
}

// Lines prompts over plain text streams, one answer per line. It suits
// pipes and scripted sessions.
type Lines struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLines creates a line prompter.
func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{in: bufio.NewReader(in), out: out}
}

func (l *Lines) Print(msg string) error {
	_, err := fmt.Fprintln(l.out, msg)
	return err
}

func (l *Lines) Input(prompt string, dep int, check func(string) error) (string, error) {
	for {
		if _, err := fmt.Fprintf(l.out, "%s%s: ", indent(dep), prompt); err != nil {
			return "", err
		}
		line, err := l.line()
		if err != nil {
			return "", err
		}
		cerr := check(line)
		if cerr == nil {
			return line, nil
		}
		if _, err := fmt.Fprintf(l.out, "%s%v\n", indent(dep), cerr); err != nil {
			return "", err
		}
	}
}

// Select accepts either the 1-based number of an option or its label.
func (l *Lines) Select(prompt string, options []string, dep int) (int, error) {
	if len(options) == 0 {
		return 0, errors.InvalidInput(errors.PhaseDialog, "select without options")
	}
	pad := indent(dep)
	if _, err := fmt.Fprintf(l.out, "%s%s\n", pad, prompt); err != nil {
		return 0, err
	}
	for i, o := range options {
		if _, err := fmt.Fprintf(l.out, "%s  %d) %s\n", pad, i+1, o); err != nil {
			return 0, err
		}
	}
	var choice int
	_, err := l.Input("choice", dep, func(s string) error {
		for i, o := range options {
			if s == o {
				choice = i
				return nil
			}
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(options) {
			return fmt.Errorf("enter a number from 1 to %d", len(options))
		}
		choice = n - 1
		return nil
	})
	return choice, err
}

func (l *Lines) line() (string, error) {
	s, err := l.in.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return "", errors.Wrap(errors.PhaseDialog, errors.KindExhausted, err, "reading answer")
		}
		if s == "" {
			return "", errors.New(errors.PhaseDialog, errors.KindExhausted).Detail("input closed").Build()
		}
	}
	return strings.TrimRight(s, "\r\n"), nil
}
