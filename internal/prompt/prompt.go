// Package prompt reads interactive values from the user, optionally without
// terminal echo for sensitive input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// fder is satisfied by *os.File and lets the Prompter discover whether a
// stream is attached to a terminal.
type fder interface {
	Fd() uintptr
}

// Prompter writes prompt labels to one stream and reads values from another.
// Prompt text goes to a user-facing stream (normally stderr) so it never
// mixes with data output on stdout.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader

	// Seams so tests can simulate a terminal.
	readPassword func(fd int) ([]byte, error)
	isTerminal   func(fd int) bool
}

// New returns a Prompter reading values from in and writing prompt text to
// out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:           in,
		out:          out,
		reader:       bufio.NewReader(in),
		readPassword: term.ReadPassword,
		isTerminal:   term.IsTerminal,
	}
}

// Line prompts with label and reads one line of input, echoed as usual by
// the terminal. Reaching end of input yields whatever was read so far, with
// no error.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// Secret prompts with label and reads one line without echoing it when
// standard input is a terminal. Because hidden input leaves the cursor on
// the prompt line, a newline is written afterwards, but only when the prompt
// stream is itself a terminal. Without a terminal on input there is no echo
// to suppress, so Secret degrades to a plain line read.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	f, ok := p.in.(fder)
	if !ok || !p.isTerminal(int(f.Fd())) {
		return p.readLine()
	}

	b, err := p.readPassword(int(f.Fd()))
	if p.terminalOut() {
		fmt.Fprintln(p.out)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return string(b), nil
}

// terminalOut reports whether the prompt stream is attached to a terminal.
func (p *Prompter) terminalOut() bool {
	f, ok := p.out.(fder)
	return ok && p.isTerminal(int(f.Fd()))
}

// readLine consumes input up to and including the next newline. The line
// terminator is stripped; the rest of the line is returned verbatim.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
