package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// prompter asks the operator for values that should not appear in flags.
type prompter interface {
	Secret(label string) (string, error)
}

// terminalPrompter reads without echo on a terminal and line by line from
// a pipe, so scripts can feed passwords on stdin.
type terminalPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

func newTerminalPrompter(in *os.File, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *terminalPrompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return string(secret), nil
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "read password")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
