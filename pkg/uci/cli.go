package uci

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineReader yields protocol input one line at a time. io.EOF ends the session.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// NewLineReader reads os.Stdin with line editing when it is a terminal and
// with a plain scanner when a GUI talks through a pipe.
func NewLineReader() (LineReader, error) {
	var fd = os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		var rl, err = readline.NewEx(&readline.Config{
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			return nil, err
		}
		return &terminalReader{rl: rl}, nil
	}
	return NewScannerReader(os.Stdin), nil
}

type terminalReader struct {
	rl *readline.Instance
}

func (r *terminalReader) ReadLine() (string, error) {
	var line, err = r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// Ctrl-C interrupts the running search, not the session
		return "stop", nil
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(r io.Reader) LineReader {
	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &scannerReader{scanner: scanner}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scannerReader) Close() error {
	return nil
}
