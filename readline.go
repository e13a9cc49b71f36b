package textterm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrNotTerminal reports that standard input is not attached to a terminal.
var ErrNotTerminal = errors.New("textterm: stdin is not a terminal")

// TermReader adapts a chzyer/readline instance to the LineReader interface.
// readline reports Ctrl+C as readline.ErrInterrupt together with the line
// typed so far, which maps directly onto an interrupted ReadResult.
type TermReader struct {
	rl *readline.Instance
}

// NewTermReader creates a line editor on the process terminal. It fails with
// ErrNotTerminal when stdin is not a tty.
func NewTermReader() (*TermReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "",
	})
	if err != nil {
		return nil, fmt.Errorf("create line editor: %w", err)
	}

	return &TermReader{rl: rl}, nil
}

// NewSystem creates a terminal driving the process tty. It fails with
// ErrNotTerminal when stdin is not attached to a terminal; the error is
// unwrappable with errors.Is.
func NewSystem(opts ...Option) (*Terminal, error) {
	reader, err := NewTermReader()
	if err != nil {
		return nil, err
	}

	opts = append([]Option{WithLineReader(reader)}, opts...)
	return New(opts...), nil
}

// ReadLine implements LineReader. Unmasked reads carry the partial line on
// interrupt. Masked reads go through the editor's password mode, which fixes
// the echo to '*' and discards the partial on interrupt.
func (r *TermReader) ReadLine(mask rune) (ReadResult, error) {
	if mask != 0 {
		return r.readMasked()
	}

	line, err := r.rl.Readline()
	switch {
	case err == nil:
		return ReadResult{Text: line}, nil
	case errors.Is(err, readline.ErrInterrupt):
		return ReadResult{Text: line, Interrupted: true}, nil
	default:
		return ReadResult{}, err
	}
}

func (r *TermReader) readMasked() (ReadResult, error) {
	line, err := r.rl.ReadPassword("")
	switch {
	case err == nil:
		return ReadResult{Text: string(line)}, nil
	case errors.Is(err, readline.ErrInterrupt):
		return ReadResult{Interrupted: true}, nil
	default:
		return ReadResult{}, err
	}
}

// DrawLine implements LineReader by writing text to the editor's output.
func (r *TermReader) DrawLine(text string) error {
	_, err := io.WriteString(r.rl.Stdout(), text)
	return err
}

// Println implements LineReader.
func (r *TermReader) Println() error {
	_, err := io.WriteString(r.rl.Stdout(), "\n")
	return err
}

// ResetLine implements LineReader by erasing the line and returning the
// cursor to column zero.
func (r *TermReader) ResetLine() error {
	_, err := io.WriteString(r.rl.Stdout(), "\r"+ansiEraseLine)
	return err
}

// Close releases the underlying readline instance and restores the terminal
// state.
func (r *TermReader) Close() error {
	return r.rl.Close()
}

// Instance returns the underlying readline instance for history and
// completion configuration.
func (r *TermReader) Instance() *readline.Instance {
	return r.rl
}

var _ LineReader = (*TermReader)(nil)
var _ io.Closer = (*TermReader)(nil)
