package textterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maskRune is echoed in place of typed characters during masked reads.
const maskRune = '*'

// defaultInterruptHandler terminates the process, the conventional outcome
// of an unhandled Ctrl+C.
func defaultInterruptHandler(t *Terminal) {
	os.Exit(1)
}

// Terminal styles prompt and input text and reads input lines with user
// interrupt handling. Styling is translated to ANSI escape sequences under
// the active ColorMode; reading is delegated to a LineReader that surfaces
// interrupts as distinguished results carrying the partially typed text.
//
// A Terminal is not safe for concurrent use. The model is one session, one
// goroutine, one outstanding read at a time; callers needing concurrent
// access must serialize externally.
type Terminal struct {
	reader   LineReader
	resolver ColorResolver
	logger   zerolog.Logger

	mode        ColorMode
	promptStyle StyleData
	inputStyle  StyleData

	interruptHandler func(*Terminal)
	abortRead        bool

	props        *Properties
	initialProps map[string]string
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithLineReader sets the line editor the terminal drives.
// Defaults to a no-op reader if not set.
func WithLineReader(r LineReader) Option {
	return func(t *Terminal) {
		t.reader = r
	}
}

// WithColorResolver sets the resolver for color names outside the nine ANSI
// names. Defaults to WebColorResolver if not set.
func WithColorResolver(r ColorResolver) Option {
	return func(t *Terminal) {
		t.resolver = r
	}
}

// WithLogger sets the logger.
// Defaults to the global logger tagged with component=textterm.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// WithColorMode sets the initial color mode.
// Defaults to ColorModeStandard.
func WithColorMode(mode ColorMode) Option {
	return func(t *Terminal) {
		t.mode = mode
	}
}

// WithInterruptHandler sets the user interrupt handler and the abort flag.
// A nil handler restores the default, which terminates the process.
func WithInterruptHandler(handler func(*Terminal), abortRead bool) Option {
	return func(t *Terminal) {
		if handler == nil {
			handler = defaultInterruptHandler
		}
		t.interruptHandler = handler
		t.abortRead = abortRead
	}
}

// WithProperties applies initial property values after construction, as if
// passed to Properties.SetAll.
func WithProperties(values map[string]string) Option {
	return func(t *Terminal) {
		t.initialProps = values
	}
}

// New creates a terminal with the given options.
// The zero configuration styles nothing, serves empty lines from a no-op
// reader and terminates the process on user interrupt.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		reader:           NoopLineReader{},
		resolver:         WebColorResolver{},
		logger:           log.With().Str("component", "textterm").Logger(),
		mode:             ColorModeStandard,
		interruptHandler: defaultInterruptHandler,
		abortRead:        true,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.props = NewProperties()
	t.bindProperties()
	if t.initialProps != nil {
		t.props.SetAll(t.initialProps)
		t.initialProps = nil
	}

	return t
}

// bindProperties wires the recognized property keys to their setters.
func (t *Terminal) bindProperties() {
	t.props.AddListener(PropPromptColor, func(_, value string) { t.SetPromptColor(value) })
	t.props.AddListener(PropPromptBackgroundColor, func(_, value string) { t.SetPromptBackgroundColor(value) })
	t.props.AddBoolListener(PropPromptBold, t.SetPromptBold)
	t.props.AddBoolListener(PropPromptItalic, t.SetPromptItalic)
	t.props.AddBoolListener(PropPromptUnderline, t.SetPromptUnderline)
	t.props.AddListener(PropInputColor, func(_, value string) { t.SetInputColor(value) })
	t.props.AddListener(PropInputBackgroundColor, func(_, value string) { t.SetInputBackgroundColor(value) })
	t.props.AddBoolListener(PropInputBold, t.SetInputBold)
	t.props.AddBoolListener(PropInputItalic, t.SetInputItalic)
	t.props.AddBoolListener(PropInputUnderline, t.SetInputUnderline)
	t.props.AddListener(PropAnsiColorMode, func(_, value string) { t.SetAnsiColorMode(value) })
}

// Read reads one line of input, echoed under the input-context style. When
// masking is true, typed characters echo as '*'.
//
// On user interrupt, the text typed so far is retained, the registered
// handler runs synchronously, and the abort flag decides the outcome: abort
// returns the retained text, continue resumes reading with the retained text
// prepended to the final result. Read failures are logged and yield "".
// The reset sequence is emitted on every path out of Read.
func (t *Terminal) Read(masking bool) string {
	t.PrintAnsi(t.inputStyle.AnsiPrefix())
	defer t.PrintAnsi(ansiReset)

	var mask rune
	if masking {
		mask = maskRune
	}

	partial := ""
	for {
		result, err := t.reader.ReadLine(mask)
		if err != nil {
			t.logger.Error().Err(err).Msg("read error")
			return ""
		}
		if !result.Interrupted {
			return partial + result.Text
		}

		partial += result.Text
		t.interruptHandler(t)
		if t.abortRead {
			return partial
		}
	}
}

// PrintAnsi emits text verbatim through the line editor's redraw primitive,
// without styling or reset. Failures are logged, never raised.
func (t *Terminal) PrintAnsi(text string) {
	if err := t.reader.DrawLine(text); err != nil {
		t.logger.Error().Err(err).Msg("print error")
	}
}

// RawPrint emits message wrapped in the prompt-context style prefix and the
// reset sequence. The message is emitted as-is; use Print for messages with
// embedded line feeds.
func (t *Terminal) RawPrint(message string) {
	t.PrintAnsi(t.promptStyle.AnsiPrefix() + message + ansiReset)
}

// Print emits message under the prompt-context style, honoring embedded
// line feeds.
func (t *Terminal) Print(message string) {
	parts := strings.Split(message, "\n")
	for i, part := range parts {
		if i > 0 {
			t.Println()
		}
		if part != "" {
			t.RawPrint(part)
		}
	}
}

// Printf formats per fmt.Sprintf and emits the result like Print.
func (t *Terminal) Printf(format string, args ...any) {
	t.Print(fmt.Sprintf(format, args...))
}

// Println emits a line feed. Failures are logged, never raised.
func (t *Terminal) Println() {
	if err := t.reader.Println(); err != nil {
		t.logger.Error().Err(err).Msg("println error")
	}
}

// ResetLine clears the current line and moves the cursor to its start.
// Returns false when the line editor reports a failure.
func (t *Terminal) ResetLine() bool {
	if err := t.reader.ResetLine(); err != nil {
		t.logger.Error().Err(err).Msg("reset line error")
		return false
	}
	return true
}

// MoveToLineStart returns the cursor to the start of the current line
// without clearing it. The carriage return is emitted under the
// prompt-context style.
func (t *Terminal) MoveToLineStart() bool {
	t.RawPrint("\r")
	return true
}

// RegisterUserInterruptHandler replaces the handler invoked when the user
// interrupts a read, typically with Ctrl+C. A nil handler restores the
// default, which terminates the process. abortRead decides whether an
// interrupted read returns the partial input (true) or resumes reading
// (false). Registration always succeeds.
func (t *Terminal) RegisterUserInterruptHandler(handler func(*Terminal), abortRead bool) bool {
	if handler == nil {
		handler = defaultInterruptHandler
	}
	t.interruptHandler = handler
	t.abortRead = abortRead
	return true
}

// Reader returns the underlying line editor.
func (t *Terminal) Reader() LineReader {
	return t.reader
}

// Properties returns the terminal's property store. Setting recognized keys
// drives the matching style setters; see the package documentation.
func (t *Terminal) Properties() *Properties {
	return t.props
}

// Close releases the underlying line editor when it holds resources.
func (t *Terminal) Close() error {
	if closer, ok := t.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
