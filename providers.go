package textterm

import (
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ReadResult is the outcome of one blocking read on a LineReader.
// A completed line carries the full text. An interrupted read carries the
// text typed before the interrupt and is not an error.
type ReadResult struct {
	Text        string
	Interrupted bool
}

// --- LineReader Provider ---

// LineReader is the character-level line editor the terminal drives.
// It owns cursor movement, history and keystroke echo; the terminal only
// issues whole-line operations against it.
type LineReader interface {
	// ReadLine blocks until a line is completed or interrupted. A non-zero
	// mask is echoed in place of typed characters. I/O failures are
	// returned as errors; a user interrupt is a regular ReadResult with
	// Interrupted set.
	ReadLine(mask rune) (ReadResult, error)
	// DrawLine writes text into the current prompt line without a line feed.
	DrawLine(text string) error
	// Println emits a line feed.
	Println() error
	// ResetLine clears the current line and returns the cursor to its start.
	ResetLine() error
}

// NoopLineReader ignores all output and serves empty completed lines.
type NoopLineReader struct{}

func (NoopLineReader) ReadLine(mask rune) (ReadResult, error) { return ReadResult{}, nil }
func (NoopLineReader) DrawLine(text string) error             { return nil }
func (NoopLineReader) Println() error                         { return nil }
func (NoopLineReader) ResetLine() error                       { return nil }

// MemoryLineReader serves scripted read outcomes and records everything
// written to it. It backs tests and embedders that drive a terminal without
// a console.
//
// Example:
//
//	reader := textterm.NewMemoryLineReader()
//	reader.QueueLine("yes")
//	term := textterm.New(textterm.WithLineReader(reader))
//	answer := term.Read(false) // "yes"
type MemoryLineReader struct {
	queue  []scriptedRead
	drawn  []string
	masks  []rune
	lines  int
	resets int
}

type scriptedRead struct {
	result ReadResult
	err    error
}

// NewMemoryLineReader creates an empty in-memory line reader.
func NewMemoryLineReader() *MemoryLineReader {
	return &MemoryLineReader{}
}

// QueueLine appends a completed line to the script.
func (m *MemoryLineReader) QueueLine(text string) {
	m.queue = append(m.queue, scriptedRead{result: ReadResult{Text: text}})
}

// QueueInterrupt appends a user interrupt carrying partial text to the script.
func (m *MemoryLineReader) QueueInterrupt(partial string) {
	m.queue = append(m.queue, scriptedRead{result: ReadResult{Text: partial, Interrupted: true}})
}

// QueueError appends a read failure to the script.
func (m *MemoryLineReader) QueueError(err error) {
	m.queue = append(m.queue, scriptedRead{err: err})
}

// ReadLine serves the next scripted outcome. An exhausted script returns
// io.EOF.
func (m *MemoryLineReader) ReadLine(mask rune) (ReadResult, error) {
	m.masks = append(m.masks, mask)
	if len(m.queue) == 0 {
		return ReadResult{}, io.EOF
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	return next.result, next.err
}

// DrawLine records the drawn text.
func (m *MemoryLineReader) DrawLine(text string) error {
	m.drawn = append(m.drawn, text)
	return nil
}

// Println records a line feed.
func (m *MemoryLineReader) Println() error {
	m.lines++
	return nil
}

// ResetLine records a line reset.
func (m *MemoryLineReader) ResetLine() error {
	m.resets++
	return nil
}

// Drawn returns every DrawLine argument in call order.
func (m *MemoryLineReader) Drawn() []string {
	result := make([]string, len(m.drawn))
	copy(result, m.drawn)
	return result
}

// Output returns the concatenation of all drawn text.
func (m *MemoryLineReader) Output() string {
	return strings.Join(m.drawn, "")
}

// Masks returns the mask rune passed to each ReadLine call, 0 for unmasked.
func (m *MemoryLineReader) Masks() []rune {
	result := make([]rune, len(m.masks))
	copy(result, m.masks)
	return result
}

// Printlns returns the number of Println calls.
func (m *MemoryLineReader) Printlns() int {
	return m.lines
}

// Resets returns the number of ResetLine calls.
func (m *MemoryLineReader) Resets() int {
	return m.resets
}

// --- ColorResolver Provider ---

// ColorResolver resolves a color name that is not one of the nine ANSI names
// to an RGB color.
type ColorResolver interface {
	// Resolve returns the color for name, or false if the name is unknown.
	Resolve(name string) (colorful.Color, bool)
}

// WebColorResolver resolves CSS/SVG color names and hex notations:
// "tomato", "#ff6347", "#f63", "0xff6347" and bare "ff6347" all resolve.
// Names are matched case-insensitively.
type WebColorResolver struct{}

// Resolve implements ColorResolver.
func (WebColorResolver) Resolve(name string) (colorful.Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if rgba, ok := colornames.Map[key]; ok {
		if c, ok := colorful.MakeColor(rgba); ok {
			return c, true
		}
	}

	hex := key
	switch {
	case strings.HasPrefix(hex, "0x"):
		hex = "#" + hex[2:]
	case !strings.HasPrefix(hex, "#"):
		if !isHex(hex) {
			return colorful.Color{}, false
		}
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MemoryColorResolver resolves names from an in-memory table.
type MemoryColorResolver struct {
	colors map[string]colorful.Color
}

// NewMemoryColorResolver creates an empty in-memory resolver.
func NewMemoryColorResolver() *MemoryColorResolver {
	return &MemoryColorResolver{colors: make(map[string]colorful.Color)}
}

// Add registers a color under a name. Matching is case-insensitive.
func (m *MemoryColorResolver) Add(name string, c colorful.Color) {
	m.colors[strings.ToLower(name)] = c
}

// Resolve implements ColorResolver.
func (m *MemoryColorResolver) Resolve(name string) (colorful.Color, bool) {
	c, ok := m.colors[strings.ToLower(name)]
	return c, ok
}

// Ensure implementations satisfy their interfaces
var _ LineReader = NoopLineReader{}
var _ LineReader = (*MemoryLineReader)(nil)
var _ ColorResolver = WebColorResolver{}
var _ ColorResolver = (*MemoryColorResolver)(nil)
