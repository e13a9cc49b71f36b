package textterm

// SGR escape sequences emitted by this package.
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
	ansiEraseLine = "\x1b[2K"
)

// SGR parameter prefixes selecting the color target.
const (
	foregroundPrefix = 3
	backgroundPrefix = 4
)

// StyleData holds the composed style of one output context. The terminal
// keeps two independent instances, one for prompt output and one for echoed
// input. Color and BackgroundColor are complete escape sequences resolved at
// set time under the then-active color mode; empty means no override.
type StyleData struct {
	Color           string
	BackgroundColor string
	Bold            bool
	Italic          bool
	Underline       bool
}

// AnsiPrefix renders the style as a single escape prefix: color, background
// color, bold, italic, underline, in that fixed order. An empty style
// renders as "".
func (s StyleData) AnsiPrefix() string {
	prefix := s.Color + s.BackgroundColor
	if s.Bold {
		prefix += ansiBold
	}
	if s.Italic {
		prefix += ansiItalic
	}
	if s.Underline {
		prefix += ansiUnderline
	}
	return prefix
}

// PromptStyle returns a copy of the current prompt-context style.
func (t *Terminal) PromptStyle() StyleData {
	return t.promptStyle
}

// InputStyle returns a copy of the current input-context style.
func (t *Terminal) InputStyle() StyleData {
	return t.inputStyle
}

// SetPromptColor sets the foreground color of prompt output. The name is
// resolved under the active color mode at call time.
func (t *Terminal) SetPromptColor(colorName string) {
	t.promptStyle.Color = t.AnsiColor(colorName)
}

// SetPromptBackgroundColor sets the background color of prompt output.
func (t *Terminal) SetPromptBackgroundColor(colorName string) {
	t.promptStyle.BackgroundColor = t.AnsiBackgroundColor(colorName)
}

// SetPromptBold enables or disables bold prompt output.
func (t *Terminal) SetPromptBold(bold bool) {
	t.promptStyle.Bold = bold
}

// SetPromptItalic enables or disables italic prompt output.
func (t *Terminal) SetPromptItalic(italic bool) {
	t.promptStyle.Italic = italic
}

// SetPromptUnderline enables or disables underlined prompt output.
func (t *Terminal) SetPromptUnderline(underline bool) {
	t.promptStyle.Underline = underline
}

// SetInputColor sets the foreground color of echoed input. The name is
// resolved under the active color mode at call time.
func (t *Terminal) SetInputColor(colorName string) {
	t.inputStyle.Color = t.AnsiColor(colorName)
}

// SetInputBackgroundColor sets the background color of echoed input.
func (t *Terminal) SetInputBackgroundColor(colorName string) {
	t.inputStyle.BackgroundColor = t.AnsiBackgroundColor(colorName)
}

// SetInputBold enables or disables bold echoed input.
func (t *Terminal) SetInputBold(bold bool) {
	t.inputStyle.Bold = bold
}

// SetInputItalic enables or disables italic echoed input.
func (t *Terminal) SetInputItalic(italic bool) {
	t.inputStyle.Italic = italic
}

// SetInputUnderline enables or disables underlined echoed input.
func (t *Terminal) SetInputUnderline(underline bool) {
	t.inputStyle.Underline = underline
}

// SetAnsiColorMode switches the active color mode by name: "standard",
// "indexed" or "rgb" (case-insensitive). The empty string resets to
// ColorModeStandard. Unrecognized names keep the previous mode.
func (t *Terminal) SetAnsiColorMode(name string) {
	if name == "" {
		t.mode = ColorModeStandard
		return
	}
	mode, err := ParseColorMode(name)
	if err != nil {
		t.logger.Warn().Str("mode", name).Msg("invalid color mode")
		return
	}
	t.mode = mode
	t.logger.Debug().Stringer("mode", mode).Msg("color mode set")
}

// ColorMode returns the active color mode.
func (t *Terminal) ColorMode() ColorMode {
	return t.mode
}
