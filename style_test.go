package textterm

import "testing"

func TestAnsiPrefixEmpty(t *testing.T) {
	var style StyleData

	if got := style.AnsiPrefix(); got != "" {
		t.Errorf("empty style prefix = %q, want \"\"", got)
	}
}

func TestAnsiPrefixBoldOnly(t *testing.T) {
	style := StyleData{Bold: true}

	if got := style.AnsiPrefix(); got != "\x1b[1m" {
		t.Errorf("bold-only prefix = %q, want %q", got, "\x1b[1m")
	}
}

func TestAnsiPrefixOrder(t *testing.T) {
	style := StyleData{
		Color:           "\x1b[1;31m",
		BackgroundColor: "\x1b[1;44m",
		Bold:            true,
		Italic:          true,
		Underline:       true,
	}

	expected := "\x1b[1;31m\x1b[1;44m\x1b[1m\x1b[3m\x1b[4m"
	if got := style.AnsiPrefix(); got != expected {
		t.Errorf("full style prefix = %q, want %q", got, expected)
	}
}

func TestSetPromptColorResolvesAtSetTime(t *testing.T) {
	term := newTestTerminal(NewMemoryLineReader())

	term.SetPromptColor("red")
	if got := term.PromptStyle().Color; got != "\x1b[1;31m" {
		t.Errorf("prompt color = %q, want %q", got, "\x1b[1;31m")
	}

	// A later mode switch leaves the already resolved fragment untouched.
	term.SetAnsiColorMode("rgb")
	if got := term.PromptStyle().Color; got != "\x1b[1;31m" {
		t.Errorf("prompt color after mode switch = %q, want %q", got, "\x1b[1;31m")
	}

	term.SetPromptColor("tomato")
	if got := term.PromptStyle().Color; got != "\x1b[1;38;2;255;99;71m" {
		t.Errorf("prompt color under rgb = %q, want %q", got, "\x1b[1;38;2;255;99;71m")
	}
}

func TestSetPromptColorInvalidClears(t *testing.T) {
	term := newTestTerminal(NewMemoryLineReader())

	term.SetPromptColor("red")
	term.SetPromptColor("no-such-color")

	if got := term.PromptStyle().Color; got != "" {
		t.Errorf("prompt color after invalid name = %q, want \"\"", got)
	}
}

func TestStyleContextsAreIndependent(t *testing.T) {
	term := newTestTerminal(NewMemoryLineReader())

	term.SetPromptColor("green")
	term.SetInputColor("red")
	term.SetPromptBold(true)
	term.SetInputUnderline(true)

	prompt := term.PromptStyle()
	input := term.InputStyle()

	if prompt.Color != "\x1b[1;32m" || !prompt.Bold || prompt.Underline {
		t.Errorf("unexpected prompt style: %+v", prompt)
	}
	if input.Color != "\x1b[1;31m" || input.Bold || !input.Underline {
		t.Errorf("unexpected input style: %+v", input)
	}
}

func TestSetStyleFlags(t *testing.T) {
	term := newTestTerminal(NewMemoryLineReader())

	term.SetInputBold(true)
	term.SetInputItalic(true)
	term.SetInputUnderline(true)

	expected := "\x1b[1m\x1b[3m\x1b[4m"
	if got := term.InputStyle().AnsiPrefix(); got != expected {
		t.Errorf("input prefix = %q, want %q", got, expected)
	}

	term.SetInputBold(false)
	term.SetInputItalic(false)
	term.SetInputUnderline(false)

	if got := term.InputStyle().AnsiPrefix(); got != "" {
		t.Errorf("input prefix after clearing = %q, want \"\"", got)
	}
}

func TestSetBackgroundColors(t *testing.T) {
	term := newTestTerminal(NewMemoryLineReader())

	term.SetPromptBackgroundColor("blue")
	term.SetInputBackgroundColor("white")

	if got := term.PromptStyle().BackgroundColor; got != "\x1b[1;44m" {
		t.Errorf("prompt background = %q, want %q", got, "\x1b[1;44m")
	}
	if got := term.InputStyle().BackgroundColor; got != "\x1b[1;47m" {
		t.Errorf("input background = %q, want %q", got, "\x1b[1;47m")
	}
}

func TestSetAnsiColorMode(t *testing.T) {
	term := newTestTerminal(NewMemoryLineReader())

	term.SetAnsiColorMode("indexed")
	if got := term.ColorMode(); got != ColorModeIndexed {
		t.Errorf("mode = %v, want %v", got, ColorModeIndexed)
	}

	// Unrecognized names keep the previous mode.
	term.SetAnsiColorMode("bogus")
	if got := term.ColorMode(); got != ColorModeIndexed {
		t.Errorf("mode after invalid name = %v, want %v", got, ColorModeIndexed)
	}

	// The empty string resets to standard.
	term.SetAnsiColorMode("")
	if got := term.ColorMode(); got != ColorModeStandard {
		t.Errorf("mode after empty name = %v, want %v", got, ColorModeStandard)
	}

	term.SetAnsiColorMode("RGB")
	if got := term.ColorMode(); got != ColorModeRGB {
		t.Errorf("mode = %v, want %v", got, ColorModeRGB)
	}
}
