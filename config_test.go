package textterm

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadPropertiesTOML(t *testing.T) {
	path := writeConfig(t, "term.toml", `
[prompt]
color = "cyan"
bold = true

[input]
color = "white"

[ansi.color]
mode = "indexed"
`)

	values, err := LoadProperties(path)
	if err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}

	expected := map[string]string{
		PropPromptColor:   "cyan",
		PropPromptBold:    "true",
		PropInputColor:    "white",
		PropAnsiColorMode: "indexed",
	}
	for key, want := range expected {
		if got := values[key]; got != want {
			t.Errorf("values[%q] = %q, want %q", key, got, want)
		}
	}
}

func TestLoadPropertiesYAML(t *testing.T) {
	path := writeConfig(t, "term.yaml", `
prompt:
  color: red
input:
  bold: true
`)

	values, err := LoadProperties(path)
	if err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}

	if got := values[PropPromptColor]; got != "red" {
		t.Errorf("values[%q] = %q, want %q", PropPromptColor, got, "red")
	}
	if got := values[PropInputBold]; got != "true" {
		t.Errorf("values[%q] = %q, want %q", PropInputBold, got, "true")
	}
}

func TestLoadPropertiesEnv(t *testing.T) {
	t.Setenv("TEXTTERM_INPUT_COLOR", "green")
	t.Setenv("TEXTTERM_ANSI_COLOR_MODE", "rgb")

	values, err := LoadProperties("")
	if err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}

	if got := values[PropInputColor]; got != "green" {
		t.Errorf("values[%q] = %q, want %q", PropInputColor, got, "green")
	}
	if got := values[PropAnsiColorMode]; got != "rgb" {
		t.Errorf("values[%q] = %q, want %q", PropAnsiColorMode, got, "rgb")
	}
}

func TestLoadPropertiesEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "term.toml", `
[prompt]
color = "cyan"
`)
	t.Setenv("TEXTTERM_PROMPT_COLOR", "magenta")

	values, err := LoadProperties(path)
	if err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}

	if got := values[PropPromptColor]; got != "magenta" {
		t.Errorf("values[%q] = %q, want %q", PropPromptColor, got, "magenta")
	}
}

func TestLoadPropertiesUnsupportedFormat(t *testing.T) {
	if _, err := LoadProperties("term.json"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	if _, err := LoadProperties(path); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestTerminalLoadProperties(t *testing.T) {
	path := writeConfig(t, "term.toml", `
[prompt]
color = "tomato"

[input]
bold = true

[ansi.color]
mode = "rgb"
`)

	term := newTestTerminal(NewMemoryLineReader())
	if err := term.LoadProperties(path); err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}

	// The mode key sorts before the color keys, so tomato resolves under rgb.
	if got := term.PromptStyle().Color; got != "\x1b[1;38;2;255;99;71m" {
		t.Errorf("prompt color = %q, want truecolor tomato", got)
	}
	if !term.InputStyle().Bold {
		t.Error("input bold should be set")
	}
}
