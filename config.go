package textterm

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix selects the environment variables feeding LoadProperties.
const envPrefix = "TEXTTERM_"

// LoadProperties loads terminal properties from an optional config file and
// from TEXTTERM_ environment variables, flattened to the dotted keys the
// property store recognizes. File values load first, environment values
// override them. The file format follows the extension: .toml, .yaml or
// .yml. An empty path loads the environment only.
//
// A TOML file configuring a cyan bold prompt in indexed mode:
//
//	[prompt]
//	color = "cyan"
//	bold = true
//
//	[ansi.color]
//	mode = "indexed"
//
// The same through the environment: TEXTTERM_PROMPT_COLOR=cyan,
// TEXTTERM_PROMPT_BOLD=true, TEXTTERM_ANSI_COLOR_MODE=indexed.
func LoadProperties(path string) (map[string]string, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load properties from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load properties from environment: %w", err)
	}

	values := make(map[string]string)
	for key, value := range k.All() {
		values[key] = fmt.Sprintf("%v", value)
	}

	return values, nil
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported properties format: %s", path)
}

// LoadProperties loads path (and the environment) into the terminal's
// property store, applying recognized keys to the terminal.
func (t *Terminal) LoadProperties(path string) error {
	values, err := LoadProperties(path)
	if err != nil {
		return err
	}
	t.props.SetAll(values)
	return nil
}
