package textterm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects how colors are encoded when styles are composed.
// Exactly one mode is active per terminal; changing it affects only
// styles resolved afterwards.
type ColorMode int

const (
	// ColorModeStandard maps colors to the 8-color palette by nearest distance.
	ColorModeStandard ColorMode = iota
	// ColorModeIndexed maps colors to the 6x6x6 cube of the 256-color palette.
	ColorModeIndexed
	// ColorModeRGB emits 24-bit truecolor values without quantization.
	ColorModeRGB
)

// standardPalette holds the reference values of the 8 standard ANSI colors,
// indexed by color code.
var standardPalette = [8]colorful.Color{
	{R: 0, G: 0, B: 0},             // Black
	{R: 1, G: 0, B: 0},             // Red
	{R: 0, G: 128.0 / 255.0, B: 0}, // Green
	{R: 1, G: 1, B: 0},             // Yellow
	{R: 0, G: 0, B: 1},             // Blue
	{R: 1, G: 0, B: 1},             // Magenta
	{R: 0, G: 1, B: 1},             // Cyan
	{R: 1, G: 1, B: 1},             // White
}

// ansiColorCodes maps the recognized color names to standard color codes.
// The reserved code -1 stands for the terminal's default color.
var ansiColorCodes = map[string]int{
	"default": -1,
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// colorCodeFuncs maps each mode to its encoding function.
var colorCodeFuncs = [...]func(colorful.Color) string{
	ColorModeStandard: standardColorCode,
	ColorModeIndexed:  indexedColorCode,
	ColorModeRGB:      rgbColorCode,
}

// ParseColorMode parses a mode name: "standard", "indexed" or "rgb"
// (case-insensitive). Unrecognized names return an error.
func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToUpper(name) {
	case "STANDARD":
		return ColorModeStandard, nil
	case "INDEXED":
		return ColorModeIndexed, nil
	case "RGB":
		return ColorModeRGB, nil
	}
	return ColorModeStandard, fmt.Errorf("invalid color mode: %q", name)
}

// String returns the lowercase mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorModeStandard:
		return "standard"
	case ColorModeIndexed:
		return "indexed"
	case ColorModeRGB:
		return "rgb"
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ColorCode returns the escape-code fragment encoding c under mode m.
// The fragment is the parameter portion only; see AnsiColor for the full
// sequence. Out-of-range modes encode as ColorModeStandard.
func (m ColorMode) ColorCode(c colorful.Color) string {
	if m < 0 || int(m) >= len(colorCodeFuncs) {
		m = ColorModeStandard
	}
	return colorCodeFuncs[m](c)
}

// StandardColorCode returns the standard color code for a named ANSI color
// (case-insensitive), or -1 if the name is not one of the nine recognized
// names. Note that "default" also yields -1.
func StandardColorCode(colorName string) int {
	code, ok := ansiColorCodes[strings.ToLower(colorName)]
	if !ok {
		return -1
	}
	return code
}

// standardColorCode returns the decimal code of the palette entry closest to
// c. Ties keep the lowest code.
func standardColorCode(c colorful.Color) string {
	bestDist := math.MaxFloat64
	bestIndex := -1
	for i := range standardPalette {
		dist := colorDistance(c, standardPalette[i])
		if dist < bestDist {
			bestDist = dist
			bestIndex = i
		}
	}
	return strconv.Itoa(bestIndex)
}

// colorDistance is the red-mean weighted Euclidean distance between two
// colors, computed on [0,1] channels.
func colorDistance(c1, c2 colorful.Color) float64 {
	rmean := (c1.R + c2.R) / 2
	dr := c1.R - c2.R
	dg := c1.G - c2.G
	db := c1.B - c2.B
	return math.Sqrt((2+rmean)*dr*dr + 4*dg*dg + (3-rmean)*db*db)
}

// indexedColorCode returns the 256-color palette fragment for c, using the
// cube entries 16-231.
func indexedColorCode(c colorful.Color) string {
	val := 16 + 36*mapTo6(255*c.R) + 6*mapTo6(255*c.G) + mapTo6(255*c.B)
	return "8;5;" + strconv.Itoa(val)
}

// mapTo6 buckets a 0-255 channel value into the 6-level cube range.
// Values are clamped first; bucket assignment truncates, it does not round.
func mapTo6(val float64) int {
	if val < 0 {
		val = 0
	}
	if val > 255 {
		val = 255
	}
	return int(val * 6.0 / 256.0)
}

// rgbColorCode returns the truecolor fragment for c, with channels truncated
// to 0-255 integers.
func rgbColorCode(c colorful.Color) string {
	r := int(255 * c.R)
	g := int(255 * c.G)
	b := int(255 * c.B)
	return fmt.Sprintf("8;2;%d;%d;%d", r, g, b)
}

// ColorCode resolves a color name to its escape-code fragment under the
// active mode. The nine recognized ANSI names resolve to standard color codes
// regardless of the mode; "default" resolves to the empty fragment. Any other
// name goes through the terminal's ColorResolver and is encoded per the
// active mode. Returns false for empty or unresolvable names.
func (t *Terminal) ColorCode(colorName string) (string, bool) {
	if colorName == "" {
		return "", false
	}
	if code, ok := ansiColorCodes[strings.ToLower(colorName)]; ok {
		if code < 0 {
			return "", true
		}
		return strconv.Itoa(code), true
	}
	c, ok := t.resolver.Resolve(colorName)
	if !ok {
		t.logger.Warn().Str("color", colorName).Msg("invalid color")
		return "", false
	}
	return t.mode.ColorCode(c), true
}

// AnsiColor returns the complete foreground escape sequence for a color name
// under the active mode, or "" if the name does not resolve or names the
// default color.
func (t *Terminal) AnsiColor(colorName string) string {
	return t.ansiColorWithPrefix(foregroundPrefix, colorName)
}

// AnsiBackgroundColor returns the complete background escape sequence for a
// color name under the active mode, or "" if the name does not resolve or
// names the default color.
func (t *Terminal) AnsiBackgroundColor(colorName string) string {
	return t.ansiColorWithPrefix(backgroundPrefix, colorName)
}

func (t *Terminal) ansiColorWithPrefix(prefix int, colorName string) string {
	seq := ""
	if code, ok := t.ColorCode(colorName); ok && code != "" {
		seq = "\x1b[1;" + strconv.Itoa(prefix) + code + "m"
	}
	t.logger.Debug().Int("prefix", prefix).Str("color", colorName).Str("ansi", seq).Msg("ansi color")
	return seq
}
