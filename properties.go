package textterm

import (
	"sort"
	"strconv"
)

// Recognized property keys. Setting them on a terminal's property store
// drives the matching setter.
const (
	PropPromptColor           = "prompt.color"
	PropPromptBackgroundColor = "prompt.bgcolor"
	PropPromptBold            = "prompt.bold"
	PropPromptItalic          = "prompt.italic"
	PropPromptUnderline       = "prompt.underline"
	PropInputColor            = "input.color"
	PropInputBackgroundColor  = "input.bgcolor"
	PropInputBold             = "input.bold"
	PropInputItalic           = "input.italic"
	PropInputUnderline        = "input.underline"
	PropAnsiColorMode         = "ansi.color.mode"
)

// PropertyListener observes value changes of a single key.
type PropertyListener func(oldValue, newValue string)

// Properties is a string-keyed store with per-key change listeners. The
// terminal binds listeners for the recognized keys at construction, so
// feeding values here configures styling without touching the setters
// directly. Like the Terminal it belongs to, it is not safe for concurrent
// use.
type Properties struct {
	values    map[string]string
	listeners map[string][]PropertyListener
}

// NewProperties creates an empty property store.
func NewProperties() *Properties {
	return &Properties{
		values:    make(map[string]string),
		listeners: make(map[string][]PropertyListener),
	}
}

// Set stores value under key and notifies the key's listeners. Storing the
// value already present is a no-op.
func (p *Properties) Set(key, value string) {
	old, ok := p.values[key]
	if ok && old == value {
		return
	}
	p.values[key] = value
	for _, listener := range p.listeners[key] {
		listener(old, value)
	}
}

// SetAll stores every entry of values in lexical key order. The ordering
// makes mixed updates deterministic; in particular "ansi.color.mode" sorts
// before the color keys, so a mode change applies before colors resolve.
func (p *Properties) SetAll(values map[string]string) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p.Set(key, values[key])
	}
}

// Get returns the value stored under key, or "" when absent.
func (p *Properties) Get(key string) string {
	return p.values[key]
}

// GetBool returns the value under key parsed as a boolean, or false when the
// value is absent or not parsable.
func (p *Properties) GetBool(key string) bool {
	b, err := strconv.ParseBool(p.values[key])
	if err != nil {
		return false
	}
	return b
}

// Keys returns the stored keys in lexical order.
func (p *Properties) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for key := range p.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AddListener registers a change listener for key. Listeners run
// synchronously from Set in registration order, receiving the previous and
// the new value.
func (p *Properties) AddListener(key string, listener PropertyListener) {
	p.listeners[key] = append(p.listeners[key], listener)
}

// AddBoolListener registers a listener receiving the new value parsed as a
// boolean, false when not parsable.
func (p *Properties) AddBoolListener(key string, listener func(bool)) {
	p.AddListener(key, func(_, value string) {
		b, _ := strconv.ParseBool(value)
		listener(b)
	})
}
