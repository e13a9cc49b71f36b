// Package textterm styles terminal prompt and input text and reads input
// lines with user interrupt handling.
//
// The package sits between an application and a line editor: it translates
// abstract style requests (named or RGB colors, bold, italic, underline)
// into ANSI escape sequences for three terminal color tiers, and it wraps
// the editor's blocking read so a Ctrl+C preserves the partially typed line.
// This makes it ideal for:
//   - Interactive CLI wizards and questionnaires
//   - Password and token prompts with masked echo
//   - Tools that restyle prompts from config files or environment variables
//   - Testing interactive flows without a console
//
// # Quick Start
//
// Create a terminal on the process tty, style it and read a line:
//
//	term, err := textterm.NewSystem()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer term.Close()
//
//	term.SetPromptColor("cyan")
//	term.SetInputBold(true)
//	term.Print("What's your name? ")
//	name := term.Read(false)
//	term.Printf("Hello, %s!\n", name)
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: session state (styles, color mode, interrupt handler) and
//     the read/print operations
//   - [StyleData]: the composed style of one output context
//   - [ColorMode]: how colors are encoded when styles are resolved
//   - [LineReader]: the external line editor the terminal drives
//   - [ColorResolver]: name-to-RGB lookup for non-ANSI color names
//
// # Color Modes
//
// Three encodings cover the terminal color tiers:
//
//   - [ColorModeStandard]: the 8-color palette; arbitrary colors map to the
//     nearest entry under a red-mean weighted distance
//   - [ColorModeIndexed]: the 6x6x6 cube of the 256-color palette
//   - [ColorModeRGB]: 24-bit truecolor
//
// The mode is per terminal and switchable at runtime; it affects only styles
// resolved afterwards:
//
//	term.SetAnsiColorMode("rgb")
//	term.SetPromptColor("#ff6347") // resolved as truecolor
//
// The nine ANSI color names (default, black, red, green, yellow, blue,
// magenta, cyan, white) bypass the mode entirely and always resolve to
// standard color codes; "default" means no explicit color. All other names
// go through the terminal's [ColorResolver]; the default [WebColorResolver]
// understands CSS/SVG names and hex notation.
//
// # Styling
//
// Prompt output and echoed input carry independent styles, mutated through
// setters and applied automatically by [Terminal.Print], [Terminal.RawPrint]
// and [Terminal.Read]:
//
//	term.SetPromptColor("tomato")     // messages
//	term.SetInputColor("lightgreen")  // what the user types
//	term.SetInputUnderline(true)
//
// Color setters resolve the name under the color mode active at call time.
// Styled regions always end with the reset sequence, so styling never leaks
// past a print or read.
//
// # Reading Input
//
// [Terminal.Read] performs one blocking line read. Pass masking=true to echo
// '*' instead of typed characters:
//
//	password := term.Read(true)
//
// Read failures are logged and yield the empty string; Read never panics and
// returns no error.
//
// # Interrupt Handling
//
// A user interrupt (Ctrl+C) during [Terminal.Read] runs the registered
// handler and then either aborts the read, returning the text typed so far,
// or resumes it, keeping that text as a prefix of the final result:
//
//	term.RegisterUserInterruptHandler(func(t *textterm.Terminal) {
//	    t.Println()
//	    t.Print("Interrupted!\n")
//	}, true) // true: abort the read, returning the partial input
//
// The default handler terminates the process. Passing a nil handler restores
// the default.
//
// # Properties and Configuration
//
// Every terminal owns a [Properties] store whose recognized keys drive the
// style setters:
//
//	term.Properties().Set(textterm.PropPromptColor, "cyan")
//	term.Properties().Set(textterm.PropAnsiColorMode, "indexed")
//
// [LoadProperties] fills such a store from a TOML or YAML file and from
// TEXTTERM_ environment variables:
//
//	props, err := textterm.LoadProperties("textterm.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	term := textterm.New(textterm.WithProperties(props))
//
// # Providers
//
// External collaborators are small interfaces with no-op and in-memory
// implementations:
//
//   - [LineReader]: [TermReader] drives the process tty via chzyer/readline;
//     [MemoryLineReader] serves scripted reads and records output
//   - [ColorResolver]: [WebColorResolver] resolves web color names;
//     [MemoryColorResolver] resolves from a table
//
// [MemoryLineReader] makes interactive flows testable:
//
//	reader := textterm.NewMemoryLineReader()
//	reader.QueueLine("alice")
//	term := textterm.New(textterm.WithLineReader(reader))
//	name := term.Read(false) // "alice", no console involved
//
// # Thread Safety
//
// A Terminal is single-session state and performs no internal locking: one
// goroutine, one outstanding read at a time. The interrupt handler runs
// synchronously on the reading goroutine. Callers needing concurrent access
// must serialize externally.
package textterm
