// Package cliout provides structured output formatting for CLI commands.
//
// # Output Formats
//
// Three formats are supported:
//   - default: human-readable text with optional colors and Unicode symbols
//   - json: indented JSON for scripting
//   - yaml: YAML for scripting and config files
//
// Commands pass both a data value and a text formatter to Print, which
// picks one based on the global format:
//
//	if err := cliout.SetFormat(output); err != nil {
//	    return err
//	}
//	return cliout.Print(u.Components(), func() {
//	    cliout.Label("href", u.Href())
//	})
//
// # Colors
//
// ANSI styling is only written when stdout is a terminal and NO_COLOR is
// unset. NoColor and ForceColor override detection; AutoColor restores it.
//
// # Unicode Detection
//
// Status symbols fall back to ASCII on Windows consoles that do not
// advertise Unicode support (Windows Terminal, VS Code, ConEmu, PowerShell).
package cliout
