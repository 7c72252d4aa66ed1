// Package cliout provides structured output formatting for the weburl CLI.
// It supports human-readable text, JSON and YAML, with ANSI styling that is
// only emitted to terminals.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols and their ASCII fallbacks
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIDot     = "*"
)

// EnvNoColor disables color output when set to any value.
const EnvNoColor = "NO_COLOR"

type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	colors       = colorAuto
)

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	colors = colorAlways
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	colors = colorNever
	mu.Unlock()
}

// AutoColor restores terminal detection: color is used when stdout is a
// terminal and NO_COLOR is unset.
func AutoColor() {
	mu.Lock()
	colors = colorAuto
	mu.Unlock()
}

// ColorEnabled reports whether styled output is currently emitted.
func ColorEnabled() bool {
	mu.RLock()
	mode := colors
	mu.RUnlock()

	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if _, set := os.LookupEnv(EnvNoColor); set {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// paint wraps s in the given styles when color is enabled.
func paint(s string, styles ...string) string {
	if !ColorEnabled() || len(styles) == 0 {
		return s
	}
	return strings.Join(styles, "") + s + Reset
}

var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode symbols.
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code, ConEmu and PowerShell render Unicode; plain
	// cmd.exe does not.
	for _, env := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "TERM"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return os.Getenv("TERM_PROGRAM") == "vscode"
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// TerminalWidth returns the width of stdout, or fallback when stdout is
// not a terminal.
func TerminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch strings.ToLower(format) {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml", "yml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsStructured returns true for machine-readable formats (JSON or YAML).
func IsStructured() bool {
	return GetFormat() != FormatDefault
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML to stdout.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON and YAML, marshals the data object.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider no wider than the terminal.
func Header(text string) {
	fmt.Printf("\n%s\n", paint(text, Bold))
	fmt.Println(strings.Repeat("=", min(len(text), TerminalWidth(80))))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(getIcon(SymbolCheck, ASCIICheck), BrightGreen), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(getIcon(SymbolCross, ASCIICross), BrightRed), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	fmt.Printf("%s  %s\n", paint(getIcon(SymbolWarning, ASCIIWarning), BrightYellow), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	fmt.Printf("%s  %s\n", paint(getIcon(SymbolInfo, ASCIIInfo), BrightBlue), fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...any) {
	fmt.Printf("  %s %s\n", getIcon(SymbolDot, ASCIIDot), fmt.Sprintf(format, args...))
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Printf("   %s %s\n", paint(fmt.Sprintf("%-12s", label+":"), Dim), value)
}

// Muted returns dim text
func Muted(format string, args ...any) string {
	return paint(fmt.Sprintf(format, args...), Dim)
}

// Emphasize returns bold text
func Emphasize(format string, args ...any) string {
	return paint(fmt.Sprintf(format, args...), Bold)
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			widths[header] = max(widths[header], len(row[header]))
		}
	}

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Printf("%s  ", paint(fmt.Sprintf("%-*s", widths[header], header), Bold))
	}
	fmt.Println()

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("-", widths[header]) + "  ")
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}
