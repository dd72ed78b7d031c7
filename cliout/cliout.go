// Package cliout provides structured output formatting for CLI commands.
// It supports multiple output formats including human-readable text and JSON,
// with consistent styling using ANSI colors.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
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
	Gray   = "\033[90m"
)

// Unicode symbols with ASCII fallbacks
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolDot     = "•"

	asciiCheck   = "[+]"
	asciiCross   = "[-]"
	asciiWarning = "[!]"
	asciiDot     = "*"
)

var (
	// mu protects global state variables
	mu sync.RWMutex

	globalFormat = FormatDefault

	// noColor disables all color output
	noColor = false
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}
}

// NoColor disables colored output.
func NoColor() {
	mu.Lock()
	defer mu.Unlock()
	noColor = true
}

// SetFormat sets the global output format. Unknown formats are an error.
func SetFormat(format string) error {
	switch Format(format) {
	case FormatDefault, FormatJSON, "":
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}

	mu.Lock()
	defer mu.Unlock()
	if format == "" {
		globalFormat = FormatDefault
	} else {
		globalFormat = Format(format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true when JSON output is active.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON marshals data as indented JSON to stdout.
func PrintJSON(data interface{}) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func colorize(color, text string) string {
	mu.RLock()
	disabled := noColor
	mu.RUnlock()
	if disabled {
		return text
	}
	return color + text + Reset
}

func symbol(unicode, ascii string) string {
	// Windows terminals without UTF-8 code pages render the fallback
	if runtime.GOOS == "windows" && os.Getenv("WT_SESSION") == "" {
		return ascii
	}
	return unicode
}

// Header prints a bold section header followed by a divider.
func Header(text string) {
	fmt.Println(colorize(Bold, text))
	fmt.Println(colorize(Gray, strings.Repeat("─", len(text))))
}

// Label prints an aligned "name: value" line.
func Label(label, value string) {
	fmt.Printf("%s %s\n", colorize(Gray, label+":"), value)
}

// Item prints a bulleted list item.
func Item(format string, args ...interface{}) {
	fmt.Printf("  %s %s\n", symbol(SymbolDot, asciiDot), fmt.Sprintf(format, args...))
}

// Success prints a success message with a check mark.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Green, symbol(SymbolCheck, asciiCheck)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message to stderr.
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(Yellow, symbol(SymbolWarning, asciiWarning)), fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(Red, symbol(SymbolCross, asciiCross)), fmt.Sprintf(format, args...))
}
