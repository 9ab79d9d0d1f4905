package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used on w.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled(w io.Writer) bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
)

func style(w io.Writer, text string, codes ...string) string {
	if !ColorsEnabled(w) {
		return text
	}
	prefix := ""
	for _, code := range codes {
		prefix += code
	}
	return prefix + text + reset
}

// PrintHeader prints a bold section header
func PrintHeader(w io.Writer, text string) {
	fmt.Fprintln(w, style(w, text, bold, white))
}

// PrintSuccess prints a success message with checkmark
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", style(w, SymbolSuccess, green), style(w, message, green))
}

// PrintError prints an error message with X symbol
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", style(w, SymbolError, red), style(w, message, red))
}

// PrintWarning prints a warning message with ! symbol
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", style(w, SymbolWarning, yellow), style(w, message, yellow))
}

// PrintInfo prints an info message with * symbol
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", style(w, SymbolInfo, cyan), style(w, message, cyan))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
