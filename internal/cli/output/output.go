package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Out and Err receive every line printed by this package.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	file, ok := Out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolArrow   = "->"
)

func style(code, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return code + text + reset
}

func Bold(text string) string    { return style(bold, text) }
func Dim(text string) string     { return style(dim, text) }
func Success(text string) string { return style(green, text) }
func Error(text string) string   { return style(red, text) }
func Warning(text string) string { return style(yellow, text) }
func Info(text string) string    { return style(cyan, text) }

// PrintHeader prints a bold section header
func PrintHeader(text string) {
	fmt.Fprintln(Out, Bold(text))
}

func PrintSuccess(message string) {
	fmt.Fprintf(Out, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message to Err
func PrintError(message string) {
	fmt.Fprintf(Err, "%s %s\n", Error(SymbolError), Error(message))
}

func PrintWarning(message string) {
	fmt.Fprintf(Err, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// PrintStep prints a step being executed with arrow
func PrintStep(message string) {
	fmt.Fprintf(Out, "  %s %s\n", SymbolArrow, message)
}

// PrintRaw writes text unchanged, for machine-readable output.
func PrintRaw(text string) {
	fmt.Fprint(Out, text)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
