// Package ui provides colored terminal output for the CLI. Everything goes
// to stderr so the snapshot CSV on stdout stays clean.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

// Header prints a section header.
func Header(text string) {
	headerColor.Fprintf(os.Stderr, "\n%s\n", text)
	fmt.Fprintln(os.Stderr)
}

// Success prints a green status line.
func Success(format string, args ...any) {
	successColor.Fprintf(os.Stderr, "✓ "+format+"\n", args...)
}

// Warning prints a yellow status line.
func Warning(format string, args ...any) {
	warningColor.Fprintf(os.Stderr, "! "+format+"\n", args...)
}

// Info prints a plain status line.
func Info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
