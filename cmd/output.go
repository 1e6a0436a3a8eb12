package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout skillhub's CLI output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr, never suppressed)
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info / progress  (suppressed by --quiet)

var (
	colorOK   = color.New(color.FgGreen)
	colorErr  = color.New(color.FgRed)
	colorWarn = color.New(color.FgYellow)
)

// quiet suppresses progress narration (printInfo, printSection) but never
// error or warning reporting. Commands with a --quiet flag set it.
var quiet bool

// printSection prints a top-level section header, e.g. "=== Index ===".
func printSection(title string) {
	if quiet {
		return
	}
	fmt.Printf("\n=== %s ===\n", title)
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	if name == "" {
		fmt.Printf("  %s  %s\n", colorOK.Sprint("✓"), msg)
	} else {
		fmt.Printf("  %s  [%s] %s\n", colorOK.Sprint("✓"), name, msg)
	}
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  %s  %s\n", colorErr.Sprint("✗"), msg)
	} else {
		fmt.Fprintf(os.Stderr, "  %s  [%s] %s\n", colorErr.Sprint("✗"), name, msg)
	}
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	if name == "" {
		fmt.Printf("  %s  %s\n", colorWarn.Sprint("⚠"), msg)
	} else {
		fmt.Printf("  %s  [%s] %s\n", colorWarn.Sprint("⚠"), name, msg)
	}
}

// printSkip prints a skipped / not-applicable line.
func printSkip(name, msg string) {
	if name == "" {
		fmt.Printf("  ○  %s\n", msg)
	} else {
		fmt.Printf("  ○  [%s] %s\n", name, msg)
	}
}

// printInfo prints a neutral informational / progress line.
func printInfo(name, msg string) {
	if quiet {
		return
	}
	if name == "" {
		fmt.Printf("  ~  %s\n", msg)
	} else {
		fmt.Printf("  ~  [%s] %s\n", name, msg)
	}
}
