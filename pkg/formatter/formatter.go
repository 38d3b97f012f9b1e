package formatter

import (
	"fmt"

	"github.com/cinedeck/cli/pkg/output"
	"github.com/fatih/color"
)

var (
	Bold    = color.New(color.Bold)
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Warning = color.New(color.FgYellow)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintTable prints data as a table
func PrintTable(headers []string, rows [][]string) {
	output.PrintList(rows, headers)
}

// PrintObject prints an object based on output format
func PrintObject(data interface{}, name string) error {
	return output.Print(name, data)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(data map[string]interface{}) {
	output.PrintRecord("", data)
}

// Truncate shortens a string to at most length runes, ellipsized.
func Truncate(s string, length int) string {
	if length <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

// Rating renders a 0-10 rating for display; zero means unrated.
func Rating(r float64) string {
	if r == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f/10", r)
}

// Year renders a release year for display; zero means unknown.
func Year(y int) string {
	if y == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", y)
}
