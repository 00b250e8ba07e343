package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// Stdout receives command results. It's a variable so tests can capture output.
	Stdout io.Writer = os.Stdout
	// Stderr receives diagnostics from Echo and Fatal.
	Stderr io.Writer = os.Stderr
	// Exit is called by Fatal.
	Exit = os.Exit
)

// Fatal will Echo the message and Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	Exit(1)
}

// Echo will emit the given message to Stderr without any logging formatting.
func Echo(msg string, args ...any) {
	_, _ = fmt.Fprintf(Stderr, withNewline(msg), args...)
}

// Print writes a result line to Stdout.
func Print(msg string, args ...any) {
	_, _ = fmt.Fprintf(Stdout, withNewline(msg), args...)
}

func withNewline(msg string) string {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
