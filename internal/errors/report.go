package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Sink renders fatal diagnostics. The core's error policy is "first error
// wins": there is no recoverable error path, so Report always terminates via
// Exit after printing. Exit and Out are fields (not hardcoded os.Exit/Stderr)
// so tests can observe a diagnostic without killing the test binary.
type Sink struct {
	Out   io.Writer
	Exit  func(code int)
	Color bool
}

// Default is the sink used by the package-level Fatal helper.
var Default = &Sink{Out: os.Stderr, Exit: os.Exit, Color: true}

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
var codeLabel = color.New(color.FgYellow).SprintFunc()

// Report prints "path:line:column: error[CODE]: message" to s.Out, then
// calls s.Exit(1). It never returns when Exit behaves like os.Exit; callers
// in production code should treat it as terminal and need no fallthrough.
func (s *Sink) Report(code Code, path string, line, col int, message string) {
	var label, tag string
	if s.Color {
		label = errorLabel("error")
		tag = codeLabel(string(code))
	} else {
		label = "error"
		tag = string(code)
	}

	fmt.Fprintf(s.Out, "%s:%d:%d: %s[%s]: %s\n", path, line, col, label, tag, message)
	if s.Exit != nil {
		s.Exit(1)
	}
}

// Fatal reports a diagnostic on the default sink. It is the entry point used
// by internal/lexer and internal/parser.
func Fatal(code Code, path string, line, col int, message string) {
	Default.Report(code, path, line, col, message)
}
