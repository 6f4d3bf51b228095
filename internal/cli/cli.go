package cli

import (
	"fmt"
	"log/slog"

	"github.com/vk/fuelsum/internal/app"
)

// defaultProgramName stands in for argv[0] when the runtime provides none.
const defaultProgramName = "fuelsum"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Usage returns the one-line usage message for the given program name.
func Usage(programName string) string {
	return fmt.Sprintf("usage: %s FILENAME", programName)
}

// Parse validates the full argument vector, program name included. It
// returns a populated Config or an ExitError carrying the usage message.
//
// Exactly one argument must follow the program name. Nothing is treated as
// a flag, so a file called "-h" is read like any other path.
func Parse(args []string) (*app.Config, error) {
	slog.Debug("CLI parser started.", "argc", len(args))

	programName := defaultProgramName
	if len(args) > 0 && args[0] != "" {
		programName = args[0]
	}

	if len(args) != 2 {
		slog.Debug("Wrong number of arguments, reporting usage.", "argc", len(args))
		return nil, &ExitError{Code: 1, Message: Usage(programName)}
	}

	config, err := app.NewConfig(app.Config{
		ProgramName: programName,
		InputPath:   args[1],
		LogFormat:   app.DefaultLogFormat,
		LogLevel:    app.DefaultLogLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: 1, Message: Usage(programName), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, nil
}
