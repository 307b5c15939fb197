package cli

import "fmt"

// Exit codes returned by the rewind binary.
const (
	ExitSuccess        = 0 // Success
	ExitGeneral        = 1 // General/unknown error
	ExitConfig         = 2 // Invalid YAML or config values
	ExitDatabase       = 3 // Database init fails, corrupt/locked
	ExitMemberNotFound = 4 // Member or version not found
	ExitImportFailed   = 5 // Export could not be read or stored
	ExitRunFailed      = 6 // Runner could not execute the code
)

// ExitCoder is an interface for errors that carry a custom exit code and message.
type ExitCoder interface {
	ExitCode() int
	Message() string
}

type cliError struct {
	code    int
	message string
	err     error
}

// NewCLIError creates a new CLIError with the given code and message.
func NewCLIError(code int, message string) *cliError {
	return &cliError{
		code:    code,
		message: message,
	}
}

// WrapError creates a new CLIError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface.
func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// ExitCode returns the exit code for this error.
func (e *cliError) ExitCode() int {
	return e.code
}

// Message returns the formatted message for display.
func (e *cliError) Message() string {
	return fmt.Sprintf("Error: %s\n", e.Error())
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *cliError) Unwrap() error {
	return e.err
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrDatabase creates a database error.
func ErrDatabase(message string, err error) *cliError {
	return WrapError(ExitDatabase, message, err)
}

// ErrMemberNotFound creates a member not found error.
func ErrMemberNotFound(ref string) *cliError {
	return NewCLIError(ExitMemberNotFound, fmt.Sprintf("member not found: %s", ref))
}

// ErrVersionNotFound creates an error for a timestamp matching no version.
func ErrVersionNotFound(member, at string) *cliError {
	return NewCLIError(ExitMemberNotFound, fmt.Sprintf("no version of %s at %s", member, at))
}

// ErrImportFailed creates an import failure error.
func ErrImportFailed(message string, err error) *cliError {
	return WrapError(ExitImportFailed, message, err)
}

// ErrRunFailed creates a runner failure error.
func ErrRunFailed(message string, err error) *cliError {
	return WrapError(ExitRunFailed, message, err)
}
