package cli

import "fmt"

// Process exit codes; the shell widget dispatches on these.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitBlocked = 2
	ExitBackend = 3
)

// ExitError carries a process exit code through cobra's RunE chain up to
// main. Err may be nil when the diagnostic was already printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Err: err}
}

func backendError(err error) *ExitError {
	return &ExitError{Code: ExitBackend, Err: err}
}
