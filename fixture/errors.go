package fixture

import "fmt"

// WriteError reports a failure to create or fully write the fixture
// file. It is the only error kind Write returns.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("write fixture %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error
func (e *WriteError) Unwrap() error {
	return e.Cause
}
