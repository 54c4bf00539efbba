package callprobe

import "fmt"

// Error reports a misuse of this package.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(format string, args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
	}
}

// UnitTestError reports a failed argument check.
type UnitTestError struct {
	Message string

	trace *StackTrace
}

func newUnitTestError(message string) *UnitTestError {
	return &UnitTestError{
		Message: message,
		trace:   Callers(1),
	}
}

func (e *UnitTestError) Error() string {
	return e.Message
}

// StackTrace returns the stack captured where the error was created.
func (e *UnitTestError) StackTrace() *StackTrace {
	if e == nil {
		return nil
	}

	return e.trace
}

// RuntimeError is an error raised on purpose.
type RuntimeError struct {
	Message string

	trace *StackTrace
}

func newRuntimeError(message string) *RuntimeError {
	return &RuntimeError{
		Message: message,
		trace:   Callers(1),
	}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// StackTrace returns the stack captured where the error was created.
func (e *RuntimeError) StackTrace() *StackTrace {
	if e == nil {
		return nil
	}

	return e.trace
}

// NameError reports a reference to an operation that does not exist.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("no such operation: %s", e.Name)
}

// TypeError reports an operation invoked with arguments it cannot accept.
type TypeError struct {
	Function string
	Message  string
}

func (e *TypeError) Error() string {
	return e.Message
}

// CallError wraps the error returned by an operation invoked through a Script.
type CallError struct {
	Function string
	Record   Record
}

func (e *CallError) Error() string {
	return fmt.Sprintf("callprobe: call to %q failed: %v", e.Function, e.Record.Value)
}

func (e *CallError) Unwrap() error {
	return e.Record.Value
}

// Report returns the formatted error report of the failed call.
func (e *CallError) Report() string {
	report, err := e.Record.Format()
	if err != nil {
		return err.Error()
	}

	return report
}
