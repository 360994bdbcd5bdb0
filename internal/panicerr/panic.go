package panicerr

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
)

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func newPanicError(name string, e interface{}) panicError {
	return panicError{name: name, e: e, stack: debug.Stack()}
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// panic.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

// Value returns the raw value passed to panic, if err is a recovered panic.
func Value(err error) (interface{}, bool) {
	var pe panicError
	if errors.As(err, &pe) {
		return pe.e, true
	}
	return nil, false
}
