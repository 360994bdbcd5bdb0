package inet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fault kinds, matched by errors.Is against any *Fault.
var (
	// ErrInvalidInteraction means that an active pair has no rewrite rule.
	ErrInvalidInteraction = errors.New("invalid interaction")

	// ErrInvalidDereference means that a literal was followed as if it were
	// a port pointer, or that a pointer reached past the live storage.
	ErrInvalidDereference = errors.New("invalid dereference")

	// ErrArithmetic means that an operator could not be evaluated, as when
	// dividing by zero.
	ErrArithmetic = errors.New("arithmetic fault")

	// ErrOutOfMemory means that the arena could not grow; it is always fatal.
	ErrOutOfMemory = errors.New("out of memory")
)

// Fault is a rewrite-time failure tied to the node being rewritten.
type Fault struct {
	Kind   error
	Addr   Addr
	Detail string
	cause  error
}

func (f *Fault) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("%v @%v", f.Kind, f.Addr)
	}
	return fmt.Sprintf("%v @%v: %v", f.Kind, f.Addr, f.Detail)
}

// Is matches the fault's kind.
func (f *Fault) Is(target error) bool { return target == f.Kind }

// Unwrap returns any underlying cause, like a memory limit error.
func (f *Fault) Unwrap() error { return f.cause }

func faultf(kind error, addr Addr, mess string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Addr: addr, Detail: fmt.Sprintf(mess, args...)}
}

// haltError carries a fatal error out of the reduction loop through panic.
type haltError struct{ error }

func (err haltError) Unwrap() error { return err.error }
