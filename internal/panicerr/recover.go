package panicerr

// Recover runs f, converting any panic raised along the way into a non-nil
// error return. Panics with an error value remain reachable through
// errors.Unwrap and errors.Is.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = newPanicError(name, e)
		}
	}()
	return f()
}
