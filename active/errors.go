package active

import "errors"

var (
	// ErrTaskFailed wraps any error (or recovered panic) raised by the
	// wrapped function while it executed. It is distinguishable from the
	// waiting caller's own context being cancelled, which surfaces as the
	// untouched context error instead.
	ErrTaskFailed = errors.New("active: task computation failed")

	// ErrNilFunction is returned by the pool factory when no process
	// function is supplied.
	ErrNilFunction = errors.New("active: nil process function")

	// ErrNilSource is returned by the pool factory when the source mapping
	// is nil.
	ErrNilSource = errors.New("active: nil source mapping")
)
