package gallery

import "fmt"

// ValidationError reports caller-supplied data that fails a precondition.
// It is always raised before any storage access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DatabaseErrorKind distinguishes the referential failures callers can
// act on from raw storage faults.
type DatabaseErrorKind int

const (
	KindStorage DatabaseErrorKind = iota
	KindNotFound
	// KindConflict covers duplicate keys and blocked deletes.
	KindConflict
)

// DatabaseError reports a failed referential or uniqueness precondition,
// or an underlying storage fault. In the fault case the transaction has
// already been rolled back by the time the error escapes the Store.
type DatabaseError struct {
	Kind DatabaseErrorKind
	Msg  string
	Err  error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func notFoundf(format string, args ...any) error {
	return &DatabaseError{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &DatabaseError{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}
