package hbasemap

import (
	"errors"
	"fmt"

	"github.com/challenai/hbasemap/codec"
)

var (
	// ErrConfiguration is returned by New for an invalid Config.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation is returned for malformed arguments, such as CreateTable
	// without column families.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedType is returned when a field value is not text, a
	// 64-bit integer, a boolean or nil.
	ErrUnsupportedType = codec.ErrUnsupportedType
	// ErrMissingColumnFamily is returned when an unqualified field name is
	// resolved without a default column family.
	ErrMissingColumnFamily = errors.New("missing column family")
	// ErrNoOwningTable is returned by Row.Save and Row.Delete on a row that
	// is not bound to a Table.
	ErrNoOwningTable = errors.New("row has no owning table")
	// ErrRowNotFound is returned by Table.Get when the row does not exist.
	ErrRowNotFound = errors.New("row not found")
)

// Error wraps a sentinel error with additional context
type Error struct {
	err     error  // The underlying sentinel error
	context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.err
}

func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}

// RemoteError is any failure reported by the Thrift gateway or the transport
// underneath it. Err is the error exactly as the client returned it, so
// errors.As can still reach *hbase.IOError and friends.
type RemoteError struct {
	Op    string
	Table string
	Err   error
}

func (e *RemoteError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("hbase %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hbase %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
