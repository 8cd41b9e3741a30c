package errors

import (
	"fmt"

	"github.com/oasislabs/solana-self-transfer/log"
)

type Err interface {
	Error() string
	log.Loggable
}

var (
	ErrInternalError = ErrorCode{
		category: InternalError,
		code:     1000,
		desc:     "Internal Error.",
	}

	ErrDialRPC = ErrorCode{
		category: InternalError,
		code:     1001,
		desc:     "Failed to create a client for the rpc endpoint.",
	}

	ErrFetchBlockhash = ErrorCode{
		category: InternalError,
		code:     1002,
		desc:     "Failed to fetch the latest blockhash.",
	}

	ErrCompileMessage = ErrorCode{
		category: InternalError,
		code:     1003,
		desc:     "Failed to compile the transaction message.",
	}

	ErrSignTransaction = ErrorCode{
		category: InternalError,
		code:     1004,
		desc:     "Failed to sign the transaction.",
	}

	ErrSendTransaction = ErrorCode{
		category: InternalError,
		code:     1005,
		desc:     "Failed to send the transaction.",
	}

	ErrLoadKeypair = ErrorCode{
		category: InputError,
		code:     1006,
		desc:     "Failed to load the keypair file.",
	}

	ErrInvalidAmount = ErrorCode{
		category: InputError,
		code:     2001,
		desc:     "Transfer amount must be greater than zero.",
	}

	ErrInvalidURL = ErrorCode{
		category: InputError,
		code:     2002,
		desc:     "Provided rpc url is invalid.",
	}

	ErrNoInstructions = ErrorCode{
		category: InputError,
		code:     2003,
		desc:     "A transaction needs at least one instruction.",
	}

	ErrUnknownCluster = ErrorCode{
		category: InputError,
		code:     2004,
		desc:     "Unknown cluster name.",
	}
)

// Category defines error categories that logically group them
type Category string

const (
	// InternalError refers to errors raised while talking to the
	// rpc endpoint or by the client library itself
	InternalError Category = "InternalError"

	// InputError refers to errors that are returned because the input
	// provided to execute an action is incorrect, malformed or could
	// not be parsed
	InputError Category = "InputError"
)

// Error is the implementation of an error for this package. It contains
// an instance of an ErrorCode which provides information about the error
// and a cause which might be nil if there's no underlying cause for
// the error. The cause is kept untouched so callers can surface the
// message the library or the remote endpoint produced
type Error struct {
	Cause     error
	ErrorCode ErrorCode
}

// Error is the implementation of error for Error
func (e Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s", e.ErrorCode.Code(), e.ErrorCode.Desc())
	}

	return fmt.Sprintf("[%d] %s: %s", e.ErrorCode.Code(), e.ErrorCode.Desc(), e.Cause)
}

// Unwrap returns the underlying cause
func (e Error) Unwrap() error {
	return e.Cause
}

// Log implementation of log.Loggable
func (e Error) Log(fields log.Fields) {
	fields.Add("err", e.ErrorCode.Desc())
	fields.Add("errorCode", e.ErrorCode.Code())
	fields.Add("errorCategory", string(e.ErrorCode.Category()))

	if e.Cause != nil {
		fields.Add("cause", e.Cause.Error())
	}
}

// New creates a new instance of an error
func New(errorCode ErrorCode, cause error) Error {
	return Error{Cause: cause, ErrorCode: errorCode}
}

// Root returns the message of the innermost cause of err, which is
// the message produced by the library or the remote service
func Root(err error) error {
	for {
		e, ok := err.(Error)
		if !ok || e.Cause == nil {
			return err
		}
		err = e.Cause
	}
}

// ErrorCode holds the necessary information to uniquely identify an error
type ErrorCode struct {
	// category is the type of the error
	category Category

	// code is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	code int

	// desc is a human readable description of the error that occurred
	desc string
}

// Category getter for category
func (e ErrorCode) Category() Category {
	return e.category
}

// Code getter for code
func (e ErrorCode) Code() int {
	return e.code
}

// Desc getter for desc
func (e ErrorCode) Desc() string {
	return e.desc
}
