package codec

import "errors"

var (
	// ErrInvalidData represents general invalid data such as an unknown tag byte.
	ErrInvalidData = errors.New("invalid data")
	// ErrUnexpectedEnd represents a buffer shorter than the data it declares.
	ErrUnexpectedEnd = errors.New("unexpected end of data")
	// ErrNoTerminate represents a varint whose terminating byte never arrives.
	ErrNoTerminate = errors.New("no terminating bit found")
	// ErrOutOfRange represents a varint exceeding the permitted byte budget.
	ErrOutOfRange = errors.New("out of range")
	// ErrMaxLength represents a declared length above MaxValueLength.
	ErrMaxLength = errors.New("declared length exceeds maximum")
	// ErrNegative represents a negative value given to an unsigned encoding.
	ErrNegative = errors.New("negative value for unsigned encoding")
)
