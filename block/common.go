package block

import "github.com/zeebo/errs"

var (
	Error = errs.Class("block")

	// ErrSizeExponent is returned when a requested block size is
	// zero or maps to a size exponent outside the 3-bit szx field.
	ErrSizeExponent = errs.Class("size exponent encoding")

	// ErrTypeBounds is returned when a block number does not fit the
	// 32-bit wire integer.
	ErrTypeBounds = errs.Class("type bounds")

	// ErrMaxNumber is returned when a block number exceeds
	// MaxBlockNumber.
	ErrMaxNumber = errs.Class("maximum block number exceeded")
)
