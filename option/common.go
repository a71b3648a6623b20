package option

import "github.com/zeebo/errs"

var (
	Error = errs.Class("option")

	// ErrIncompatibleFormat is returned when a byte sequence cannot
	// be interpreted as the option value format.
	ErrIncompatibleFormat = errs.Class("incompatible option value format")
)
