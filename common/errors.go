package common

import "github.com/ansel1/merry"

var (
	ErrorInvalidValue = merry.New("invalid value")

	// all caller-visible parameter errors wrap ErrorInvalidArgument
	ErrorInvalidArgument   = merry.New("invalid argument")
	ErrorInvalidOperator   = ErrorInvalidArgument.WithMessage("invalid comparison operator")
	ErrorInvalidMode       = ErrorInvalidArgument.WithMessage("invalid mode")
	ErrorDimensionMismatch = ErrorInvalidArgument.WithMessage("dimension mismatch")
	ErrorWindowWidth       = ErrorInvalidArgument.WithMessage("window width out of range")
	ErrorInvalidPercentile = ErrorInvalidArgument.WithMessage("percentile out of range")

	ErrorKernelPanic = merry.New("kernel panic")
)

// IsInvalidArgument reports whether err was caused by a bad parameter.
func IsInvalidArgument(err error) bool {
	return merry.Is(err, ErrorInvalidArgument)
}
