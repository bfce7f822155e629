package dory

import (
	"errors"

	"github.com/Electron-Labs/dory-pcs/pairing"
)

var (
	// ErrLengthMismatch is returned when the witness, the evaluations or the
	// two generator vectors disagree in length.
	ErrLengthMismatch = pairing.ErrLengthMismatch

	// ErrInvalidPolynomialForm is returned when the witness builder is given a
	// polynomial that is not a dense table of field elements.
	ErrInvalidPolynomialForm = errors.New("polynomial is not in dense form")

	// ErrCouldntInvertD is returned when the verifier samples d = 0.
	ErrCouldntInvertD = errors.New("could not invert random challenge d")

	// ErrSerialization is returned when a commitment, proof or parameter set
	// does not decode.
	ErrSerialization = errors.New("serialization error")

	// ErrInvalidSingleParam is returned when a singleton parameter's cached
	// pairing does not match e(g1, g2).
	ErrInvalidSingleParam = errors.New("singleton parameter c != e(g1, g2)")

	ErrInvalidSize = errors.New("parameter size must be positive")
)
