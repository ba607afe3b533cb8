package dotcode

import (
	"errors"

	"github.com/ahue/dotcode/internal/compact"
	"github.com/ahue/dotcode/internal/sizing"
)

// ErrMalformedEscape is returned when, with literal=false, a '#' character
// in the message is followed by anything other than '#', '0', '1', '2', or
// '3'.
var ErrMalformedEscape = compact.ErrMalformedEscape

// ErrGeometryImpossible is returned when an exact (negative Height/Width)
// geometry request has the wrong parity, mixes positive and negative
// hints, or the resolved geometry cannot hold the message's codewords.
var ErrGeometryImpossible = sizing.ErrGeometryImpossible

// ErrInputTooLarge is returned when a message compacts to more codewords
// than any symbol geometry this encoder will attempt can hold.
var ErrInputTooLarge = errors.New("dotcode: message produces too many codewords for any symbol size")

// ErrInternalOverflow is returned when a Reed-Solomon codeword fell outside
// 0..112 after masking — a defensive check that should never trip for
// valid input, since mask weights and the field modulus are fixed
// constants.
var ErrInternalOverflow = errors.New("dotcode: internal codeword out of range")
