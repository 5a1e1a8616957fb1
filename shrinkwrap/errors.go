package shrinkwrap

import (
	"errors"

	"github.com/wireweaver/shrinkwrap/internal/bitio"
)

// Sentinel errors returned by the codec. Operations report failures,
// canonical-encoding violations included, by returning one of these as an
// ordinary error value; there is no internal panic-and-recover step.
var (
	ErrOutOfBounds        = bitio.ErrOutOfBounds // shared so cursor-level overruns match errors.Is(err, ErrOutOfBounds)
	ErrMalformedFormat    = errors.New("shrinkwrap: malformed format")
	ErrMalformedUTF8      = errors.New("shrinkwrap: malformed utf8")
	ErrVecTooLong         = errors.New("shrinkwrap: vec too long")
	ErrSubtypeOutOfRange  = errors.New("shrinkwrap: subtype value out of range")
	ErrStackVecEmpty      = errors.New("shrinkwrap: stack vec is empty")
	ErrWriteAcrossCursor  = errors.New("shrinkwrap: front and back cursors crossed")
	ErrImpliedSizeInVec   = errors.New("shrinkwrap: implied-size element cannot appear in a vec")
	ErrNonCanonicalUNib32 = errors.New("shrinkwrap: non-canonical unib32 encoding")
)
