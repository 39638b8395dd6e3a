package k2go

import (
	"errors"

	"github.com/hupe1980/k2go/relation"
)

// IsInvalidParameters reports whether err stems from a windowed
// constructor whose window dimensions do not match the derived tree
// shape, and returns the typed error if so.
func IsInvalidParameters(err error) (*relation.ErrInvalidParameters, bool) {
	var ip *relation.ErrInvalidParameters
	if errors.As(err, &ip) {
		return ip, true
	}

	return nil, false
}

// IsInvalidArity reports whether err stems from arities below 2, and
// returns the typed error if so.
func IsInvalidArity(err error) (*relation.ErrInvalidArity, bool) {
	var ia *relation.ErrInvalidArity
	if errors.As(err, &ia) {
		return ia, true
	}

	return nil, false
}
