package navigation

import (
	"errors"

	"github.com/bnema/navkit/internal/domain/uri"
)

var (
	// ErrInvalidBaseURI reports that the host declared a base URI whose
	// derived prefix does not parse. Unrecoverable configuration error.
	ErrInvalidBaseURI = errors.New("navigation: malformed base URI")

	// ErrInvalidURI reports an unparsable URI reference passed by the caller.
	ErrInvalidURI = errors.New("navigation: invalid URI reference")

	// ErrNotContained reports an absolute URI outside the base prefix.
	ErrNotContained = uri.ErrNotContained
)
