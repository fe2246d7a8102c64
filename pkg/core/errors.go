package core

import "golang.org/x/xerrors"

// ErrInvalidDomain is returned when a math utility is called with arguments
// outside the domain of its formula, where the raw computation would yield NaN.
var ErrInvalidDomain = xerrors.New("invalid domain")
