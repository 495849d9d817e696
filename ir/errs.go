package ir

import "errors"

var (
	ErrBadKind  = errors.New("bad block kind")
	ErrDupKey   = errors.New("duplicate stable key")
	ErrBadSpan  = errors.New("bad block span")
	ErrNoKey    = errors.New("block has no stable key")
	ErrNotFound = errors.New("block not found")
)
