package repomanager

import "errors"

var (
	ErrStoreInUse = errors.New("shadow store path exists but is not a directory")
	ErrReleased   = errors.New("shadow store was already released")
)
