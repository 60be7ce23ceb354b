package bimap

import "errors"

var (
	ErrPairNotExisted = errors.New("pair not existed")
)
