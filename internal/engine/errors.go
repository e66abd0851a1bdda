package engine

import "errors"

var ErrInvalidConfig = errors.New("invalid engine config")
