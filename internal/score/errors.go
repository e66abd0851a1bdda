package score

import "errors"

var ErrNoDatabase = errors.New("score database not initialised")
