package parser

import "errors"

var ErrSyntax = errors.New("beat map syntax error")
