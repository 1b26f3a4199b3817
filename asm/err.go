package asm

import (
	"errors"

	"github.com/ezrec/masm86/translate"
)

var f = translate.From

// ErrAssembly reports that the session collected hard diagnostics; the
// detail is in the diagnostic list.
var ErrAssembly = errors.New(f("assembly failed"))

// ErrExpression marks a directive argument that did not evaluate to an
// integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a constant expression", string(err))
}
