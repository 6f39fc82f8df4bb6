package periph

import (
	"github.com/ezrec/pic10/translate"
)

var f = translate.From

// ErrPinRange indicates a pin index outside GP0..GP3.
type ErrPinRange int

func (err ErrPinRange) Error() string {
	return f("pin %v out of range", int(err))
}
