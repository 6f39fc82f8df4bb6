package emulator

import (
	"github.com/ezrec/pic10/translate"
)

var f = translate.From

// ErrImage locates a program image load error by word offset.
type ErrImage struct {
	Offset int
	Err    error
}

func (err *ErrImage) Error() string {
	return f("image word %d %v", err.Offset, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
