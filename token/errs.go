package token

import (
	"errors"
	"fmt"
)

var ErrBadUTF8 = errors.New("bad utf8")

type TokenizeErr struct {
	Err error
	Off int
}

func NewTokenizeErr(e error, off int) *TokenizeErr {
	return &TokenizeErr{Err: e, Off: off}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Off)
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}
