package utils

import (
	"errors"
)

var ErrEmptySlice = errors.New("slice is empty")
