package kv

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the host store cannot be reached,
// for example when browser storage is used outside of a browser.
var ErrUnavailable = errors.New("store unavailable")

type ErrNotFound struct {
	Key string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}
