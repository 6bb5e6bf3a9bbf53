//go:build js && wasm

package kv

import (
	"context"
	"fmt"
)

// bbolt needs file locking, which js/wasm does not provide.
func openBoltStore(ctx context.Context, path string) (Store, error) {
	return nil, fmt.Errorf("bolt store %s: %w", path, ErrUnavailable)
}
