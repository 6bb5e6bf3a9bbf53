//go:build !(js && wasm)

package kv

// OpenBrowserStore always fails outside of a js/wasm build.
func OpenBrowserStore() (Store, error) {
	return nil, ErrUnavailable
}
