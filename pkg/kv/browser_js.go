//go:build js && wasm

package kv

import (
	"context"
	"fmt"
	"sort"
	"syscall/js"
)

// BrowserStore is a Store backed by the page's window.localStorage.
type BrowserStore struct {
	storage js.Value
}

// OpenBrowserStore returns the localStorage of the current page.
// It returns ErrUnavailable when there is no window or no localStorage.
func OpenBrowserStore() (Store, error) {
	window := js.Global().Get("window")
	if !window.Truthy() {
		return nil, ErrUnavailable
	}
	storage := window.Get("localStorage")
	if !storage.Truthy() {
		return nil, ErrUnavailable
	}
	return &BrowserStore{storage: storage}, nil
}

func (s *BrowserStore) GetItem(ctx context.Context, key string) (value string, err error) {
	defer recoverJSError(&err)
	res := s.storage.Call("getItem", key)
	if res.IsNull() || res.IsUndefined() {
		return "", &ErrNotFound{Key: key}
	}
	return res.String(), nil
}

// SetItem fails when the browser rejects the write, e.g. when the quota is exceeded.
func (s *BrowserStore) SetItem(ctx context.Context, key string, value string) (err error) {
	defer recoverJSError(&err)
	s.storage.Call("setItem", key, value)
	return nil
}

func (s *BrowserStore) RemoveItem(ctx context.Context, key string) (err error) {
	defer recoverJSError(&err)
	s.storage.Call("removeItem", key)
	return nil
}

func (s *BrowserStore) Keys(ctx context.Context) (keys []string, err error) {
	defer recoverJSError(&err)
	n := s.storage.Get("length").Int()
	keys = make([]string, 0, n)
	for i := 0; i < n; i++ {
		k := s.storage.Call("key", i)
		if !k.IsNull() && !k.IsUndefined() {
			keys = append(keys, k.String())
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *BrowserStore) Close(ctx context.Context) error {
	return nil
}

// recoverJSError turns an exception thrown by the storage API into an error.
func recoverJSError(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("local storage: %s", jsErr.Error())
			return
		}
		panic(r)
	}
}
