package kv

import (
	"context"
	"fmt"
	"strings"
)

// Open returns the Store described by dsn. Supported forms:
//
//	memory://
//	browser://
//	sqlite://<path>
//	bolt://<path>
//	postgres://... or postgresql://...
func Open(ctx context.Context, dsn string) (Store, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return nil, fmt.Errorf("store dsn %q has no scheme", dsn)
	}

	switch scheme {
	case "memory":
		return NewMemoryStore(), nil
	case "browser":
		return OpenBrowserStore()
	case "sqlite":
		path, err := storePath(dsn, "sqlite://")
		if err != nil {
			return nil, err
		}
		store, err := NewSQLiteStore(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "bolt":
		path, err := storePath(dsn, "bolt://")
		if err != nil {
			return nil, err
		}
		return openBoltStore(ctx, path)
	case "postgres", "postgresql":
		store, err := NewPostgresStore(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store type %q", scheme)
	}
}

// storePath strips the scheme from a file based dsn.
// The path is taken verbatim so that values like ":memory:" survive.
func storePath(dsn string, scheme string) (string, error) {
	path := strings.TrimPrefix(dsn, scheme)
	if path == "" {
		return "", fmt.Errorf("store dsn %q is missing a path", dsn)
	}
	return path, nil
}
