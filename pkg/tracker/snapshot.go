package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/klauspost/compress/zstd"
)

// Export writes every key the tracker owns to w as a zstd compressed JSON object.
// It returns the number of keys written.
func (t *Tracker) Export(ctx context.Context, w io.Writer) (int, error) {
	if !t.available() {
		return 0, nil
	}
	keys, err := t.ownedKeys(ctx, t.store)
	if err != nil {
		return 0, fmt.Errorf("failed to list keys: %w", err)
	}
	items := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := t.store.GetItem(ctx, k)
		if err != nil {
			if kv.IsNotFound(err) {
				continue
			}
			return 0, fmt.Errorf("failed to read %q: %w", k, err)
		}
		items[k] = v
	}

	compWriter, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := json.NewEncoder(compWriter).Encode(items); err != nil {
		compWriter.Close()
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := compWriter.Close(); err != nil {
		return 0, fmt.Errorf("failed to close zstd writer: %w", err)
	}

	log.Debug("Exported %d keys", len(items))
	return len(items), nil
}

// Import restores a snapshot written by Export, overwriting existing keys.
// Keys in the snapshot that fall outside the tracker's namespace are skipped.
// It returns the number of keys written.
func (t *Tracker) Import(ctx context.Context, r io.Reader) (int, error) {
	if !t.available() {
		return 0, nil
	}
	compReader, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer compReader.Close()

	items := map[string]string{}
	if err := json.NewDecoder(compReader).Decode(&items); err != nil {
		return 0, fmt.Errorf("%w: snapshot: %v", ErrMalformedRecord, err)
	}

	written := 0
	err = kv.Update(ctx, t.store, func(tx kv.Store) error {
		written = 0
		for k, v := range items {
			if !t.owns(k) {
				log.Warn("Skipping snapshot key %q outside namespace", k)
				continue
			}
			if err := tx.SetItem(ctx, k, v); err != nil {
				return fmt.Errorf("failed to write %q: %w", k, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Debug("Imported %d keys", written)
	return written, nil
}
