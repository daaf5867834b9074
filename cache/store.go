package cache

import (
	"context"
	"encoding/gob"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/log"
)

// Ext is the file extension of cache entries.
const Ext = ".gob"

// Store keeps cache entries as files in a directory.
type Store struct {
	Dir string
}

// entry is the encoded form of a cached environment.
type entry struct {
	Keys   []string
	Values []string
}

func (s Store) path(key string) string {
	return filepath.Join(s.Dir, key+Ext)
}

// Get returns the environment stored under key and whether it exists.
func (s Store) Get(ctx context.Context, key string) (env.Env, bool, error) {
	path := s.path(key)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.TraceContext(ctx, "cache miss", slog.String("key", key))

			return env.Env{}, false, nil
		}

		return env.Env{}, false, err
	}
	defer f.Close()

	var ent entry

	if err := gob.NewDecoder(f).Decode(&ent); err != nil {
		return env.Env{}, false, ErrCorrupt.Wrap(err).With(slog.String("path", path))
	}

	if len(ent.Keys) != len(ent.Values) {
		return env.Env{}, false, ErrCorrupt.With(slog.String("path", path))
	}

	var e env.Env
	for i, k := range ent.Keys {
		e.Set(k, ent.Values[i])
	}

	log.DebugContext(ctx, "cache hit",
		slog.String("key", key),
		slog.Int("keys", e.Len()),
	)

	return e, true, nil
}

// Put stores e under key, replacing any previous entry. The entry is written
// to a temporary file first so readers never see a partial entry.
func (s Store) Put(ctx context.Context, key string, e env.Env) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return ErrWrite.Wrap(err).With(slog.String("dir", s.Dir))
	}

	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return ErrWrite.Wrap(err).With(slog.String("dir", s.Dir))
	}

	// No-op after a successful rename.
	defer os.Remove(tmp.Name())

	var ent entry
	for k, v := range e.All() {
		ent.Keys = append(ent.Keys, k)
		ent.Values = append(ent.Values, v)
	}

	if err := gob.NewEncoder(tmp).Encode(ent); err != nil {
		tmp.Close()

		return ErrWrite.Wrap(err).With(slog.String("path", tmp.Name()))
	}

	if err := tmp.Close(); err != nil {
		return ErrWrite.Wrap(err).With(slog.String("path", tmp.Name()))
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return ErrWrite.Wrap(err).With(slog.String("path", s.path(key)))
	}

	log.DebugContext(ctx, "cache store", slog.String("key", key))

	return nil
}

// Clear removes every entry of the store.
func (s Store) Clear(ctx context.Context) error {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*"+Ext))
	if err != nil {
		return err
	}

	for _, path := range matches {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	log.DebugContext(ctx, "cache cleared",
		slog.String("dir", s.Dir),
		slog.Int("entries", len(matches)),
	)

	return nil
}
