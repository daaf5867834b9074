package cache

import (
	"bytes"
	"encoding/gob"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/pkg"
)

// Options holds the resolution settings that affect a cached result.
type Options struct {
	AllowCycle    bool
	AllowKeyClash bool
	Cleanup       bool
}

// node is the canonical encoding of an [env.Value]; variants are sorted by
// platform so equal values always encode identically.
type node struct {
	Kind  env.Kind
	Text  string
	Items []string
	Names []string
	Nodes []node
}

func makeNode(v env.Value) node {
	n := node{Kind: v.Kind, Text: v.Text, Items: v.Items}

	for _, name := range slices.Sorted(maps.Keys(v.Variants)) {
		n.Names = append(n.Names, name)
		n.Nodes = append(n.Nodes, makeNode(v.Variants[name]))
	}

	return n
}

// Key returns a key identifying the environment resolved from specs, in
// order, for platform p with the given options.
//
// The key also depends on the program version, so upgrades never reuse
// stale entries.
func Key(p env.Platform, opts Options, specs ...env.Spec) string {
	values := []any{pkg.Version(), p, opts}

	for _, spec := range specs {
		values = append(values, spec.Len())

		for key, value := range spec.All() {
			values = append(values, key, makeNode(value))
		}
	}

	key, err := hash(values...)
	if err != nil {
		// Every value above has a gob encoding.
		panic(err)
	}

	return key
}

// hash returns the xxh3 hash of the gob encoding of values, in order.
func hash(values ...any) (string, error) {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)

	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return "", ErrEncode.Wrap(err).With(slog.Int("index", i))
		}
	}

	return strconv.FormatUint(xxh3.Hash(buf.Bytes()), 36), nil
}
