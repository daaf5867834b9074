// Package cache stores resolved environments on disk, keyed by a hash of
// everything that determines them.
//
// Resolution is deterministic, so an environment computed once for a set of
// tool specifications, a platform, and resolution options can be reused until
// any of those change. Environments are cached before they are merged with a
// host environment.
package cache
