package env

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/denv/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrCycle           = pkg.NewError("dependency cycle")
	ErrDynamicKeyClash = pkg.NewError("dynamic key clash")
)

// CycleError is returned when definitions depend on each other in a way no
// ordering can satisfy. Keys lists every definition left with unresolved
// dependencies, in specification order.
type CycleError struct {
	Keys []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return ErrCycle.Error() + ": " + quoteJoin(e.Keys)
}

// Unwrap returns [ErrCycle].
func (e *CycleError) Unwrap() error { return ErrCycle }

// LogValue implements slog.LogValuer.
func (e *CycleError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrCycle.Error()),
		slog.Any("keys", e.Keys),
	)
}

// DynamicKeyClashError is returned when two definitions expand to the same
// key with different values.
//
// Sources holds the definition keys as written, Values the values they
// resolved to, both in processing order.
type DynamicKeyClashError struct {
	Key     string
	Sources []string
	Values  []string
}

// Error implements the error interface.
func (e *DynamicKeyClashError) Error() string {
	return ErrDynamicKeyClash.Error() + " on " + strconv.Quote(e.Key) +
		" (sources: " + quoteJoin(e.Sources) + ")"
}

// Unwrap returns [ErrDynamicKeyClash].
func (e *DynamicKeyClashError) Unwrap() error { return ErrDynamicKeyClash }

// LogValue implements slog.LogValuer.
func (e *DynamicKeyClashError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrDynamicKeyClash.Error()),
		slog.String("key", e.Key),
		slog.Any("sources", e.Sources),
		slog.Any("values", e.Values),
	)
}

func quoteJoin(s []string) string {
	q := make([]string, len(s))
	for i, v := range s {
		q[i] = strconv.Quote(v)
	}

	return strings.Join(q, ", ")
}
