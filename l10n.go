// Package l10n resolves source-language messages to their configured
// translations at runtime and substitutes placeholder arguments.
//
// A process configures at most one active bundle (Configure or
// ConfigureContext, last call wins) and then calls T or Translate anywhere in
// its rendering paths. With no bundle configured every call falls back to the
// literal source message, so translation is always safe to invoke.
package l10n

import (
	"context"
	"strings"
)

// Message identifies a translatable string: the source-language text, the
// optional translator comment lines that disambiguate identical messages, and
// the substitution arguments for the resolved template.
type Message struct {
	Message string
	Comment []string
	Args    Args
}

// Key returns the bundle lookup key for m. A message without a comment is
// keyed by the message text itself; with a comment the key is the message, a
// "/", and all comment lines concatenated with no separator between them.
//
// The joined form must match the keys produced by the extraction tooling
// exactly. Note that comment lists differing only in line boundaries collide:
// ["ab","c"] and ["a","bc"] yield the same key.
func (m Message) Key() string {
	if len(m.Comment) == 0 {
		return m.Message
	}
	return m.Message + "/" + strings.Join(m.Comment, "")
}

var defaultStore = NewStore()

// Default returns the process-wide store backing the package-level functions.
func Default() *Store { return defaultStore }

// Configure applies opts to the default store. See Store.Configure.
func Configure(opts Options) error { return defaultStore.Configure(opts) }

// ConfigureContext applies opts to the default store, additionally accepting
// URI sources. See Store.ConfigureContext.
func ConfigureContext(ctx context.Context, opts Options) error {
	return defaultStore.ConfigureContext(ctx, opts)
}

// T translates message through the default store. See Store.T.
func T(message string, args ...any) string { return defaultStore.T(message, args...) }

// Translate resolves m through the default store. See Store.Translate.
func Translate(m Message) string { return defaultStore.Translate(m) }
