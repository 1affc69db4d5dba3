package l10n

import "sync"

// Store holds the active translation bundle and the substitution formatter.
// It starts empty: every lookup falls back to the source message until a
// Configure call installs a bundle. State is replaced wholesale on each
// successful configuration, never merged.
type Store struct {
	mu        sync.RWMutex
	bundle    Bundle
	formatter FormatterFunc
}

// NewStore returns an empty store. Callers that prefer explicit dependency
// passing over the package-level default can hold their own instance.
func NewStore() *Store { return &Store{} }

// Translate resolves m against the active bundle and applies the active
// formatter. Lookup misses fall back to the source message and unmatched
// placeholders stay verbatim, so Translate never fails.
func (s *Store) Translate(m Message) string {
	s.mu.RLock()
	bundle, formatter := s.bundle, s.formatter
	s.mu.RUnlock()

	template := m.Message
	if entry, ok := bundle[m.Key()]; ok {
		template = entry.Message
	}
	if formatter == nil {
		formatter = Format
	}
	return formatter(template, m.Args)
}

// T translates a bare message. The variadic tail supplies the substitution
// arguments: a single map argument is treated as named args, anything else as
// the positional list.
func (s *Store) T(message string, args ...any) string {
	return s.Translate(Message{Message: message, Args: argsFromVariadic(args)})
}

func argsFromVariadic(args []any) Args {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 {
		switch v := args[0].(type) {
		case Map:
			return v
		case map[string]any:
			return Map(v)
		case map[string]string:
			named := make(Map, len(v))
			for k, s := range v {
				named[k] = s
			}
			return named
		case Args:
			return v
		}
	}
	return List(args)
}

func (s *Store) replace(b Bundle, f FormatterFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = b
	if f != nil {
		s.formatter = f
	}
}

func (s *Store) setFormatter(f FormatterFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formatter = f
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = nil
	s.formatter = nil
}
