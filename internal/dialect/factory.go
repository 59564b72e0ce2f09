package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ftpkit/listparse/internal/listing"
)

// Built-in dialect keys.
const (
	KeyUnix    = "unix"
	KeyWindows = "windows"
)

// InitializationError indicates that a dialect key could not be resolved, or
// that constructing the resolved parser failed.
type InitializationError struct {
	key   string
	cause error
}

func (e InitializationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("dialect %q: no parser registered", e.key)
	}
	return fmt.Sprintf("dialect %q: %s", e.key, e.cause)
}

func (e InitializationError) Unwrap() error {
	return e.cause
}

// Constructor builds a fresh parser instance for one dialect. Instances
// share no state unless a constructor documents otherwise.
type Constructor func() (listing.EntryParser[*File], error)

// Registry resolves opaque dialect keys to parser instances. Keys match
// case-insensitively, and a key that merely embeds a registered dialect
// name, such as a raw SYST reply ("UNIX Type: L8"), also resolves.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry returns a registry with all built-in dialects registered.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]Constructor)}
	r.Register(KeyUnix, func() (listing.EntryParser[*File], error) { return NewUnixParser(), nil })
	r.Register(KeyWindows, func() (listing.EntryParser[*File], error) { return NewWindowsParser(), nil })
	return r
}

// Register adds or replaces the constructor for key.
func (r *Registry) Register(key string, build Constructor) {
	r.constructors[normalizeKey(key)] = build
}

// New resolves key and constructs a parser ready for immediate use. It
// never returns a nil parser without an error.
func (r *Registry) New(key string) (listing.EntryParser[*File], error) {
	normalized := normalizeKey(key)
	build, ok := r.constructors[normalized]
	if !ok {
		for _, name := range r.Keys() {
			if strings.Contains(normalized, normalizeKey(name)) {
				build = r.constructors[normalizeKey(name)]
				ok = true
				break
			}
		}
	}
	if !ok {
		return nil, InitializationError{key: key}
	}

	parser, err := build()
	if err != nil {
		return nil, InitializationError{key: key, cause: err}
	}
	if parser == nil {
		return nil, InitializationError{key: key, cause: fmt.Errorf("constructor returned no parser")}
	}
	return parser, nil
}

// Keys returns the registered dialect keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.constructors))
	for key := range r.constructors {
		keys = append(keys, strings.ToLower(key))
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

var defaultRegistry = NewRegistry()

// New constructs a parser for key from the default registry.
func New(key string) (listing.EntryParser[*File], error) {
	return defaultRegistry.New(key)
}

// Keys lists the dialect keys in the default registry.
func Keys() []string {
	return defaultRegistry.Keys()
}
