// Package catalog is the name-indexed registry of the built-in symbol
// generators. The CLI and the placement script build symbols through it
// using string-valued options.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/schemalab/symkit/pkg/symbols"
)

// Options carries raw construction options, as parsed from a script or
// command line. Keys a builder does not recognize are an error.
type Options map[string]string

// BuildFunc constructs a symbol from raw options.
type BuildFunc func(opts Options) (symbols.Symbol, error)

// Entry describes one registered symbol generator.
type Entry struct {
	Name        string
	Description string
	Build       BuildFunc
}

var registry = map[string]Entry{}

// Register adds a generator to the catalog. Registering the same name
// twice is a programming error.
func Register(e Entry) {
	if _, ok := registry[e.Name]; ok {
		panic(fmt.Sprintf("catalog: duplicate symbol %q", e.Name))
	}
	registry[e.Name] = e
}

// Get looks up a generator by name.
func Get(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Build constructs a symbol by catalog name.
func Build(name string, opts Options) (symbols.Symbol, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q", name)
	}
	return e.Build(opts)
}

// Names returns the registered symbol names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// optionSet tracks which options a builder consumed so leftovers can be
// reported as errors.
type optionSet struct {
	opts Options
	used map[string]bool
}

func newOptionSet(opts Options) *optionSet {
	return &optionSet{opts: opts, used: make(map[string]bool)}
}

func (s *optionSet) has(key string) bool {
	_, ok := s.opts[key]
	if ok {
		s.used[key] = true
	}
	return ok
}

func (s *optionSet) flag(key string) (bool, error) {
	v, ok := s.opts[key]
	if !ok {
		return false, nil
	}
	s.used[key] = true
	if v == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("option %q: %w", key, err)
	}
	return b, nil
}

func (s *optionSet) float(key string, def float64) (float64, error) {
	v, ok := s.opts[key]
	if !ok {
		return def, nil
	}
	s.used[key] = true
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("option %q: %w", key, err)
	}
	return f, nil
}

func (s *optionSet) int(key string, def int) (int, error) {
	v, ok := s.opts[key]
	if !ok {
		return def, nil
	}
	s.used[key] = true
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option %q: %w", key, err)
	}
	return n, nil
}

func (s *optionSet) string(key, def string) string {
	v, ok := s.opts[key]
	if !ok {
		return def
	}
	s.used[key] = true
	return v
}

func (s *optionSet) intList(key string) ([]int, error) {
	v, ok := s.opts[key]
	if !ok {
		return nil, nil
	}
	s.used[key] = true
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *optionSet) finish(name string) error {
	for key := range s.opts {
		if !s.used[key] {
			return fmt.Errorf("symbol %q: unknown option %q", name, key)
		}
	}
	return nil
}
