// Package conditional holds the table of OpenSSL capability flags and the
// symbols each flag gates.
//
// A binding layer that talks to libcrypto/libssl may only bind a symbol
// listed here when the corresponding flag is true for the library it was
// built against. The table is fixed at compile time and never mutated;
// every accessor returns a copy, so it is safe for concurrent use.
package conditional

import (
	"errors"
	"fmt"
)

// ErrUnknownFlag is returned when looking up a flag that is not in the table.
var ErrUnknownFlag = errors.New("conditional: unknown flag")

// Entry associates a capability flag with the symbols it gates.
type Entry struct {
	Name     string
	Symbols  []string
	Requires Requirement
}

func (e Entry) clone() Entry {
	e.Symbols = cloneStrings(e.Symbols)
	e.Requires.Probe = cloneStrings(e.Requires.Probe)
	return e
}

// byName indexes table by flag name.
var byName map[string]int

func init() {
	if err := table.validate(); err != nil {
		panic(err)
	}
	byName = make(map[string]int, len(table))
	for i, e := range table {
		byName[e.Name] = i
	}
}

// Get returns a copy of the entry for flag and a boolean indicating existence.
func Get(flag string) (Entry, bool) {
	i, ok := byName[flag]
	if !ok {
		return Entry{}, false
	}
	return table[i].clone(), true
}

// Symbols returns the ordered list of symbols gated by flag.
func Symbols(flag string) ([]string, error) {
	i, ok := byName[flag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlag, flag)
	}
	return cloneStrings(table[i].Symbols), nil
}

// MustSymbols is like Symbols but panics if flag is unknown.
// Use it with the Flag constants, where a miss is a programming error.
func MustSymbols(flag string) []string {
	s, err := Symbols(flag)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns every flag name in table order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.Name
	}
	return out
}

// Len returns the number of flags in the table.
func Len() int {
	return len(table)
}

// All returns a deep copy of the table.
func All() Table {
	return table.clone()
}

// BuildConditionalMap returns the mapping from every flag name to its
// symbols. Each call returns a fresh map.
func BuildConditionalMap() map[string][]string {
	return table.Map()
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
