package openssl

import (
	"fmt"

	"github.com/golang-fips/openssl-conditional/conditional"
)

// Bindings records which conditional flags hold for a library.
type Bindings struct {
	Version conditional.Version
	Flavor  conditional.Flavor

	table   conditional.Table
	enabled map[string]bool
}

// Evaluate decides every flag in the conditional table for a library of
// version v and flavor f. has reports whether an exported function exists.
func Evaluate(v conditional.Version, f conditional.Flavor, has func(symbol string) bool) *Bindings {
	b := &Bindings{
		Version: v,
		Flavor:  f,
		table:   conditional.All(),
	}
	b.enabled = make(map[string]bool, len(b.table))
	for _, e := range b.table {
		b.enabled[e.Name] = satisfied(e.Requires, v, f, has)
	}
	return b
}

func satisfied(r conditional.Requirement, v conditional.Version, f conditional.Flavor, has func(string) bool) bool {
	if !r.Flavor.Matches(f) {
		return false
	}
	if f == conditional.OpenSSL {
		if !r.InRange(v) {
			return false
		}
	} else if r.Flavor == conditional.Any && len(r.Probe) == 0 {
		// Version numbers of other flavors do not track OpenSSL's,
		// so a macro-only flag cannot be decided.
		return false
	}
	for _, sym := range r.Probe {
		if !has(sym) {
			return false
		}
	}
	return true
}

// Enabled reports whether flag holds.
func (b *Bindings) Enabled(flag string) (bool, error) {
	on, ok := b.enabled[flag]
	if !ok {
		return false, fmt.Errorf("%w: %q", conditional.ErrUnknownFlag, flag)
	}
	return on, nil
}

// EnabledFlags returns the flags that hold, in table order.
func (b *Bindings) EnabledFlags() []string {
	return b.flags(true)
}

// DisabledFlags returns the flags that do not hold, in table order.
func (b *Bindings) DisabledFlags() []string {
	return b.flags(false)
}

func (b *Bindings) flags(on bool) []string {
	var out []string
	for _, e := range b.table {
		if b.enabled[e.Name] == on {
			out = append(out, e.Name)
		}
	}
	return out
}

// Excluded returns the symbols gated by disabled flags, in table order
// and without duplicates. A binding layer must not try to bind them.
func (b *Bindings) Excluded() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range b.table {
		if b.enabled[e.Name] {
			continue
		}
		for _, s := range e.Symbols {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// Filter returns names without the excluded symbols, preserving order.
func (b *Bindings) Filter(names []string) []string {
	excluded := make(map[string]bool)
	for _, s := range b.Excluded() {
		excluded[s] = true
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !excluded[n] {
			out = append(out, n)
		}
	}
	return out
}
