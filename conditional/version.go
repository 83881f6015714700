package conditional

import "strconv"

// Version is an OpenSSL release number.
type Version struct {
	Major, Minor, Patch uint
}

// IsZero reports whether v is the zero Version, used as "unbounded" in a Requirement.
func (v Version) IsZero() bool {
	return v == Version{}
}

// AtOrAbove returns true when v >= o, compared lexicographically.
func (v Version) AtOrAbove(o Version) bool {
	return v.Major > o.Major || (v.Major == o.Major && v.Minor > o.Minor) || (v.Major == o.Major && v.Minor == o.Minor && v.Patch >= o.Patch)
}

func (v Version) String() string {
	return strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10) + "." + strconv.FormatUint(uint64(v.Patch), 10)
}

// Flavor identifies the OpenSSL-compatible library family.
type Flavor int

const (
	// Any matches every flavor.
	Any Flavor = iota
	OpenSSL
	LibreSSL
	BoringSSL
)

func (f Flavor) String() string {
	switch f {
	case Any:
		return "any"
	case OpenSSL:
		return "OpenSSL"
	case LibreSSL:
		return "LibreSSL"
	case BoringSSL:
		return "BoringSSL"
	}
	return "Flavor(" + strconv.Itoa(int(f)) + ")"
}

// Matches reports whether a requirement pinned to f is satisfied by a library of flavor lib.
func (f Flavor) Matches(lib Flavor) bool {
	return f == Any || f == lib
}

// Requirement is the condition under which a flag is defined.
// Zero Since or Until means unbounded; Until is exclusive.
type Requirement struct {
	Since  Version
	Until  Version
	Flavor Flavor
	// Probe lists exported functions whose presence implies the flag.
	// Macro-only flags leave it empty.
	Probe []string
}

// InRange reports whether v satisfies the Since/Until bounds of r.
func (r Requirement) InRange(v Version) bool {
	if !r.Since.IsZero() && !v.AtOrAbove(r.Since) {
		return false
	}
	if !r.Until.IsZero() && v.AtOrAbove(r.Until) {
		return false
	}
	return true
}
