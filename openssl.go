// Package openssl loads an OpenSSL shared library and decides which
// conditional binding symbols it provides.
//
// The decision is driven by the static table in package conditional: each
// flag is checked against the library version, its flavor (OpenSSL,
// LibreSSL or BoringSSL) and the exported functions the flag probes for.
package openssl

import (
	"errors"
	"strings"
	"sync"

	"github.com/golang-fips/openssl-conditional/conditional"
)

var (
	initOnce sync.Once
	initErr  error

	// defaultLib and defaultBindings are only populated if Init succeeded.
	defaultLib      *Library
	defaultBindings *Bindings
)

// LoadError is returned when a shared library cannot be loaded.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return "openssl: can't load " + e.File + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type fail string

func (e fail) Error() string { return "openssl: " + string(e) + " failed" }

// CheckVersion checks if the OpenSSL library at file can be loaded
// and if the FIPS mode is enabled.
// This function can be called before Init.
func CheckVersion(file string) (exists, fips bool) {
	lib, err := Open(file, "")
	if err != nil {
		return false, false
	}
	defer lib.Close()
	return true, lib.FIPS()
}

// Init loads libcrypto from the shared library at file, and libssl from its
// sibling (see SSLFile) when one can be loaded, then evaluates the
// conditional table against them.
//
// Only the first call to Init is effective.
// Subsequent calls will return the same error result as the one from the first call.
//
// The file is passed to dlopen() verbatim. For example, `file=libcrypto.so.3`
// makes Init look for the shared library libcrypto.so.3 and libssl.so.3.
func Init(file string) error {
	initOnce.Do(func() {
		lib, err := Open(file, SSLFile(file))
		var le *LoadError
		if errors.As(err, &le) && le.File != file {
			// libssl is optional; flags probing it will be disabled.
			lib, err = Open(file, "")
		}
		if err != nil {
			initErr = err
			return
		}
		defaultLib = lib
		defaultBindings = lib.Bind()
	})
	return initErr
}

func mustInit() {
	if defaultLib == nil {
		panic("openssl: Init has not been called successfully")
	}
}

// VersionText returns the version text of the OpenSSL currently loaded.
func VersionText() string {
	mustInit()
	return defaultLib.VersionText()
}

// Conditional returns the bindings evaluated by Init.
// It panics if Init has not been called successfully.
func Conditional() *Bindings {
	mustInit()
	return defaultBindings
}

// SSLFile returns the libssl file name matching a libcrypto file name,
// or "" when cryptoFile does not follow a known naming scheme.
//
//	libcrypto.so.3        -> libssl.so.3
//	libcrypto-3-x64.dll   -> libssl-3-x64.dll
//	libeay32.dll          -> ssleay32.dll
func SSLFile(cryptoFile string) string {
	i := strings.LastIndexAny(cryptoFile, `/\`)
	dir, base := cryptoFile[:i+1], cryptoFile[i+1:]
	switch {
	case strings.HasPrefix(base, "libcrypto"):
		return dir + "libssl" + strings.TrimPrefix(base, "libcrypto")
	case strings.HasPrefix(strings.ToLower(base), "libeay"):
		return dir + "ssleay" + base[len("libeay"):]
	}
	return ""
}

// parseVersionNumber decodes OPENSSL_VERSION_NUMBER.
// OpenSSL 3 uses 0xMNN00PP0, older releases use 0xMNNFFPPS.
func parseVersionNumber(n uint64) conditional.Version {
	n &= 0xffffffff
	v := conditional.Version{
		Major: uint(n >> 28),
		Minor: uint(n>>20) & 0xff,
	}
	if v.Major >= 3 {
		v.Patch = uint(n>>4) & 0xff
	} else {
		v.Patch = uint(n>>12) & 0xff
	}
	return v
}

// libreSSLVersionNumber is the fixed OPENSSL_VERSION_NUMBER LibreSSL reports.
const libreSSLVersionNumber = 0x20000000

func flavorOf(num uint64, text string) conditional.Flavor {
	switch {
	case strings.HasPrefix(text, "LibreSSL"), num&0xffffffff == libreSSLVersionNumber:
		return conditional.LibreSSL
	case strings.HasPrefix(text, "BoringSSL"):
		return conditional.BoringSSL
	}
	return conditional.OpenSSL
}
