package openssl

import (
	"errors"

	"github.com/golang-fips/openssl-conditional/conditional"
)

// Library is a loaded libcrypto, optionally paired with libssl.
// It is read-only after Open and safe for concurrent use.
type Library struct {
	crypto *sharedLibrary
	ssl    *sharedLibrary

	version conditional.Version
	flavor  conditional.Flavor
	text    string
	fips    bool
}

// Open loads the libcrypto shared library at cryptoFile and, unless sslFile
// is empty, the libssl shared library at sslFile.
//
// Both files are passed to dlopen() verbatim.
func Open(cryptoFile, sslFile string) (*Library, error) {
	crypto, err := dlopen(cryptoFile)
	if err != nil {
		return nil, err
	}
	lib := &Library{crypto: crypto}
	if sslFile != "" {
		if lib.ssl, err = dlopen(sslFile); err != nil {
			crypto.close()
			return nil, err
		}
	}
	if err := lib.load(); err != nil {
		lib.Close()
		return nil, err
	}
	return lib, nil
}

// load retrieves the loaded version and FIPS state.
// Notice that the version could not match the file name
// in case the name of the shared library file differs from the OpenSSL
// version it contains.
func (l *Library) load() error {
	var versionNum func() uint
	var versionText func(int32) string
	switch {
	case l.crypto.register(&versionNum, "OpenSSL_version_num") == nil:
		if err := l.crypto.register(&versionText, "OpenSSL_version"); err != nil {
			return err
		}
	case l.crypto.register(&versionNum, "SSLeay") == nil:
		// OpenSSL 1.0.x.
		if err := l.crypto.register(&versionText, "SSLeay_version"); err != nil {
			return err
		}
	default:
		return errors.New("openssl: can't retrieve OpenSSL version")
	}
	num := uint64(versionNum())
	l.text = versionText(0)
	l.version = parseVersionNumber(num)
	l.flavor = flavorOf(num, l.text)
	if l.flavor == conditional.OpenSSL && l.version.Major != 1 && l.version.Major != 3 {
		return fail("OpenSSL version " + l.version.String() + " check")
	}
	l.fips = l.readFIPS()
	return nil
}

func (l *Library) readFIPS() bool {
	if l.flavor == conditional.OpenSSL && l.version.Major == 3 {
		var enabled func(uintptr) int32
		if l.crypto.register(&enabled, "EVP_default_properties_is_fips_enabled") != nil {
			return false
		}
		return enabled(0) == 1
	}
	var mode func() int32
	if l.crypto.register(&mode, "FIPS_mode") != nil {
		return false
	}
	return mode() == 1
}

// Version returns the library version. It is only meaningful for the
// OpenSSL flavor; LibreSSL reports 2.0.0.
func (l *Library) Version() conditional.Version { return l.version }

// Flavor returns the library family, detected from its version text.
func (l *Library) Flavor() conditional.Flavor { return l.flavor }

// VersionText returns the library version text, e.g. "OpenSSL 3.0.13 30 Jan 2024".
func (l *Library) VersionText() string { return l.text }

// FIPS reports whether the library was in FIPS mode when it was opened.
func (l *Library) FIPS() bool { return l.fips }

// HasSymbol reports whether libcrypto or libssl exports name.
func (l *Library) HasSymbol(name string) bool {
	if _, err := l.crypto.lookup(name); err == nil {
		return true
	}
	if l.ssl != nil {
		if _, err := l.ssl.lookup(name); err == nil {
			return true
		}
	}
	return false
}

// Bind evaluates the conditional table against l.
func (l *Library) Bind() *Bindings {
	return Evaluate(l.version, l.flavor, l.HasSymbol)
}

// Close unloads the libraries. l must not be used afterwards.
func (l *Library) Close() error {
	var err error
	if l.ssl != nil {
		err = l.ssl.close()
	}
	if cerr := l.crypto.close(); err == nil {
		err = cerr
	}
	return err
}
