//go:build !(darwin || freebsd || linux || netbsd || windows)

package openssl

import (
	"errors"
	"runtime"
)

var errNoDynamicLoading = errors.New("dynamic loading is not supported on " + runtime.GOOS)

type sharedLibrary struct{}

func dlopen(file string) (*sharedLibrary, error) {
	return nil, &LoadError{File: file, Err: errNoDynamicLoading}
}

func (so *sharedLibrary) lookup(name string) (uintptr, error) {
	return 0, errNoDynamicLoading
}

func (so *sharedLibrary) register(fptr any, name string) error {
	return errNoDynamicLoading
}

func (so *sharedLibrary) close() error {
	return nil
}
