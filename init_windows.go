//go:build windows

package openssl

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

type sharedLibrary struct {
	file   string
	handle windows.Handle
}

func dlopen(file string) (*sharedLibrary, error) {
	// As Windows generally does not ship with a system OpenSSL library,
	// use the default library search order so that we preferentially
	// load the DLL bundled with the application.
	h, err := windows.LoadLibrary(file)
	if err != nil {
		return nil, &LoadError{File: file, Err: err}
	}
	return &sharedLibrary{file: file, handle: h}, nil
}

func (so *sharedLibrary) lookup(name string) (uintptr, error) {
	return windows.GetProcAddress(so.handle, name)
}

func (so *sharedLibrary) register(fptr any, name string) error {
	addr, err := so.lookup(name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

func (so *sharedLibrary) close() error {
	return windows.FreeLibrary(so.handle)
}
