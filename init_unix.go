//go:build darwin || freebsd || linux || netbsd

package openssl

import "github.com/ebitengine/purego"

type sharedLibrary struct {
	file   string
	handle uintptr
}

func dlopen(file string) (*sharedLibrary, error) {
	h, err := purego.Dlopen(file, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return nil, &LoadError{File: file, Err: err}
	}
	return &sharedLibrary{file: file, handle: h}, nil
}

func (so *sharedLibrary) lookup(name string) (uintptr, error) {
	return purego.Dlsym(so.handle, name)
}

// register binds the Go function pointed to by fptr to the exported C function name.
func (so *sharedLibrary) register(fptr any, name string) error {
	addr, err := so.lookup(name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

func (so *sharedLibrary) close() error {
	if err := purego.Dlclose(so.handle); err != nil {
		return &LoadError{File: so.file, Err: err}
	}
	return nil
}
