//go:build darwin || linux || freebsd

/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import (
	"github.com/ebitengine/purego"
	"github.com/jupiterrider/ffi"
)

// openLibrary loads the shared library with eager symbol binding so a
// missing symbol surfaces at load time rather than on first call.
func openLibrary(path string) (ffi.Lib, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return ffi.Lib{}, err
	}
	return ffi.Lib{Addr: handle}, nil
}
