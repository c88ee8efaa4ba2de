//go:build windows

/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import "github.com/jupiterrider/ffi"

// openLibrary loads the DLL through the ffi loader.
func openLibrary(path string) (ffi.Lib, error) {
	return ffi.Load(path)
}
