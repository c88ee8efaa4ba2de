/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// Library state, resolved once in init.
var (
	lib     ffi.Lib
	libPath string
	loadErr error
)

// typeSize describes C size_t, which WebUI uses for every handle, event
// number, bind id and argument index.
var typeSize = sizeType()

func sizeType() *ffi.Type {
	if unsafe.Sizeof(uintptr(0)) == 4 {
		return &ffi.TypeUint32
	}
	return &ffi.TypeUint64
}

func init() {
	libPath = libraryPath()

	l, err := openLibrary(libPath)
	if err != nil {
		loadErr = fmt.Errorf("%w: open %s: %w", ErrLibraryNotLoaded, libPath, err)
		return
	}
	lib = l

	if err := registerFunctions(); err != nil {
		loadErr = fmt.Errorf("%w: %w", ErrLibraryNotLoaded, err)
	}
}

// LoadError returns the error encountered while loading the native library,
// or nil if every symbol was resolved.
func LoadError() error {
	return loadErr
}

// LibraryPath returns the path the loader tried to open.
func LibraryPath() string {
	return libPath
}

// libraryName returns the platform file name of the WebUI shared library.
func libraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libwebui-2.dylib"
	case "windows":
		return "webui-2.dll"
	default:
		return "libwebui-2.so"
	}
}

// libraryPath resolves the library location. WEBUI_LIB_PATH wins; otherwise
// the working directory and the executable's directory are searched before
// falling back to the bare name for the system loader.
func libraryPath() string {
	if path := os.Getenv("WEBUI_LIB_PATH"); path != "" {
		return path
	}

	name := libraryName()
	searchPaths := []string{
		name,
		filepath.Join("lib", name),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, name),
			filepath.Join(execDir, "..", "lib", name),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return name
}

// registerFunctions prepares all FFI function descriptors.
//
// lib.Prep looks the symbol up in the loaded library and builds the CIF for
// the given return and argument types. The C to ffi type mapping used here:
//
//	C type          Go type           ffi.Type
//	-------         -------           --------
//	size_t          uintptr           typeSize
//	unsigned int    uint32            TypeUint32
//	long long       int64             TypeSint64
//	bool            ffi.Arg (uint8)   TypeUint8
//	const char*     unsafe.Pointer    TypePointer
//	void            (no return)       TypeVoid
func registerFunctions() error {
	if err := registerWindowFunctions(); err != nil {
		return err
	}
	if err := registerInterfaceFunctions(); err != nil {
		return err
	}
	return registerAppFunctions()
}
