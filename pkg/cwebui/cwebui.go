/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package cwebui provides low-level FFI bindings to the WebUI native library.
//
// Every exported function maps one-to-one onto a webui_* symbol. Window
// handles, event numbers and bind ids cross the boundary as raw size_t
// values; strings cross as NUL-terminated byte buffers. Higher-level,
// Go-idiomatic wrappers live in package webui.
//
// # Loading
//
// The shared library is opened once at package init. Set WEBUI_LIB_PATH to
// point at libwebui-2.so/.dylib/webui-2.dll when it is not installed in a
// default location. Use [LoadError] to check whether loading succeeded.
package cwebui

import "errors"

// EventType codes passed by the native runtime as the second trampoline argument.
const (
	EventDisconnected uintptr = 0
	EventConnected    uintptr = 1
	EventMouseClick   uintptr = 2
	EventNavigation   uintptr = 3
	EventCallback     uintptr = 4
)

var (
	// ErrLibraryNotLoaded is returned by calls made when the native library
	// could not be opened. The underlying cause is available via LoadError.
	ErrLibraryNotLoaded = errors.New("webui native library not loaded; set WEBUI_LIB_PATH")

	// ErrNulInString is returned when a string bound for the native runtime
	// contains a NUL byte and would be silently truncated.
	ErrNulInString = errors.New("string contains NUL byte")
)
