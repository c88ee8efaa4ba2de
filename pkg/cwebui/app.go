/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import "github.com/jupiterrider/ffi"

// FFI function descriptors for process-wide lifecycle calls.
var (
	fnWait                  ffi.Fun
	fnExit                  ffi.Fun
	fnClean                 ffi.Fun
	fnSetTimeout            ffi.Fun
	fnInterfaceIsAppRunning ffi.Fun
)

func registerAppFunctions() error {
	var err error

	// void webui_wait(void)
	fnWait, err = lib.Prep("webui_wait", &ffi.TypeVoid)
	if err != nil {
		return err
	}

	// void webui_exit(void)
	fnExit, err = lib.Prep("webui_exit", &ffi.TypeVoid)
	if err != nil {
		return err
	}

	// void webui_clean(void)
	fnClean, err = lib.Prep("webui_clean", &ffi.TypeVoid)
	if err != nil {
		return err
	}

	// void webui_set_timeout(size_t second)
	fnSetTimeout, err = lib.Prep("webui_set_timeout", &ffi.TypeVoid, typeSize)
	if err != nil {
		return err
	}

	// bool webui_interface_is_app_running(void)
	fnInterfaceIsAppRunning, err = lib.Prep("webui_interface_is_app_running", &ffi.TypeUint8)
	if err != nil {
		return err
	}

	return nil
}

// Wait blocks until every window is closed or Exit is called.
// Events keep being dispatched on the runtime's own threads meanwhile.
func Wait() {
	fnWait.Call(nil)
}

// Exit closes all windows and unblocks Wait.
func Exit() {
	fnExit.Call(nil)
}

// Clean frees all runtime resources. Call it after Wait returns.
func Clean() {
	fnClean.Call(nil)
}

// SetTimeout sets how many seconds Wait waits for the first window to
// connect. Zero means wait forever.
func SetTimeout(seconds uintptr) {
	fnSetTimeout.Call(nil, &seconds)
}

// IsAppRunning reports whether the runtime's loop is still active.
func IsAppRunning() bool {
	var ret ffi.Arg
	fnInterfaceIsAppRunning.Call(&ret)
	return uint8(ret) != 0
}
