/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import (
	"runtime"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// FFI function descriptors for the webui_interface_* family. These are the
// entry points meant for language bindings: every value is a scalar or a
// C string, never a webui_event_t struct.
var (
	fnInterfaceBind        ffi.Fun
	fnInterfaceSetResponse ffi.Fun
	fnInterfaceGetWindowID ffi.Fun
	fnInterfaceGetStringAt ffi.Fun
	fnInterfaceGetIntAt    ffi.Fun
	fnInterfaceGetBoolAt   ffi.Fun
	fnInterfaceGetSizeAt   ffi.Fun
)

func registerInterfaceFunctions() error {
	var err error

	// size_t webui_interface_bind(size_t window, const char* element,
	//     void (*func)(size_t, size_t, char*, size_t, size_t))
	fnInterfaceBind, err = lib.Prep("webui_interface_bind", typeSize, typeSize, &ffi.TypePointer, &ffi.TypePointer)
	if err != nil {
		return err
	}

	// void webui_interface_set_response(size_t window, size_t event_number, const char* response)
	fnInterfaceSetResponse, err = lib.Prep("webui_interface_set_response", &ffi.TypeVoid, typeSize, typeSize, &ffi.TypePointer)
	if err != nil {
		return err
	}

	// size_t webui_interface_get_window_id(size_t window)
	fnInterfaceGetWindowID, err = lib.Prep("webui_interface_get_window_id", typeSize, typeSize)
	if err != nil {
		return err
	}

	// const char* webui_interface_get_string_at(size_t window, size_t event_number, size_t index)
	fnInterfaceGetStringAt, err = lib.Prep("webui_interface_get_string_at", &ffi.TypePointer, typeSize, typeSize, typeSize)
	if err != nil {
		return err
	}

	// long long webui_interface_get_int_at(size_t window, size_t event_number, size_t index)
	fnInterfaceGetIntAt, err = lib.Prep("webui_interface_get_int_at", &ffi.TypeSint64, typeSize, typeSize, typeSize)
	if err != nil {
		return err
	}

	// bool webui_interface_get_bool_at(size_t window, size_t event_number, size_t index)
	fnInterfaceGetBoolAt, err = lib.Prep("webui_interface_get_bool_at", &ffi.TypeUint8, typeSize, typeSize, typeSize)
	if err != nil {
		return err
	}

	// size_t webui_interface_get_size_at(size_t window, size_t event_number, size_t index)
	fnInterfaceGetSizeAt, err = lib.Prep("webui_interface_get_size_at", typeSize, typeSize, typeSize, typeSize)
	if err != nil {
		return err
	}

	return nil
}

// InterfaceBind binds element on window to the C callback cb and returns the
// bind id the runtime will pass back as the trampoline's last argument.
// An empty element binds every event of the window.
func InterfaceBind(window uintptr, element string, cb uintptr) (uintptr, error) {
	if loadErr != nil {
		return 0, loadErr
	}
	buf, err := CString(element)
	if err != nil {
		return 0, err
	}
	var ret uintptr
	ptr := bufferPointer(buf)
	fnInterfaceBind.Call(&ret, &window, &ptr, &cb)
	runtime.KeepAlive(buf)
	return ret, nil
}

// InterfaceSetResponse answers the in-flight event eventNumber on window.
func InterfaceSetResponse(window, eventNumber uintptr, response string) error {
	if loadErr != nil {
		return loadErr
	}
	buf, err := CString(response)
	if err != nil {
		return err
	}
	ptr := bufferPointer(buf)
	fnInterfaceSetResponse.Call(nil, &window, &eventNumber, &ptr)
	runtime.KeepAlive(buf)
	return nil
}

// InterfaceGetWindowID returns the runtime's unique id for the window.
func InterfaceGetWindowID(window uintptr) uintptr {
	var ret uintptr
	fnInterfaceGetWindowID.Call(&ret, &window)
	return ret
}

// InterfaceGetStringAt returns a pointer to the index-th argument's bytes.
// The memory belongs to the runtime and is only valid while the event is
// being dispatched. Pair with InterfaceGetSizeAt for the length.
func InterfaceGetStringAt(window, eventNumber, index uintptr) unsafe.Pointer {
	var ret unsafe.Pointer
	fnInterfaceGetStringAt.Call(&ret, &window, &eventNumber, &index)
	return ret
}

// InterfaceGetIntAt returns the index-th argument converted to an integer.
func InterfaceGetIntAt(window, eventNumber, index uintptr) int64 {
	var ret int64
	fnInterfaceGetIntAt.Call(&ret, &window, &eventNumber, &index)
	return ret
}

// InterfaceGetBoolAt returns the index-th argument converted to a boolean.
func InterfaceGetBoolAt(window, eventNumber, index uintptr) bool {
	var ret ffi.Arg
	fnInterfaceGetBoolAt.Call(&ret, &window, &eventNumber, &index)
	return uint8(ret) != 0
}

// InterfaceGetSizeAt returns the byte length of the index-th argument.
func InterfaceGetSizeAt(window, eventNumber, index uintptr) uintptr {
	var ret uintptr
	fnInterfaceGetSizeAt.Call(&ret, &window, &eventNumber, &index)
	return ret
}
