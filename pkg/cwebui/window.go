/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import (
	"runtime"

	"github.com/jupiterrider/ffi"
)

// FFI function descriptors for window operations.
var (
	fnNewWindow      ffi.Fun
	fnNewWindowID    ffi.Fun
	fnGetNewWindowID ffi.Fun
	fnShow           ffi.Fun
	fnShowBrowser    ffi.Fun
	fnIsShown        ffi.Fun
	fnSetSize        ffi.Fun
	fnSetPosition    ffi.Fun
	fnSetRootFolder  ffi.Fun
	fnSetIcon        ffi.Fun
	fnSetPort        ffi.Fun
	fnSetRuntime     ffi.Fun
	fnSendRaw        ffi.Fun
	fnClose          ffi.Fun
	fnDestroy        ffi.Fun
)

func registerWindowFunctions() error {
	var err error

	// size_t webui_new_window(void)
	fnNewWindow, err = lib.Prep("webui_new_window", typeSize)
	if err != nil {
		return err
	}

	// size_t webui_new_window_id(size_t window_number)
	fnNewWindowID, err = lib.Prep("webui_new_window_id", typeSize, typeSize)
	if err != nil {
		return err
	}

	// size_t webui_get_new_window_id(void)
	fnGetNewWindowID, err = lib.Prep("webui_get_new_window_id", typeSize)
	if err != nil {
		return err
	}

	// bool webui_show(size_t window, const char* content)
	fnShow, err = lib.Prep("webui_show", &ffi.TypeUint8, typeSize, &ffi.TypePointer)
	if err != nil {
		return err
	}

	// bool webui_show_browser(size_t window, const char* content, size_t browser)
	fnShowBrowser, err = lib.Prep("webui_show_browser", &ffi.TypeUint8, typeSize, &ffi.TypePointer, typeSize)
	if err != nil {
		return err
	}

	// bool webui_is_shown(size_t window)
	fnIsShown, err = lib.Prep("webui_is_shown", &ffi.TypeUint8, typeSize)
	if err != nil {
		return err
	}

	// void webui_set_size(size_t window, unsigned int width, unsigned int height)
	fnSetSize, err = lib.Prep("webui_set_size", &ffi.TypeVoid, typeSize, &ffi.TypeUint32, &ffi.TypeUint32)
	if err != nil {
		return err
	}

	// void webui_set_position(size_t window, unsigned int x, unsigned int y)
	fnSetPosition, err = lib.Prep("webui_set_position", &ffi.TypeVoid, typeSize, &ffi.TypeUint32, &ffi.TypeUint32)
	if err != nil {
		return err
	}

	// bool webui_set_root_folder(size_t window, const char* path)
	fnSetRootFolder, err = lib.Prep("webui_set_root_folder", &ffi.TypeUint8, typeSize, &ffi.TypePointer)
	if err != nil {
		return err
	}

	// void webui_set_icon(size_t window, const char* icon, const char* icon_type)
	fnSetIcon, err = lib.Prep("webui_set_icon", &ffi.TypeVoid, typeSize, &ffi.TypePointer, &ffi.TypePointer)
	if err != nil {
		return err
	}

	// bool webui_set_port(size_t window, size_t port)
	fnSetPort, err = lib.Prep("webui_set_port", &ffi.TypeUint8, typeSize, typeSize)
	if err != nil {
		return err
	}

	// void webui_set_runtime(size_t window, size_t runtime)
	fnSetRuntime, err = lib.Prep("webui_set_runtime", &ffi.TypeVoid, typeSize, typeSize)
	if err != nil {
		return err
	}

	// void webui_send_raw(size_t window, const char* function, const void* raw, size_t size)
	fnSendRaw, err = lib.Prep("webui_send_raw", &ffi.TypeVoid, typeSize, &ffi.TypePointer, &ffi.TypePointer, typeSize)
	if err != nil {
		return err
	}

	// void webui_close(size_t window)
	fnClose, err = lib.Prep("webui_close", &ffi.TypeVoid, typeSize)
	if err != nil {
		return err
	}

	// void webui_destroy(size_t window)
	fnDestroy, err = lib.Prep("webui_destroy", &ffi.TypeVoid, typeSize)
	if err != nil {
		return err
	}

	return nil
}

// NewWindow asks the runtime for a new window and returns its handle.
func NewWindow() (uintptr, error) {
	if loadErr != nil {
		return 0, loadErr
	}
	var ret uintptr
	fnNewWindow.Call(&ret)
	return ret, nil
}

// NewWindowID creates a window under a caller-chosen number.
// The runtime returns the number on success and 0 on failure.
func NewWindowID(id uintptr) (uintptr, error) {
	if loadErr != nil {
		return 0, loadErr
	}
	var ret uintptr
	fnNewWindowID.Call(&ret, &id)
	return ret, nil
}

// GetNewWindowID returns a window number that is free for NewWindowID.
func GetNewWindowID() uintptr {
	var ret uintptr
	fnGetNewWindowID.Call(&ret)
	return ret
}

// Show hands content (HTML, a file name or a URL) to the window.
func Show(window uintptr, content string) (bool, error) {
	if loadErr != nil {
		return false, loadErr
	}
	buf, err := CString(content)
	if err != nil {
		return false, err
	}
	var ret ffi.Arg
	ptr := bufferPointer(buf)
	fnShow.Call(&ret, &window, &ptr)
	runtime.KeepAlive(buf)
	return uint8(ret) != 0, nil
}

// ShowBrowser is Show with an explicit browser selection.
func ShowBrowser(window uintptr, content string, browser uintptr) (bool, error) {
	if loadErr != nil {
		return false, loadErr
	}
	buf, err := CString(content)
	if err != nil {
		return false, err
	}
	var ret ffi.Arg
	ptr := bufferPointer(buf)
	fnShowBrowser.Call(&ret, &window, &ptr, &browser)
	runtime.KeepAlive(buf)
	return uint8(ret) != 0, nil
}

// IsShown reports whether the window is still displayed.
func IsShown(window uintptr) bool {
	var ret ffi.Arg
	fnIsShown.Call(&ret, &window)
	return uint8(ret) != 0
}

// SetSize sets the window size in pixels.
func SetSize(window uintptr, width, height uint32) {
	fnSetSize.Call(nil, &window, &width, &height)
}

// SetPosition moves the window to screen coordinates x, y.
func SetPosition(window uintptr, x, y uint32) {
	fnSetPosition.Call(nil, &window, &x, &y)
}

// SetRootFolder sets the directory the window serves files from.
func SetRootFolder(window uintptr, path string) (bool, error) {
	if loadErr != nil {
		return false, loadErr
	}
	buf, err := CString(path)
	if err != nil {
		return false, err
	}
	var ret ffi.Arg
	ptr := bufferPointer(buf)
	fnSetRootFolder.Call(&ret, &window, &ptr)
	runtime.KeepAlive(buf)
	return uint8(ret) != 0, nil
}

// SetIcon sets the window icon from inline content and its MIME type.
func SetIcon(window uintptr, icon, iconType string) error {
	if loadErr != nil {
		return loadErr
	}
	iconBuf, err := CString(icon)
	if err != nil {
		return err
	}
	typeBuf, err := CString(iconType)
	if err != nil {
		return err
	}
	iconPtr := bufferPointer(iconBuf)
	typePtr := bufferPointer(typeBuf)
	fnSetIcon.Call(nil, &window, &iconPtr, &typePtr)
	runtime.KeepAlive(iconBuf)
	runtime.KeepAlive(typeBuf)
	return nil
}

// SetPort fixes the port of the window's web server. It reports false
// when the port is not available.
func SetPort(window, port uintptr) bool {
	var ret ffi.Arg
	fnSetPort.Call(&ret, &window, &port)
	return uint8(ret) != 0
}

// SetRuntime selects the JavaScript runtime for .js and .ts files the
// window serves.
func SetRuntime(window, rt uintptr) {
	fnSetRuntime.Call(nil, &window, &rt)
}

// SendRaw delivers raw bytes to the named JavaScript function in the window.
func SendRaw(window uintptr, function string, raw []byte) error {
	if loadErr != nil {
		return loadErr
	}
	fnBuf, err := CString(function)
	if err != nil {
		return err
	}
	fnPtr := bufferPointer(fnBuf)
	rawPtr := bufferPointer(raw)
	size := uintptr(len(raw))
	fnSendRaw.Call(nil, &window, &fnPtr, &rawPtr, &size)
	runtime.KeepAlive(fnBuf)
	runtime.KeepAlive(raw)
	return nil
}

// Close closes the window; the handle stays valid and can be shown again.
func Close(window uintptr) {
	fnClose.Call(nil, &window)
}

// Destroy closes the window and frees its native resources.
func Destroy(window uintptr) {
	fnDestroy.Call(nil, &window)
}
