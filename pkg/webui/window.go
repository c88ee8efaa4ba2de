/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import "github.com/crrow/webui-go/pkg/cwebui"

// Window is a native window owned by the WebUI runtime.
//
// A Window is a thin value around its handle: several *Window values may
// refer to the same native window, and copying one is harmless.
type Window struct {
	handle Handle
	bridge *Bridge
}

// Handle returns the runtime's handle for the window.
func (w *Window) Handle() Handle {
	return w.handle
}

// Bridge returns the bridge the window dispatches through.
func (w *Window) Bridge() *Bridge {
	return w.bridge
}

func (w *Window) native() Native {
	return w.bridge.native
}

// Show displays content, which may be HTML, a file name or a URL.
func (w *Window) Show(content string) error {
	if err := cwebui.CheckString(content); err != nil {
		return err
	}
	ok, err := w.native().Show(uintptr(w.handle), content)
	if err != nil {
		return err
	}
	if !ok {
		return ErrShowFailed
	}
	return nil
}

// ShowBrowser is Show with an explicit browser.
func (w *Window) ShowBrowser(content string, browser Browser) error {
	if err := cwebui.CheckString(content); err != nil {
		return err
	}
	ok, err := w.native().ShowBrowser(uintptr(w.handle), content, uintptr(browser))
	if err != nil {
		return err
	}
	if !ok {
		return ErrShowFailed
	}
	return nil
}

// IsShown reports whether the window is still displayed.
func (w *Window) IsShown() bool {
	return w.native().IsShown(uintptr(w.handle))
}

// SetSize sets the window size in pixels.
func (w *Window) SetSize(width, height uint32) {
	w.native().SetSize(uintptr(w.handle), width, height)
}

// SetPosition moves the window to screen coordinates x, y.
func (w *Window) SetPosition(x, y uint32) {
	w.native().SetPosition(uintptr(w.handle), x, y)
}

// SetRootFolder sets the directory the window serves files from.
func (w *Window) SetRootFolder(path string) error {
	if err := cwebui.CheckString(path); err != nil {
		return err
	}
	ok, err := w.native().SetRootFolder(uintptr(w.handle), path)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRootFolder
	}
	return nil
}

// SetIcon sets the window icon from inline content (e.g. SVG markup) and its
// MIME type.
func (w *Window) SetIcon(icon, iconType string) error {
	if err := cwebui.CheckString(icon); err != nil {
		return err
	}
	if err := cwebui.CheckString(iconType); err != nil {
		return err
	}
	return w.native().SetIcon(uintptr(w.handle), icon, iconType)
}

// SetPort fixes the port the window's web server listens on.
func (w *Window) SetPort(port uint16) error {
	if !w.native().SetPort(uintptr(w.handle), uintptr(port)) {
		return ErrPortUnavailable
	}
	return nil
}

// SetRuntime selects the JavaScript runtime for .js and .ts files the
// window serves.
func (w *Window) SetRuntime(rt Runtime) {
	w.native().SetRuntime(uintptr(w.handle), uintptr(rt))
}

// SendRaw sends raw bytes to the JavaScript function named function.
func (w *Window) SendRaw(function string, raw []byte) error {
	if err := cwebui.CheckString(function); err != nil {
		return err
	}
	return w.native().SendRaw(uintptr(w.handle), function, raw)
}

// UniqueID returns the runtime's process-unique id for the window.
func (w *Window) UniqueID() uintptr {
	return w.native().WindowID(uintptr(w.handle))
}

// Bind registers handler for element on this window.
func (w *Window) Bind(element string, handler Handler) (BindID, error) {
	return w.bridge.Bind(w.handle, element, handler)
}

// BindFunc registers fn for element on this window.
func (w *Window) BindFunc(element string, fn func(e *Event)) (BindID, error) {
	if fn == nil {
		return 0, ErrNilHandler
	}
	return w.Bind(element, HandlerFunc(fn))
}

// Close closes the window and removes all of its handlers. The handle may
// be shown again but must be re-bound.
func (w *Window) Close() {
	w.native().Close(uintptr(w.handle))
	w.bridge.UnbindWindow(w.handle)
}

// Destroy closes the window, frees its native resources and removes all of
// its handlers.
func (w *Window) Destroy() {
	w.native().Destroy(uintptr(w.handle))
	w.bridge.UnbindWindow(w.handle)
}
