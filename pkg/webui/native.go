/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"unsafe"

	"github.com/crrow/webui-go/pkg/cwebui"
)

// Native is the function table of the WebUI runtime as seen by a Bridge.
//
// The production implementation forwards to package cwebui. Tests substitute
// an in-memory runtime. Methods taking strings may fail with ErrNulInString;
// everything else is trusted to the runtime.
type Native interface {
	NewWindow() uintptr
	NewWindowID(id uintptr) uintptr
	GetNewWindowID() uintptr
	Show(window uintptr, content string) (bool, error)
	ShowBrowser(window uintptr, content string, browser uintptr) (bool, error)
	IsShown(window uintptr) bool
	SetSize(window uintptr, width, height uint32)
	SetPosition(window uintptr, x, y uint32)
	SetRootFolder(window uintptr, path string) (bool, error)
	SetIcon(window uintptr, icon, iconType string) error
	SetPort(window, port uintptr) bool
	SetRuntime(window, rt uintptr)
	SendRaw(window uintptr, function string, raw []byte) error
	Close(window uintptr)
	Destroy(window uintptr)
	WindowID(window uintptr) uintptr

	// Bind registers element with the runtime and returns the bind id the
	// trampoline will later be called with.
	Bind(window uintptr, element string) (uintptr, error)

	// StringAt returns runtime-owned memory valid only during dispatch.
	StringAt(window, eventNumber, index uintptr) unsafe.Pointer
	SizeAt(window, eventNumber, index uintptr) uintptr
	IntAt(window, eventNumber, index uintptr) int64
	BoolAt(window, eventNumber, index uintptr) bool
	SetResponse(window, eventNumber uintptr, response string) error

	Wait()
	Exit()
	Clean()
	IsAppRunning() bool
	SetTimeout(seconds uintptr)
}

// ffiNative implements Native on top of the loaded shared library.
type ffiNative struct{}

// NewFFINative returns the Native backed by the WebUI shared library, or the
// library's load error.
func NewFFINative() (Native, error) {
	if err := cwebui.LoadError(); err != nil {
		return nil, err
	}
	return ffiNative{}, nil
}

func (ffiNative) NewWindow() uintptr {
	h, _ := cwebui.NewWindow()
	return h
}

func (ffiNative) NewWindowID(id uintptr) uintptr {
	h, _ := cwebui.NewWindowID(id)
	return h
}

func (ffiNative) GetNewWindowID() uintptr {
	return cwebui.GetNewWindowID()
}

func (ffiNative) Show(window uintptr, content string) (bool, error) {
	return cwebui.Show(window, content)
}

func (ffiNative) ShowBrowser(window uintptr, content string, browser uintptr) (bool, error) {
	return cwebui.ShowBrowser(window, content, browser)
}

func (ffiNative) IsShown(window uintptr) bool {
	return cwebui.IsShown(window)
}

func (ffiNative) SetSize(window uintptr, width, height uint32) {
	cwebui.SetSize(window, width, height)
}

func (ffiNative) SetPosition(window uintptr, x, y uint32) {
	cwebui.SetPosition(window, x, y)
}

func (ffiNative) SetRootFolder(window uintptr, path string) (bool, error) {
	return cwebui.SetRootFolder(window, path)
}

func (ffiNative) SetIcon(window uintptr, icon, iconType string) error {
	return cwebui.SetIcon(window, icon, iconType)
}

func (ffiNative) SetPort(window, port uintptr) bool {
	return cwebui.SetPort(window, port)
}

func (ffiNative) SetRuntime(window, rt uintptr) {
	cwebui.SetRuntime(window, rt)
}

func (ffiNative) SendRaw(window uintptr, function string, raw []byte) error {
	return cwebui.SendRaw(window, function, raw)
}

func (ffiNative) Close(window uintptr) {
	cwebui.Close(window)
}

func (ffiNative) Destroy(window uintptr) {
	cwebui.Destroy(window)
}

func (ffiNative) WindowID(window uintptr) uintptr {
	return cwebui.InterfaceGetWindowID(window)
}

func (ffiNative) Bind(window uintptr, element string) (uintptr, error) {
	return cwebui.Bind(window, element)
}

func (ffiNative) StringAt(window, eventNumber, index uintptr) unsafe.Pointer {
	return cwebui.InterfaceGetStringAt(window, eventNumber, index)
}

func (ffiNative) SizeAt(window, eventNumber, index uintptr) uintptr {
	return cwebui.InterfaceGetSizeAt(window, eventNumber, index)
}

func (ffiNative) IntAt(window, eventNumber, index uintptr) int64 {
	return cwebui.InterfaceGetIntAt(window, eventNumber, index)
}

func (ffiNative) BoolAt(window, eventNumber, index uintptr) bool {
	return cwebui.InterfaceGetBoolAt(window, eventNumber, index)
}

func (ffiNative) SetResponse(window, eventNumber uintptr, response string) error {
	return cwebui.InterfaceSetResponse(window, eventNumber, response)
}

func (ffiNative) Wait() {
	cwebui.Wait()
}

func (ffiNative) Exit() {
	cwebui.Exit()
}

func (ffiNative) Clean() {
	cwebui.Clean()
}

func (ffiNative) IsAppRunning() bool {
	return cwebui.IsAppRunning()
}

func (ffiNative) SetTimeout(seconds uintptr) {
	cwebui.SetTimeout(seconds)
}
