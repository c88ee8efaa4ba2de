/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// This file implements the single entry point through which the WebUI
// runtime delivers events to Go.
//
// # The Problem
//
// webui_interface_bind takes a plain C function pointer. The runtime calls it
// from its own threads, once per UI event, with five size_t/char* arguments.
// It cannot carry a Go closure across the boundary; all it hands back is the
// bind id it assigned.
//
// # The Solution: one libffi closure
//
// A single closure is allocated for the whole process and passed to every
// bind call. Its Go trampoline unpacks the raw arguments into a RawEvent and
// forwards it to the sink installed with SetEventSink, which maps the
// bind id back to a Go handler.
//
//	┌─────────────┐   callback ptr   ┌──────────────┐
//	│   WebUI     │ ───────────────▶ │ ffi.Closure  │
//	│  (C code)   │                  │ (asm thunk)  │
//	└─────────────┘                  └──────┬───────┘
//	                                        │
//	                                        ▼
//	                              ┌───────────────────┐
//	                              │ eventTrampoline   │
//	                              │ (Go function)     │
//	                              └───────┬───────────┘
//	                                      │ RawEvent
//	                                      ▼
//	                              ┌───────────────────┐
//	                              │ EventSink         │
//	                              │ (webui.Bridge)    │
//	                              └───────────────────┘
//
// The closure is never freed.

package cwebui

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// RawEvent holds the trampoline arguments exactly as the runtime passed them.
// Element points into runtime memory that is only valid until the
// EventSink returns.
type RawEvent struct {
	Window      uintptr
	EventType   uintptr
	Element     unsafe.Pointer
	EventNumber uintptr
	BindID      uintptr
}

// EventSink receives every event delivered through the trampoline.
// It runs on a runtime thread, possibly concurrently with itself.
type EventSink func(ev RawEvent)

var eventSink atomic.Pointer[EventSink]

// SetEventSink installs the sink the trampoline forwards to, replacing any
// previous one. Passing nil drops events until a new sink is set.
func SetEventSink(cb EventSink) {
	if cb == nil {
		eventSink.Store(nil)
		return
	}
	eventSink.Store(&cb)
}

// Closure state - initialized once, lives forever.
var (
	eventCallbackPtr uintptr
	closureInit      sync.Once
	eventClosure     *ffi.Closure
	eventClosureCode unsafe.Pointer
	eventCif         ffi.Cif
)

// initEventClosure creates the libffi closure for the event trampoline.
//
//  1. ClosureAlloc: allocate the closure and get its executable address
//  2. PrepCif: describe the C signature
//  3. NewCallback: wrap the Go trampoline
//  4. PrepClosureLoc: wire code address, CIF and trampoline together
func initEventClosure() {
	closureInit.Do(func() {
		eventClosure = ffi.ClosureAlloc(unsafe.Sizeof(ffi.Closure{}), &eventClosureCode)

		// C signature: void handler(size_t window, size_t event_type,
		//     char* element, size_t event_number, size_t bind_id)
		if status := ffi.PrepCif(&eventCif, ffi.DefaultAbi, 5,
			&ffi.TypeVoid,
			typeSize,         // arg 0: window
			typeSize,         // arg 1: event type code
			&ffi.TypePointer, // arg 2: element name
			typeSize,         // arg 3: event number
			typeSize,         // arg 4: bind id
		); status != ffi.OK {
			panic("failed to prepare event callback CIF")
		}

		goCallback := ffi.NewCallback(eventTrampoline)

		if status := ffi.PrepClosureLoc(eventClosure, &eventCif, goCallback, nil, eventClosureCode); status != ffi.OK {
			panic("failed to prepare event closure")
		}

		eventCallbackPtr = uintptr(eventClosureCode)
	})
}

// eventTrampoline is invoked by libffi when the runtime calls the closure.
//
// libffi passes an array of pointers, each pointing at one argument:
//
//	args[0] -> *size_t  window
//	args[1] -> *size_t  event type
//	args[2] -> *char*   element
//	args[3] -> *size_t  event number
//	args[4] -> *size_t  bind id
//
// The C function returns void, so ret is left untouched.
func eventTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	arguments := unsafe.Slice(args, 5)

	ev := RawEvent{
		Window:      *(*uintptr)(arguments[0]),
		EventType:   *(*uintptr)(arguments[1]),
		Element:     *(*unsafe.Pointer)(arguments[2]),
		EventNumber: *(*uintptr)(arguments[3]),
		BindID:      *(*uintptr)(arguments[4]),
	}

	if cb := eventSink.Load(); cb != nil {
		(*cb)(ev)
	}
	return 0
}

// EventCallbackPtr returns the C function pointer to pass to InterfaceBind.
func EventCallbackPtr() uintptr {
	initEventClosure()
	return eventCallbackPtr
}

// Bind binds element on window to the shared trampoline.
func Bind(window uintptr, element string) (uintptr, error) {
	if loadErr != nil {
		return 0, loadErr
	}
	return InterfaceBind(window, element, EventCallbackPtr())
}
