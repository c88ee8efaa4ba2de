/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"
	"unsafe"

	"github.com/crrow/webui-go/pkg/cwebui"
)

// EventType is the kind of UI event delivered to a handler.
type EventType int

const (
	EventDisconnected EventType = iota
	EventConnected
	EventMouseClick
	EventNavigation
	EventCallback

	// EventUnknown marks a code this package does not recognize. The raw
	// code is kept in Event.TypeCode.
	EventUnknown EventType = -1
)

func (t EventType) String() string {
	switch t {
	case EventDisconnected:
		return "disconnected"
	case EventConnected:
		return "connected"
	case EventMouseClick:
		return "mouse_click"
	case EventNavigation:
		return "navigation"
	case EventCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// ParseEventType decodes a runtime event type code. Unrecognized codes yield
// EventUnknown and an *UnknownEventTypeError.
func ParseEventType(code uintptr) (EventType, error) {
	switch code {
	case cwebui.EventDisconnected:
		return EventDisconnected, nil
	case cwebui.EventConnected:
		return EventConnected, nil
	case cwebui.EventMouseClick:
		return EventMouseClick, nil
	case cwebui.EventNavigation:
		return EventNavigation, nil
	case cwebui.EventCallback:
		return EventCallback, nil
	}
	return EventUnknown, &UnknownEventTypeError{Code: code}
}

// Event is the context of one dispatched UI event.
//
// An Event is only valid while the handler it was passed to is running. The
// runtime may free the event's argument buffers as soon as the handler
// returns, so every accessor fails with ErrEventExpired afterwards. Copy out
// whatever you need before returning. An accessor still running on another
// goroutine when the handler returns holds the event open until it finishes,
// so the runtime never frees a buffer that is being read.
type Event struct {
	// Window is the window the event originated from.
	Window *Window
	// Type is the decoded event kind.
	Type EventType
	// TypeCode is the raw code the runtime sent.
	TypeCode uintptr
	// Element is the bound element name, empty for window-wide bindings.
	Element string
	// Number identifies the event to the runtime for argument and response calls.
	Number uintptr
	// BindID is the binding that matched.
	BindID BindID

	native Native

	// mu is read-held by accessors across the expiry check and the native
	// call; release takes it exclusively.
	mu        sync.RWMutex
	done      bool
	responded atomic.Bool
}

// release invalidates the event once its handler has returned. It waits for
// accessors already inside the runtime.
func (e *Event) release() {
	e.mu.Lock()
	e.done = true
	e.mu.Unlock()
}

// argIndex validates index. Callers hold e.mu for reading.
func (e *Event) argIndex(index int) (uintptr, error) {
	if e.done {
		return 0, ErrEventExpired
	}
	if index < 0 {
		return 0, ErrArgumentIndex
	}
	return uintptr(index), nil
}

func (e *Event) window() uintptr {
	return uintptr(e.Window.handle)
}

// StringAt returns the index-th argument as text.
//
// The runtime's buffer is copied, so the returned string stays valid after
// the handler returns. Bytes that are not valid UTF-8 yield a *DecodeError.
// A missing argument reads as the empty string.
func (e *Event) StringAt(index int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, err := e.argIndex(index)
	if err != nil {
		return "", err
	}
	p := e.native.StringAt(e.window(), e.Number, i)
	if p == nil {
		return "", nil
	}
	n := e.native.SizeAt(e.window(), e.Number, i)
	view := unsafe.Slice((*byte)(p), n)
	if !utf8.Valid(view) {
		return "", &DecodeError{What: fmt.Sprintf("argument %d", index)}
	}
	return string(view), nil
}

// SizeAt returns the byte length of the index-th argument.
func (e *Event) SizeAt(index int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, err := e.argIndex(index)
	if err != nil {
		return 0, err
	}
	return int(e.native.SizeAt(e.window(), e.Number, i)), nil
}

// IntAt returns the index-th argument as an integer.
func (e *Event) IntAt(index int) (int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, err := e.argIndex(index)
	if err != nil {
		return 0, err
	}
	return e.native.IntAt(e.window(), e.Number, i), nil
}

// BoolAt returns the index-th argument as a boolean.
func (e *Event) BoolAt(index int) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, err := e.argIndex(index)
	if err != nil {
		return false, err
	}
	return e.native.BoolAt(e.window(), e.Number, i), nil
}

// SetResponse answers the JavaScript call that raised this event. It is
// meaningful for EventCallback events; at most one response may be set.
// Without a call the runtime answers with an empty string.
func (e *Event) SetResponse(text string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.done {
		return ErrEventExpired
	}
	if err := cwebui.CheckString(text); err != nil {
		return err
	}
	if !e.responded.CompareAndSwap(false, true) {
		return ErrResponseAlreadySet
	}
	if err := e.native.SetResponse(e.window(), e.Number, text); err != nil {
		e.responded.Store(false)
		return err
	}
	return nil
}

// Responded reports whether SetResponse succeeded for this event.
func (e *Event) Responded() bool {
	return e.responded.Load()
}
