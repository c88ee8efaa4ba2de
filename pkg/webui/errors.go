/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"errors"
	"fmt"

	"github.com/crrow/webui-go/pkg/cwebui"
)

var (
	// ErrNulInString is returned when a string passed toward the runtime
	// contains a NUL byte. Nothing is sent in that case.
	ErrNulInString = cwebui.ErrNulInString

	// ErrInvalidUTF8 is wrapped by DecodeError when text received from the
	// runtime is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrEventExpired is returned by Event accessors used after the handler
	// that received the event has returned.
	ErrEventExpired = errors.New("event used after its handler returned")

	// ErrResponseAlreadySet is returned by a second SetResponse on one event.
	ErrResponseAlreadySet = errors.New("response already set for this event")

	// ErrArgumentIndex is returned for a negative argument index.
	ErrArgumentIndex = errors.New("argument index out of range")

	// ErrNilHandler is returned when binding a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrShowFailed is returned when the runtime could not display a window.
	ErrShowFailed = errors.New("window could not be shown")

	// ErrRootFolder is returned when the runtime rejects a root folder.
	ErrRootFolder = errors.New("root folder rejected")

	// ErrPortUnavailable is returned when the runtime rejects a port.
	ErrPortUnavailable = errors.New("port rejected")

	// ErrWindowID is returned when the runtime refuses a caller-chosen window id.
	ErrWindowID = errors.New("window id rejected")

	// ErrBridgeInstalled is returned when a bridge tries to take the
	// trampoline sink while another bridge holds it.
	ErrBridgeInstalled = errors.New("another bridge already receives runtime events")
)

// DecodeError reports text from the runtime that is not valid UTF-8.
type DecodeError struct {
	// What names the value, e.g. "element name" or "argument 2".
	What string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, ErrInvalidUTF8)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidUTF8 }

// UnknownEventTypeError reports an event type code this package does not
// know. Newer runtimes may add codes; the event is still delivered with
// type EventUnknown.
type UnknownEventTypeError struct {
	Code uintptr
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("unknown event type code %d", e.Code)
}

// HandlerPanicError wraps a panic recovered from a handler. Panics are never
// allowed to unwind into the runtime's native frames.
type HandlerPanicError struct {
	BindID BindID
	Value  any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("handler for bind id %d panicked: %v", e.BindID, e.Value)
}
