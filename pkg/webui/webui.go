/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package webui provides a high-level, Go-idiomatic API for the WebUI
// runtime.
//
// This package wraps the low-level cwebui bindings with:
//   - closure-based event handlers instead of a raw C callback
//   - a typed *Event with lifetime-checked argument accessors
//   - Go-style error handling for every value crossing the boundary
//   - structured logging and prometheus metrics for dispatch
//
// # Quick Start
//
//	win, _ := webui.NewWindow()
//
//	win.BindFunc("add", func(e *webui.Event) {
//	    x, _ := e.StringAt(0)
//	    y, _ := e.StringAt(1)
//	    _ = e.SetResponse(x + y)
//	})
//
//	win.Show("<html><script src=\"webui.js\"></script> Hello </html>")
//	webui.Wait()
//	webui.Clean()
//
// # Threads
//
// Wait parks the calling goroutine until the runtime's loop ends. Events are
// delivered on the runtime's own threads and may run concurrently with each
// other and with code binding new elements.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│  Your Application                   │
//	├─────────────────────────────────────┤
//	│  webui (Bridge, Window, Event)      │  <- This package
//	├─────────────────────────────────────┤
//	│  cwebui (low-level FFI bindings)    │
//	├─────────────────────────────────────┤
//	│  libffi (C calling convention)      │
//	├─────────────────────────────────────┤
//	│  WebUI (native runtime)             │
//	└─────────────────────────────────────┘
package webui

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// defaultMetrics registers once so a Default retried after a load failure
// does not register the collectors twice.
var defaultMetrics = sync.OnceValue(func() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
})

// Default returns the bridge that receives trampoline events. A bridge
// already installed by NewFFIBridge or Install is adopted as is; otherwise
// one is created over the shared library with its metrics registered on the
// prometheus default registerer. A load failure is returned and the next
// call tries again.
func Default() (*Bridge, error) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if installed != nil {
		return installed, nil
	}
	native, err := NewFFINative()
	if err != nil {
		return nil, err
	}
	b := NewBridge(native, WithMetrics(defaultMetrics()))
	b.installLocked()
	return b, nil
}

// NewWindow creates a window on the default bridge.
func NewWindow() (*Window, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.NewWindow(), nil
}

// NewWindowWithID creates a window with a caller-chosen handle on the
// default bridge.
func NewWindowWithID(id Handle) (*Window, error) {
	b, err := Default()
	if err != nil {
		return nil, err
	}
	return b.NewWindowWithID(id)
}

// NewWindowID returns a handle that is free for NewWindowWithID.
func NewWindowID() (Handle, error) {
	b, err := Default()
	if err != nil {
		return 0, err
	}
	return b.NewWindowID(), nil
}

// Wait blocks until every window is closed or Exit is called.
func Wait() error {
	b, err := Default()
	if err != nil {
		return err
	}
	b.Wait()
	return nil
}

// WaitContext blocks like Wait and exits the runtime when ctx is done.
func WaitContext(ctx context.Context) error {
	b, err := Default()
	if err != nil {
		return err
	}
	return b.WaitContext(ctx)
}

// Exit closes all windows and unblocks Wait.
func Exit() error {
	b, err := Default()
	if err != nil {
		return err
	}
	b.Exit()
	return nil
}

// Clean frees runtime resources after Wait returns.
func Clean() error {
	b, err := Default()
	if err != nil {
		return err
	}
	b.Clean()
	return nil
}

// IsAppRunning reports whether the runtime's loop is active. It is false
// when the library is not loaded.
func IsAppRunning() bool {
	b, err := Default()
	if err != nil {
		return false
	}
	return b.IsAppRunning()
}

// SetTimeout sets how long Wait waits for the first window to connect.
func SetTimeout(d time.Duration) error {
	b, err := Default()
	if err != nil {
		return err
	}
	b.SetTimeout(d)
	return nil
}
