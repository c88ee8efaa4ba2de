/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/crrow/webui-go/pkg/cwebui"
	"go.uber.org/zap"
)

// Bridge connects Go handlers to a WebUI runtime.
//
// It owns the table that maps runtime bind ids to handlers and turns raw
// trampoline calls into *Event values. All methods are safe for concurrent
// use; Dispatch in particular is called from runtime threads while other
// goroutines bind new elements.
type Bridge struct {
	native   Native
	registry *registry
	logger   *zap.Logger
	metrics  *Metrics
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics sets the collectors the bridge reports to.
func WithMetrics(m *Metrics) Option {
	return func(b *Bridge) {
		if m != nil {
			b.metrics = m
		}
	}
}

// NewBridge creates a Bridge over native. Events reach it only through
// Dispatch until Install hands it the shared-library trampoline.
func NewBridge(native Native, opts ...Option) *Bridge {
	b := &Bridge{
		native:   native,
		registry: newRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.metrics == nil {
		b.metrics = NewMetrics(nil)
	}
	return b
}

// The shared library has one trampoline per process, so at most one bridge
// receives its events. installed is that bridge.
var (
	sinkMu    sync.Mutex
	installed *Bridge
)

// NewFFIBridge creates a Bridge over the WebUI shared library and installs
// it as the trampoline's event sink. It fails with ErrBridgeInstalled when
// another bridge already holds the sink, including the one behind Default.
func NewFFIBridge(opts ...Option) (*Bridge, error) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if installed != nil {
		return nil, ErrBridgeInstalled
	}
	native, err := NewFFINative()
	if err != nil {
		return nil, err
	}
	b := NewBridge(native, opts...)
	b.installLocked()
	return b, nil
}

// Install makes b the receiver of trampoline events. Installing the bridge
// that already holds the sink is a no-op; any other bridge gets
// ErrBridgeInstalled until the holder calls Uninstall.
func (b *Bridge) Install() error {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	switch installed {
	case b:
		return nil
	case nil:
		b.installLocked()
		return nil
	}
	return ErrBridgeInstalled
}

// Uninstall releases the trampoline sink if b holds it. Events that arrive
// afterwards are dropped by the trampoline.
func (b *Bridge) Uninstall() {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if installed != b {
		return
	}
	installed = nil
	cwebui.SetEventSink(nil)
}

func (b *Bridge) installLocked() {
	installed = b
	cwebui.SetEventSink(b.dispatchRaw)
}

// Native returns the function table the bridge calls into.
func (b *Bridge) Native() Native {
	return b.native
}

// NewWindow asks the runtime for a new window.
func (b *Bridge) NewWindow() *Window {
	return b.Window(Handle(b.native.NewWindow()))
}

// NewWindowWithID creates a window under a caller-chosen handle, as used by
// configurations that refer to windows by a fixed number.
func (b *Bridge) NewWindowWithID(id Handle) (*Window, error) {
	if b.native.NewWindowID(uintptr(id)) == 0 {
		return nil, ErrWindowID
	}
	return b.Window(id), nil
}

// NewWindowID returns a handle that is free for NewWindowWithID.
func (b *Bridge) NewWindowID() Handle {
	return Handle(b.native.GetNewWindowID())
}

// Window wraps an existing handle without calling the runtime.
func (b *Bridge) Window(h Handle) *Window {
	return &Window{handle: h, bridge: b}
}

// Bind registers handler for element on window.
//
// The runtime is asked for a bind id first; the handler is inserted under
// that id afterwards. An event that races ahead of the insert is dropped as
// a miss. An empty element receives every event of the window.
func (b *Bridge) Bind(window Handle, element string, handler Handler) (BindID, error) {
	if handler == nil {
		return 0, ErrNilHandler
	}
	if err := cwebui.CheckString(element); err != nil {
		return 0, err
	}

	raw, err := b.native.Bind(uintptr(window), element)
	if err != nil {
		return 0, err
	}
	id := BindID(raw)

	entry := &binding{id: id, window: window, element: element, handler: handler}
	prev, replaced := b.registry.insert(entry)
	if !replaced {
		b.metrics.addBindings(1)
	} else {
		if prev.window == window && prev.element == element {
			b.logger.Debug("rebinding element",
				zap.Uintptr("bind_id", raw), zap.String("element", element))
		} else {
			b.logger.Warn("runtime reused bind id, previous handler replaced",
				zap.Uintptr("bind_id", raw),
				zap.Uintptr("previous_window", uintptr(prev.window)),
				zap.String("previous_element", prev.element),
				zap.Uintptr("window", uintptr(window)),
				zap.String("element", element))
		}
	}
	return id, nil
}

// Unbind removes the handler registered under id. Later events for id are
// ignored. It reports whether a handler was removed.
func (b *Bridge) Unbind(id BindID) bool {
	ok := b.registry.remove(id)
	if ok {
		b.metrics.addBindings(-1)
	}
	return ok
}

// UnbindWindow removes every handler bound on window and returns how many
// were removed.
func (b *Bridge) UnbindWindow(window Handle) int {
	n := b.registry.removeWindow(window)
	b.metrics.addBindings(-n)
	return n
}

// BindingCount returns the number of registered handlers.
func (b *Bridge) BindingCount() int {
	return b.registry.len()
}

func (b *Bridge) dispatchRaw(raw cwebui.RawEvent) {
	_ = b.Dispatch(raw)
}

// Dispatch delivers one raw runtime event to its handler.
//
// The element name is decoded first; invalid UTF-8 drops the event with a
// *DecodeError. An unknown type code is delivered as EventUnknown. A bind id
// with no handler is not an error. A panicking handler is recovered and
// reported as *HandlerPanicError.
//
// The handler runs synchronously on the calling thread. Any response it set
// has been handed to the runtime by the time Dispatch returns.
func (b *Bridge) Dispatch(raw cwebui.RawEvent) error {
	element := cwebui.GoString(raw.Element)
	if !utf8.ValidString(element) {
		err := &DecodeError{What: "element name"}
		b.metrics.failure(reasonElementDecode)
		b.logger.Error("dropping event", append(rawFields(raw), zap.Error(err))...)
		return err
	}

	typ, err := ParseEventType(raw.EventType)
	if err != nil {
		b.metrics.failure(reasonUnknownType)
		b.logger.Warn("unrecognized event type",
			append(rawFields(raw), zap.String("element", element), zap.Error(err))...)
	}

	entry, ok := b.registry.lookup(BindID(raw.BindID))
	if !ok {
		b.metrics.miss()
		b.logger.Debug("no handler for bind id",
			append(rawFields(raw), zap.String("element", element))...)
		return nil
	}

	ev := &Event{
		Window:   b.Window(Handle(raw.Window)),
		Type:     typ,
		TypeCode: raw.EventType,
		Element:  element,
		Number:   raw.EventNumber,
		BindID:   entry.id,
		native:   b.native,
	}

	start := time.Now()
	err = b.invoke(entry, ev)
	b.metrics.observeDispatch(typ, time.Since(start))
	return err
}

func (b *Bridge) invoke(entry *binding, ev *Event) (err error) {
	defer ev.release()
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerPanicError{BindID: entry.id, Value: r}
			b.metrics.failure(reasonHandlerPanic)
			b.logger.Error("handler panicked",
				zap.Uintptr("bind_id", uintptr(entry.id)),
				zap.String("element", entry.element),
				zap.Error(err),
				zap.Stack("stack"))
		}
	}()
	entry.handler.OnEvent(ev)
	return nil
}

func rawFields(raw cwebui.RawEvent) []zap.Field {
	return []zap.Field{
		zap.Uintptr("window", raw.Window),
		zap.Uintptr("event_type", raw.EventType),
		zap.Uintptr("event_number", raw.EventNumber),
		zap.Uintptr("bind_id", raw.BindID),
	}
}

// Wait blocks until every window is closed or Exit is called.
func (b *Bridge) Wait() {
	b.native.Wait()
}

// WaitContext is Wait that also returns when ctx is done. Cancellation asks
// the runtime to exit and then reports ctx.Err().
func (b *Bridge) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			b.native.Exit()
		case <-done:
		}
	}()

	b.native.Wait()
	return ctx.Err()
}

// Exit closes all windows and unblocks Wait.
func (b *Bridge) Exit() {
	b.native.Exit()
}

// Clean frees runtime resources. Call it after Wait returns.
func (b *Bridge) Clean() {
	b.native.Clean()
}

// IsAppRunning reports whether the runtime's event loop is still active.
func (b *Bridge) IsAppRunning() bool {
	return b.native.IsAppRunning()
}

// SetTimeout sets how long Wait waits for the first window to connect,
// rounded down to whole seconds. Zero waits forever.
func (b *Bridge) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	b.native.SetTimeout(uintptr(d / time.Second))
}
