/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"fmt"
	"strconv"
	"sync"
	"unsafe"

	"github.com/crrow/webui-go/pkg/cwebui"
)

type eventKey struct {
	window uintptr
	event  uintptr
}

type bindCall struct {
	window  uintptr
	element string
}

// fakeNative is an in-memory WebUI runtime. Like the real one it hands every
// argument out as text and converts on IntAt/BoolAt.
type fakeNative struct {
	mu sync.Mutex

	nextWindow uintptr
	nextBind   uintptr
	fixedBind  uintptr // when non-zero, Bind always returns it

	binds     []bindCall
	args      map[eventKey][][]byte // NUL-terminated
	responses map[eventKey][]string
	shown     map[uintptr]string
	sizes     map[uintptr][2]uint32
	positions map[uintptr][2]uint32
	roots     map[uintptr]string
	raw       map[uintptr][]byte
	closed    []uintptr
	destroyed []uintptr
	timeout   uintptr

	showFails bool
	portFails bool
	rejectIDs bool

	exitOnce sync.Once
	exitCh   chan struct{}
	exits    int
	cleaned  bool
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		nextWindow: 1,
		nextBind:   1,
		args:       make(map[eventKey][][]byte),
		responses:  make(map[eventKey][]string),
		shown:      make(map[uintptr]string),
		sizes:      make(map[uintptr][2]uint32),
		positions:  make(map[uintptr][2]uint32),
		roots:      make(map[uintptr]string),
		raw:        make(map[uintptr][]byte),
		exitCh:     make(chan struct{}),
	}
}

// setArgs stores the positional arguments of event on window. []byte values
// are stored verbatim; anything else is formatted as text.
func (f *fakeNative) setArgs(window, event uintptr, values ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	args := make([][]byte, len(values))
	for i, v := range values {
		var b []byte
		switch v := v.(type) {
		case []byte:
			b = append([]byte(nil), v...)
		default:
			b = []byte(fmt.Sprint(v))
		}
		args[i] = append(b, 0)
	}
	f.args[eventKey{window, event}] = args
}

func (f *fakeNative) arg(window, event, index uintptr) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	args := f.args[eventKey{window, event}]
	if index >= uintptr(len(args)) {
		return nil, false
	}
	return args[index], true
}

func (f *fakeNative) responsesFor(window, event uintptr) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.responses[eventKey{window, event}]...)
}

func (f *fakeNative) bindCalls() []bindCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bindCall(nil), f.binds...)
}

func (f *fakeNative) NewWindow() uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.nextWindow
	f.nextWindow++
	return h
}

func (f *fakeNative) NewWindowID(id uintptr) uintptr {
	if f.rejectIDs || id == 0 {
		return 0
	}
	return id
}

func (f *fakeNative) GetNewWindowID() uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextWindow + 100
}

func (f *fakeNative) Show(window uintptr, content string) (bool, error) {
	if err := cwebui.CheckString(content); err != nil {
		return false, err
	}
	if f.showFails {
		return false, nil
	}
	f.mu.Lock()
	f.shown[window] = content
	f.mu.Unlock()
	return true, nil
}

func (f *fakeNative) ShowBrowser(window uintptr, content string, browser uintptr) (bool, error) {
	return f.Show(window, content)
}

func (f *fakeNative) IsShown(window uintptr) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.shown[window]
	return ok
}

func (f *fakeNative) SetSize(window uintptr, width, height uint32) {
	f.mu.Lock()
	f.sizes[window] = [2]uint32{width, height}
	f.mu.Unlock()
}

func (f *fakeNative) SetPosition(window uintptr, x, y uint32) {
	f.mu.Lock()
	f.positions[window] = [2]uint32{x, y}
	f.mu.Unlock()
}

func (f *fakeNative) SetRootFolder(window uintptr, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	f.mu.Lock()
	f.roots[window] = path
	f.mu.Unlock()
	return true, nil
}

func (f *fakeNative) SetIcon(window uintptr, icon, iconType string) error { return nil }

func (f *fakeNative) SetPort(window, port uintptr) bool { return !f.portFails }

func (f *fakeNative) SetRuntime(window, rt uintptr) {}

func (f *fakeNative) SendRaw(window uintptr, function string, raw []byte) error {
	f.mu.Lock()
	f.raw[window] = append([]byte(nil), raw...)
	f.mu.Unlock()
	return nil
}

func (f *fakeNative) Close(window uintptr) {
	f.mu.Lock()
	f.closed = append(f.closed, window)
	delete(f.shown, window)
	f.mu.Unlock()
}

func (f *fakeNative) Destroy(window uintptr) {
	f.mu.Lock()
	f.destroyed = append(f.destroyed, window)
	delete(f.shown, window)
	f.mu.Unlock()
}

func (f *fakeNative) WindowID(window uintptr) uintptr { return window + 1000 }

func (f *fakeNative) Bind(window uintptr, element string) (uintptr, error) {
	if err := cwebui.CheckString(element); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.binds = append(f.binds, bindCall{window, element})
	if f.fixedBind != 0 {
		return f.fixedBind, nil
	}
	id := f.nextBind
	f.nextBind++
	return id, nil
}

func (f *fakeNative) StringAt(window, eventNumber, index uintptr) unsafe.Pointer {
	b, ok := f.arg(window, eventNumber, index)
	if !ok {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (f *fakeNative) SizeAt(window, eventNumber, index uintptr) uintptr {
	b, ok := f.arg(window, eventNumber, index)
	if !ok {
		return 0
	}
	return uintptr(len(b) - 1)
}

func (f *fakeNative) IntAt(window, eventNumber, index uintptr) int64 {
	b, ok := f.arg(window, eventNumber, index)
	if !ok {
		return 0
	}
	n, _ := strconv.ParseInt(string(b[:len(b)-1]), 10, 64)
	return n
}

func (f *fakeNative) BoolAt(window, eventNumber, index uintptr) bool {
	b, ok := f.arg(window, eventNumber, index)
	if !ok {
		return false
	}
	v, _ := strconv.ParseBool(string(b[:len(b)-1]))
	return v
}

func (f *fakeNative) SetResponse(window, eventNumber uintptr, response string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := eventKey{window, eventNumber}
	f.responses[k] = append(f.responses[k], response)
	return nil
}

func (f *fakeNative) Wait() {
	<-f.exitCh
}

func (f *fakeNative) Exit() {
	f.mu.Lock()
	f.exits++
	f.mu.Unlock()
	f.exitOnce.Do(func() { close(f.exitCh) })
}

func (f *fakeNative) Clean() {
	f.mu.Lock()
	f.cleaned = true
	f.mu.Unlock()
}

func (f *fakeNative) IsAppRunning() bool {
	select {
	case <-f.exitCh:
		return false
	default:
		return true
	}
}

func (f *fakeNative) SetTimeout(seconds uintptr) {
	f.mu.Lock()
	f.timeout = seconds
	f.mu.Unlock()
}

// rawEvent builds the trampoline arguments for an event. The element buffer
// stays reachable through the returned pointer.
func rawEvent(window, eventType uintptr, element []byte, number, bindID uintptr) cwebui.RawEvent {
	buf := append(append([]byte(nil), element...), 0)
	return cwebui.RawEvent{
		Window:      window,
		EventType:   eventType,
		Element:     unsafe.Pointer(&buf[0]),
		EventNumber: number,
		BindID:      bindID,
	}
}
