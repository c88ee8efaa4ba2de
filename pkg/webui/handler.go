/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

// Handler is the interface for handling UI events.
//
// Implement this interface when the handler carries state, such as a
// counter of clicks or a reference to an application model. For simple use
// cases, [HandlerFunc] provides a more convenient functional approach.
//
// OnEvent runs on a runtime thread, not the goroutine that called Wait, and
// may run concurrently with other handlers. The *Event is only usable until
// OnEvent returns.
//
// Example implementation:
//
//	type Counter struct {
//	    n atomic.Int64
//	}
//
//	func (c *Counter) OnEvent(e *webui.Event) {
//	    _ = e.SetResponse(strconv.FormatInt(c.n.Add(1), 10))
//	}
type Handler interface {
	OnEvent(e *Event)
}

// HandlerFunc is a function adapter for [Handler].
//
// Example:
//
//	win.BindFunc("add", func(e *webui.Event) {
//	    x, _ := e.IntAt(0)
//	    y, _ := e.IntAt(1)
//	    _ = e.SetResponse(strconv.FormatInt(x+y, 10))
//	})
type HandlerFunc func(e *Event)

// OnEvent implements [Handler].
func (f HandlerFunc) OnEvent(e *Event) {
	f(e)
}
