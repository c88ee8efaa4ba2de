/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import "sync"

// binding is one registry entry. Entries are immutable once inserted, so a
// pointer copied out under the read lock can be used after unlocking.
type binding struct {
	id      BindID
	window  Handle
	element string
	handler Handler
}

// registry maps runtime-assigned bind ids to handlers.
//
// Bind is a write, dispatch is a read. Readers never hold the lock while a
// handler runs, so a handler may itself bind or unbind.
type registry struct {
	mu      sync.RWMutex
	entries map[BindID]*binding
}

func newRegistry() *registry {
	return &registry{entries: make(map[BindID]*binding)}
}

// insert stores b, returning the entry it replaced, if any.
func (r *registry) insert(b *binding) (*binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.entries[b.id]
	r.entries[b.id] = b
	return prev, ok
}

func (r *registry) lookup(id BindID) (*binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.entries[id]
	return b, ok
}

func (r *registry) remove(id BindID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// removeWindow drops every binding of window and returns how many there were.
func (r *registry) removeWindow(window Handle) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, b := range r.entries {
		if b.window == window {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
