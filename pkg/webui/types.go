/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"fmt"
	"strings"
)

// Handle identifies a native window. The runtime owns its validity.
type Handle uintptr

// BindID is the identifier the runtime assigns to a binding. It is the key
// the trampoline uses to find the Go handler.
type BindID uintptr

// Browser selects the browser used by ShowBrowser.
type Browser uintptr

const (
	NoBrowser Browser = iota
	AnyBrowser
	Chrome
	Firefox
	Edge
	Safari
	Chromium
	Opera
	Brave
	Vivaldi
	Epic
	Yandex
	ChromiumBased
)

var browserNames = map[Browser]string{
	NoBrowser:     "none",
	AnyBrowser:    "any",
	Chrome:        "chrome",
	Firefox:       "firefox",
	Edge:          "edge",
	Safari:        "safari",
	Chromium:      "chromium",
	Opera:         "opera",
	Brave:         "brave",
	Vivaldi:       "vivaldi",
	Epic:          "epic",
	Yandex:        "yandex",
	ChromiumBased: "chromium-based",
}

func (b Browser) String() string {
	if name, ok := browserNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Browser(%d)", uintptr(b))
}

// ParseBrowser maps a case-insensitive browser name to a Browser. The empty
// name is AnyBrowser.
func ParseBrowser(name string) (Browser, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AnyBrowser, nil
	}
	for b, n := range browserNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown browser %q", name)
}

// Runtime selects the JavaScript runtime used for .js/.ts files served by a
// window.
type Runtime uintptr

const (
	RuntimeNone Runtime = iota
	RuntimeDeno
	RuntimeNodeJS
)

func (r Runtime) String() string {
	switch r {
	case RuntimeNone:
		return "none"
	case RuntimeDeno:
		return "deno"
	case RuntimeNodeJS:
		return "nodejs"
	default:
		return fmt.Sprintf("Runtime(%d)", uintptr(r))
	}
}

// ParseRuntime maps a case-insensitive runtime name to a Runtime.
func ParseRuntime(name string) (Runtime, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return RuntimeNone, nil
	case "deno":
		return RuntimeDeno, nil
	case "nodejs", "node":
		return RuntimeNodeJS, nil
	}
	return 0, fmt.Errorf("unknown runtime %q", name)
}
