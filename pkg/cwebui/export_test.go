/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

// CallTrampoline drives the trampoline from external test packages.
var CallTrampoline = callTrampoline
