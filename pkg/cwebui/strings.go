/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cwebui

import (
	"strings"
	"unsafe"
)

// CheckString reports ErrNulInString if s cannot be passed as a C string.
func CheckString(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrNulInString
	}
	return nil
}

// CString returns a NUL-terminated copy of s.
// The caller must keep the returned slice alive for the duration of the call
// that receives its address.
func CString(s string) ([]byte, error) {
	if err := CheckString(s); err != nil {
		return nil, err
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, nil
}

// GoString copies a NUL-terminated C string into Go memory.
// A nil pointer yields the empty string.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// GoBytesN copies n bytes starting at p. A nil pointer or zero length yields nil.
func GoBytesN(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

func bufferPointer(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}
