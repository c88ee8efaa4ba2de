/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import "testing"

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		in   string
		want Browser
	}{
		{"", AnyBrowser},
		{"any", AnyBrowser},
		{"Firefox", Firefox},
		{" chrome ", Chrome},
		{"chromium-based", ChromiumBased},
		{"none", NoBrowser},
	}
	for _, tt := range tests {
		got, err := ParseBrowser(tt.in)
		if err != nil {
			t.Errorf("ParseBrowser(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBrowser(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseBrowser("netscape"); err == nil {
		t.Error("ParseBrowser accepted an unknown name")
	}
	for b := range browserNames {
		if got, err := ParseBrowser(b.String()); err != nil || got != b {
			t.Errorf("ParseBrowser(%q) = %v, %v; want %v", b.String(), got, err, b)
		}
	}
}

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		in   string
		want Runtime
	}{
		{"", RuntimeNone},
		{"none", RuntimeNone},
		{"Deno", RuntimeDeno},
		{"node", RuntimeNodeJS},
		{"nodejs", RuntimeNodeJS},
	}
	for _, tt := range tests {
		got, err := ParseRuntime(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRuntime(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseRuntime("bun"); err == nil {
		t.Error("ParseRuntime accepted an unknown name")
	}
}
