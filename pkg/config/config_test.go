/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crrow/webui-go/pkg/webui"
)

const sample = `
timeout = 30

[log]
level = "debug"
file = "log/webui.log"
max_backups = 5

[devserver]
addr = "127.0.0.1:9090"
root = "ui"

[[window]]
id = 1
content = "index.html"
browser = "Firefox"
width = 800
height = 600
x = 10
y = 20
root_folder = "ui"
port = 8081
runtime = "deno"

[[window]]
content = "<html>second</html>"
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.WaitTimeout() != 30*time.Second {
		t.Errorf("WaitTimeout = %v, want 30s", cfg.WaitTimeout())
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "log/webui.log" || cfg.Log.MaxBackups != 5 {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.DevServer.Addr != "127.0.0.1:9090" || cfg.DevServer.Root != "ui" {
		t.Errorf("devserver = %+v", cfg.DevServer)
	}
	if len(cfg.Windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(cfg.Windows))
	}
	w := cfg.Windows[0]
	if w.ID != 1 || w.Width != 800 || w.Port != 8081 || w.Runtime != "deno" {
		t.Errorf("window[0] = %+v", w)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{
			name: "unknown browser",
			toml: "[[window]]\ncontent = \"a\"\nbrowser = \"netscape\"\n",
			want: "unknown browser",
		},
		{
			name: "unknown runtime",
			toml: "[[window]]\ncontent = \"a\"\nruntime = \"bun\"\n",
			want: "unknown runtime",
		},
		{
			name: "duplicate id",
			toml: "[[window]]\nid = 2\ncontent = \"a\"\n[[window]]\nid = 2\ncontent = \"b\"\n",
			want: "already used",
		},
		{
			name: "missing content",
			toml: "[[window]]\nid = 3\n",
			want: "content is required",
		},
		{
			name: "half a size",
			toml: "[[window]]\ncontent = \"a\"\nwidth = 10\n",
			want: "width and height",
		},
		{
			name: "negative timeout",
			toml: "timeout = -1\n",
			want: "timeout",
		},
		{
			name: "root without addr",
			toml: "[devserver]\nroot = \"ui\"\n",
			want: "devserver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse accepted invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse([]byte("timeout = \"soon")); err == nil {
		t.Error("Parse accepted malformed TOML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webui.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Windows) != 2 {
		t.Errorf("windows = %d, want 2", len(cfg.Windows))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

// recordingNative records the window calls made by Create, Apply and Show.
// Anything else panics on the nil embedded interface.
type recordingNative struct {
	webui.Native

	calls   []string
	browser uintptr
}

func (r *recordingNative) NewWindow() uintptr {
	r.calls = append(r.calls, "new")
	return 7
}

func (r *recordingNative) NewWindowID(id uintptr) uintptr {
	r.calls = append(r.calls, "new-id")
	return id
}

func (r *recordingNative) SetSize(window uintptr, w, h uint32) {
	r.calls = append(r.calls, "size")
}

func (r *recordingNative) SetPosition(window uintptr, x, y uint32) {
	r.calls = append(r.calls, "position")
}

func (r *recordingNative) SetRootFolder(window uintptr, path string) (bool, error) {
	r.calls = append(r.calls, "root")
	return true, nil
}

func (r *recordingNative) SetIcon(window uintptr, icon, iconType string) error {
	r.calls = append(r.calls, "icon")
	return nil
}

func (r *recordingNative) SetPort(window, port uintptr) bool {
	r.calls = append(r.calls, "port")
	return true
}

func (r *recordingNative) SetRuntime(window, rt uintptr) {
	r.calls = append(r.calls, "runtime")
}

func (r *recordingNative) Show(window uintptr, content string) (bool, error) {
	r.calls = append(r.calls, "show")
	return true, nil
}

func (r *recordingNative) ShowBrowser(window uintptr, content string, browser uintptr) (bool, error) {
	r.calls = append(r.calls, "show-browser")
	r.browser = browser
	return true, nil
}

func TestWindowApply(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	native := &recordingNative{}
	b := webui.NewBridge(native)

	first := cfg.Windows[0]
	win, err := first.Create(b)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if win.Handle() != 1 {
		t.Errorf("handle = %d, want the configured id 1", win.Handle())
	}
	if err := first.Apply(win); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := first.Show(win); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if native.browser != uintptr(webui.Firefox) {
		t.Errorf("browser = %d, want firefox", native.browser)
	}

	want := "new-id size position root port runtime show-browser"
	if got := strings.Join(native.calls, " "); got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}

	native.calls = nil
	second := cfg.Windows[1]
	win, err = second.Create(b)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := second.Apply(win); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := second.Show(win); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if got := strings.Join(native.calls, " "); got != "new show" {
		t.Errorf("calls = %q, want %q", got, "new show")
	}
}
