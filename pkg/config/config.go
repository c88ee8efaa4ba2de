/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package config loads the TOML file that describes a webui application's
// windows, logging and development server.
//
//	timeout = 30
//
//	[log]
//	level = "info"
//	file  = "log/webui.log"
//
//	[devserver]
//	addr = "127.0.0.1:9090"
//	root = "ui"
//
//	[[window]]
//	id      = 1
//	content = "index.html"
//	browser = "chromium-based"
//	width   = 800
//	height  = 600
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/crrow/webui-go/pkg/logging"
	"github.com/crrow/webui-go/pkg/webui"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the top-level file.
type Config struct {
	// Timeout is how many seconds Wait waits for the first window to
	// connect. Zero waits forever.
	Timeout   int            `toml:"timeout"`
	Log       logging.Config `toml:"log"`
	DevServer DevServer      `toml:"devserver"`
	Windows   []Window       `toml:"window"`
}

// DevServer serves the UI folder and metrics over plain HTTP. It is off when
// Addr is empty.
type DevServer struct {
	Addr string `toml:"addr"`
	Root string `toml:"root"`
}

// Window describes one window to create at startup.
type Window struct {
	ID         uint32 `toml:"id"`
	Content    string `toml:"content"`
	Browser    string `toml:"browser"`
	Width      uint32 `toml:"width"`
	Height     uint32 `toml:"height"`
	X          uint32 `toml:"x"`
	Y          uint32 `toml:"y"`
	RootFolder string `toml:"root_folder"`
	Icon       string `toml:"icon"`
	IconType   string `toml:"icon_type"`
	Port       uint16 `toml:"port"`
	Runtime    string `toml:"runtime"`
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML text.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WaitTimeout returns Timeout as a duration.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout: must not be negative, got %d", c.Timeout))
	}
	if c.DevServer.Root != "" && c.DevServer.Addr == "" {
		errs = append(errs, errors.New("devserver: root set without addr"))
	}

	seen := make(map[uint32]int)
	for i, w := range c.Windows {
		if w.ID != 0 {
			if j, dup := seen[w.ID]; dup {
				errs = append(errs, fmt.Errorf("window[%d]: id %d already used by window[%d]", i, w.ID, j))
			}
			seen[w.ID] = i
		}
		if err := w.validate(); err != nil {
			errs = append(errs, fmt.Errorf("window[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (w *Window) validate() error {
	var errs []error
	if w.Content == "" {
		errs = append(errs, errors.New("content is required"))
	}
	if _, err := webui.ParseBrowser(w.Browser); err != nil {
		errs = append(errs, err)
	}
	if _, err := webui.ParseRuntime(w.Runtime); err != nil {
		errs = append(errs, err)
	}
	if (w.Width == 0) != (w.Height == 0) {
		errs = append(errs, errors.New("width and height must be set together"))
	}
	if w.Icon != "" && w.IconType == "" {
		errs = append(errs, errors.New("icon_type is required with icon"))
	}
	return errors.Join(errs...)
}

// Create makes the window on b, using ID when one is set.
func (w *Window) Create(b *webui.Bridge) (*webui.Window, error) {
	if w.ID == 0 {
		return b.NewWindow(), nil
	}
	return b.NewWindowWithID(webui.Handle(w.ID))
}

// Apply sets everything but the content on win. Call Show afterwards.
func (w *Window) Apply(win *webui.Window) error {
	if w.Width != 0 {
		win.SetSize(w.Width, w.Height)
	}
	if w.X != 0 || w.Y != 0 {
		win.SetPosition(w.X, w.Y)
	}
	if w.RootFolder != "" {
		if err := win.SetRootFolder(w.RootFolder); err != nil {
			return fmt.Errorf("root folder %q: %w", w.RootFolder, err)
		}
	}
	if w.Icon != "" {
		if err := win.SetIcon(w.Icon, w.IconType); err != nil {
			return fmt.Errorf("icon: %w", err)
		}
	}
	if w.Port != 0 {
		if err := win.SetPort(w.Port); err != nil {
			return fmt.Errorf("port %d: %w", w.Port, err)
		}
	}
	if w.Runtime != "" {
		rt, err := webui.ParseRuntime(w.Runtime)
		if err != nil {
			return err
		}
		win.SetRuntime(rt)
	}
	return nil
}

// Show displays the configured content in the configured browser.
func (w *Window) Show(win *webui.Window) error {
	if w.Browser == "" {
		return win.Show(w.Content)
	}
	br, err := webui.ParseBrowser(w.Browser)
	if err != nil {
		return err
	}
	return win.ShowBrowser(w.Content, br)
}
