/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/crrow/webui-go/pkg/config"
	"github.com/crrow/webui-go/pkg/devserver"
	"github.com/crrow/webui-go/pkg/logging"
	"github.com/crrow/webui-go/pkg/webui"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const defaultPage = `<!DOCTYPE html>
<html>
<head><script src="webui.js"></script></head>
<body>
  <input id="x" value="1"> + <input id="y" value="2">
  <button onclick="calc()">=</button> <span id="sum"></span>
  <script>
    async function calc() {
      const x = document.getElementById('x').value;
      const y = document.getElementById('y').value;
      document.getElementById('sum').textContent = await webui.call('add', x, y);
    }
  </script>
</body>
</html>`

func main() {
	cfgPath := flag.String("config", "", "TOML config file")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		log.Fatalf("webui-demo: %v", err)
	}
}

func run(cfgPath string) error {
	cfg := config.Config{Windows: []config.Window{{Content: defaultPage}}}
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	bridge, err := webui.NewFFIBridge(
		webui.WithLogger(logger),
		webui.WithMetrics(webui.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}
	bridge.SetTimeout(cfg.WaitTimeout())

	for i := range cfg.Windows {
		wc := &cfg.Windows[i]
		win, err := wc.Create(bridge)
		if err != nil {
			return fmt.Errorf("window[%d]: %w", i, err)
		}
		if err := wc.Apply(win); err != nil {
			return fmt.Errorf("window[%d]: %w", i, err)
		}
		if _, err := win.Bind("add", addHandler(logger)); err != nil {
			return fmt.Errorf("window[%d]: bind add: %w", i, err)
		}
		if _, err := win.Bind("", lifecycleLogger(logger)); err != nil {
			return fmt.Errorf("window[%d]: bind events: %w", i, err)
		}
		if err := wc.Show(win); err != nil {
			return fmt.Errorf("window[%d]: %w", i, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	devErr := make(chan error, 1)
	if cfg.DevServer.Addr != "" {
		srv := devserver.New(cfg.DevServer.Addr, devserver.Options{
			Root:     cfg.DevServer.Root,
			Gatherer: reg,
			Logger:   logger,
		})
		go func() { devErr <- srv.Run(ctx) }()
	}

	logger.Info("webui-demo running", zap.Int("windows", len(cfg.Windows)))
	err = bridge.WaitContext(ctx)
	stop()
	bridge.Clean()

	if cfg.DevServer.Addr != "" {
		select {
		case derr := <-devErr:
			if derr != nil {
				logger.Error("dev server", zap.Error(derr))
			}
		case <-time.After(6 * time.Second):
			logger.Warn("dev server did not stop in time")
		}
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "webui-demo: interrupted")
		return nil
	}
	return err
}

// add parses two decimal numbers and returns their sum as text.
func add(x, y string) (string, error) {
	a, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return "", fmt.Errorf("first operand: %w", err)
	}
	b, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return "", fmt.Errorf("second operand: %w", err)
	}
	return strconv.FormatFloat(a+b, 'g', -1, 64), nil
}

func addHandler(logger *zap.Logger) webui.HandlerFunc {
	return func(e *webui.Event) {
		x, err := e.StringAt(0)
		if err != nil {
			logger.Warn("add: bad argument", zap.Error(err))
			return
		}
		y, err := e.StringAt(1)
		if err != nil {
			logger.Warn("add: bad argument", zap.Error(err))
			return
		}
		sum, err := add(x, y)
		if err != nil {
			_ = e.SetResponse("error: " + err.Error())
			return
		}
		if err := e.SetResponse(sum); err != nil {
			logger.Warn("add: set response", zap.Error(err))
		}
	}
}

func lifecycleLogger(logger *zap.Logger) webui.HandlerFunc {
	return func(e *webui.Event) {
		switch e.Type {
		case webui.EventConnected, webui.EventDisconnected, webui.EventNavigation:
			logger.Info("window event",
				zap.Uintptr("window", uintptr(e.Window.Handle())),
				zap.Stringer("type", e.Type),
				zap.String("element", e.Element))
		}
	}
}
