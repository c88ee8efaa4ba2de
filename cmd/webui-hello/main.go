/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Command webui-hello opens one window through the raw cwebui bindings.
package main

import (
	"fmt"
	"log"

	"github.com/crrow/webui-go/pkg/cwebui"
)

func main() {
	win, err := cwebui.NewWindow()
	if err != nil {
		log.Fatalf("new window failed: %v", err)
	}

	ok, err := cwebui.Show(win, `<html><script src="webui.js"></script> Hello World from Go! </html>`)
	if err != nil {
		log.Fatalf("show failed: %v", err)
	}
	fmt.Printf("show: %v (library %s)\n", ok, cwebui.LibraryPath())

	cwebui.Wait()
	cwebui.Clean()
}
