package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/junkd0g/pokeviz/internal/app"
	"github.com/junkd0g/pokeviz/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	a, err := app.Load("", "")
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}

	dash, err := a.Dashboard()
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}
	if err := dash.Start(); err != nil {
		log.Fatalf("Initial render error: %v", err)
	}
	a.Log.Info("views written to %s", filepath.Clean(a.Config.Output.Dir))

	s := server.NewMCPServer(
		"pokeviz",
		"1.0.0",
	)

	tools.Register(s, tools.NewHandlers(dash, tools.Options{
		OutputDir: a.Config.Output.Dir,
		HTML:      a.Config.HTMLConfig(),
		Log:       a.Log,
	}))

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
