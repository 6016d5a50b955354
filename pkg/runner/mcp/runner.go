package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/gratitude/pkg/app"
)

// Runner starts the MCP server over stdio.
type Runner struct {
	Journal *app.Journal
	Name    string
	Version string
}

// NewServer builds the MCP server with every tool and resource registered.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.Journal == nil {
		return nil, errors.New("mcp runner requires a journal")
	}
	name := r.Name
	if name == "" {
		name = "gratitude"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and write a daily gratitude journal: one entry per day, with streak statistics."),
		server.WithRecovery(),
	)

	svc := NewService(r.Journal)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do serves until stdin closes.
func (r Runner) Do(_ context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}
	return server.ServeStdio(srv)
}
