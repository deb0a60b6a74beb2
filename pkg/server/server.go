// Package server provides the MCP server implementation for the trip
// planner.
package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/veloplan/tripmcp/pkg/dataset"
	"github.com/veloplan/tripmcp/pkg/tools"
	"github.com/veloplan/tripmcp/pkg/tools/prompts"
	"github.com/veloplan/tripmcp/pkg/version"
)

// ServerName is the name of the MCP server
const ServerName = "trip-planner-mcp"

// Config carries server construction options.
type Config struct {
	// DataDir is the directory holding the dataset JSON files.
	// Empty means the embedded default datasets.
	DataDir string

	// Logger receives all server logging. Nil means slog.Default().
	Logger *slog.Logger
}

// Server encapsulates the MCP server with the trip planner tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates a new trip planner MCP server with the dataset
// store loaded and all tools registered.
func NewServer(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("initializing trip planner MCP server",
		"name", ServerName,
		"version", version.BuildVersion)

	store := dataset.Load(cfg.DataDir, logger)

	srv := server.NewMCPServer(
		ServerName,
		version.BuildVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	registry := tools.NewRegistry(store, logger)
	registry.RegisterTools(srv)
	prompts.RegisterPlanningPrompts(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server using stdin/stdout for communication.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}
