package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"keyframer/internal/adapters/filesystem"
	mcpadapter "keyframer/internal/adapters/mcp"
	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("keyframer-mcp: %v", err)
	}

	fileFlag := flag.String("file", cfg.ProjectFile, "path to the project file")
	padFlag := flag.Int("pad", cfg.PadCount, "keyframe count of the saved project")
	flag.Parse()

	path := application.EnsureJSONExt(filesystem.ExpandPath(*fileFlag))
	if err := application.ValidatePadCount(*padFlag); err != nil {
		log.Fatalf("keyframer-mcp: %v", err)
	}

	store := filesystem.NewStore()
	project, err := commands.NewOpenProjectCommand(store, path).Execute(context.Background())
	if err != nil {
		log.Fatalf("keyframer-mcp: %v", err)
	}
	sess := mcpadapter.NewSession(store, project.Timeline, path, *padFlag)

	mcpServer := server.NewMCPServer(
		"keyframer-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, sess)
	mcpadapter.RegisterWriteTools(mcpServer, sess)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("keyframer-mcp: %v", err)
	}
}
