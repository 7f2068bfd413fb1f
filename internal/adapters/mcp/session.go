package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"keyframer/internal/domain"
	"keyframer/internal/ports"
)

// Session is the timeline served over MCP. Tool calls run one at a time and
// every successful write is saved to the project file as padded JSON.
type Session struct {
	mu    sync.Mutex
	store ports.TimelineStore
	tl    *domain.Timeline
	path  string
	pad   int
}

// NewSession creates a session editing tl, saved to path
func NewSession(store ports.TimelineStore, tl *domain.Timeline, path string, pad int) *Session {
	return &Session{store: store, tl: tl, path: path, pad: pad}
}

// Timeline returns the served timeline
func (s *Session) Timeline() *domain.Timeline {
	return s.tl
}

// Path returns the project file
func (s *Session) Path() string {
	return s.path
}

type toolFunc func(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error)

// read wraps fn as a handler that leaves the project file alone
func (s *Session) read(fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		text, err := fn(ctx, s.tl, req)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// write wraps fn as a handler that saves the project after it succeeds
func (s *Session) write(fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		text, err := fn(ctx, s.tl, req)
		if err != nil {
			return toolError(err)
		}
		if err := s.store.ExportJSON(s.tl, s.path, domain.WithPadAtLeast(s.pad)); err != nil {
			return toolError(fmt.Errorf("%s, but saving failed: %w", text, err))
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// optionalNumber returns the named argument, or nil when it was omitted.
// Numbers given as strings are accepted.
func optionalNumber(req mcp.CallToolRequest, name string) (*float64, error) {
	v, ok := req.GetArguments()[name]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number, got %q", name, n)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("%s must be a number", name)
	}
}

// requiredNumber is optionalNumber for arguments that must be given
func requiredNumber(req mcp.CallToolRequest, name string) (float64, error) {
	v, err := optionalNumber(req, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%s is required", name)
	}
	return *v, nil
}

func formatKeyframe(sb *strings.Builder, k *domain.Keyframe) {
	fmt.Fprintf(sb, "%s\n", domain.FormatNumber(k.Time()))
	for _, n := range k.Nodes() {
		fmt.Fprintf(sb, "  %s  %s  %s\n", n.Track, domain.FormatNumber(n.Value), n.Mode)
	}
}
