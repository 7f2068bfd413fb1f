package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"keyframer/internal/domain"
)

// RegisterReadTools adds the read-only timeline tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, sess *Session) {
	s.AddTool(showTool(), sess.read(show))
	s.AddTool(listTracksTool(), sess.read(listTracks))
	s.AddTool(getKeyframeTool(), sess.read(getKeyframe))
	s.AddTool(headerTool(), sess.read(header))
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show the timeline: scrub time, tracks, and every keyframe with its node values and interpolation modes."),
	)
}

func show(_ context.Context, tl *domain.Timeline, _ mcp.CallToolRequest) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "time: %s\n", domain.FormatNumber(tl.Time()))
	fmt.Fprintf(&sb, "tracks: %s\n", strings.Join(tl.Tracks(), ", "))

	keyframes := tl.Keyframes()
	if len(keyframes) == 0 {
		sb.WriteString("No keyframes.\n")
		return sb.String(), nil
	}
	for _, k := range keyframes {
		formatKeyframe(&sb, k)
	}
	return sb.String(), nil
}

// --- list_tracks ---

func listTracksTool() mcp.Tool {
	return mcp.NewTool("list_tracks",
		mcp.WithDescription("List the track names in order."),
	)
}

func listTracks(_ context.Context, tl *domain.Timeline, _ mcp.CallToolRequest) (string, error) {
	tracks := tl.Tracks()
	if len(tracks) == 0 {
		return "No tracks.", nil
	}
	return strings.Join(tracks, "\n") + "\n", nil
}

// --- get_keyframe ---

func getKeyframeTool() mcp.Tool {
	return mcp.NewTool("get_keyframe",
		mcp.WithDescription("Get the keyframe at a time, with one value and mode per track."),
		mcp.WithNumber("time",
			mcp.Description("Time in seconds. Omit for the scrub time."),
		),
	)
}

func getKeyframe(_ context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	at, err := optionalNumber(req, "time")
	if err != nil {
		return "", err
	}
	t := tl.Time()
	if at != nil {
		t = *at
	}

	k, ok := tl.Keyframe(t)
	if !ok {
		return "", &domain.NotFoundError{Kind: "keyframe", Name: domain.FormatNumber(domain.RoundTime(t))}
	}
	var sb strings.Builder
	formatKeyframe(&sb, k)
	return sb.String(), nil
}

// --- header ---

func headerTool() mcp.Tool {
	return mcp.NewTool("header",
		mcp.WithDescription("Render the timeline as a C++ header: one constexpr Keyframe<float> array per track."),
	)
}

func header(_ context.Context, tl *domain.Timeline, _ mcp.CallToolRequest) (string, error) {
	var sb strings.Builder
	if err := tl.EncodeHeader(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
