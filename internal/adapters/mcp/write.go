package mcp

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/domain"
)

// RegisterWriteTools adds the timeline editing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, sess *Session) {
	s.AddTool(addTrackTool(), sess.write(addTrack))
	s.AddTool(removeTrackTool(), sess.write(removeTrack))
	s.AddTool(addKeyframeTool(), sess.write(addKeyframe))
	s.AddTool(removeKeyframeTool(), sess.write(removeKeyframe))
	s.AddTool(moveKeyframeTool(), sess.write(moveKeyframe))
	s.AddTool(setNodeTool(), sess.write(setNode))
	s.AddTool(setTimeTool(), sess.write(setTime))
	s.AddTool(importTool(), sess.write(importFile(sess)))

	// Exports write other files; the project itself is unchanged
	s.AddTool(exportTool(), sess.read(export(sess)))
	s.AddTool(exportAllTool(), sess.read(exportAll(sess)))
}

// --- add_track ---

func addTrackTool() mcp.Tool {
	return mcp.NewTool("add_track",
		mcp.WithDescription("Add a track. Every keyframe gets a node for it with value 0 and mode Step."),
		mcp.WithString("name",
			mcp.Description("Track name (e.g. color_A)"),
			mcp.Required(),
		),
	)
}

func addTrack(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	res, err := commands.NewAddTrackCommand(tl, req.GetString("name", "")).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- remove_track ---

func removeTrackTool() mcp.Tool {
	return mcp.NewTool("remove_track",
		mcp.WithDescription("Remove a track and its node from every keyframe."),
		mcp.WithString("name",
			mcp.Description("Track name"),
			mcp.Required(),
		),
	)
}

func removeTrack(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	res, err := commands.NewRemoveTrackCommand(tl, req.GetString("name", "")).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- add_keyframe ---

func addKeyframeTool() mcp.Tool {
	return mcp.NewTool("add_keyframe",
		mcp.WithDescription("Add a keyframe. It copies the values of the previous keyframe. Times are rounded to 2 decimals."),
		mcp.WithNumber("time",
			mcp.Description("Time in seconds. Omit for the scrub time."),
		),
	)
}

func addKeyframe(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	at, err := optionalNumber(req, "time")
	if err != nil {
		return "", err
	}
	res, err := commands.NewAddKeyframeCommand(tl, at).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- remove_keyframe ---

func removeKeyframeTool() mcp.Tool {
	return mcp.NewTool("remove_keyframe",
		mcp.WithDescription("Remove the keyframe at a time."),
		mcp.WithNumber("time",
			mcp.Description("Time in seconds. Omit for the scrub time."),
		),
	)
}

func removeKeyframe(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	at, err := optionalNumber(req, "time")
	if err != nil {
		return "", err
	}
	res, err := commands.NewRemoveKeyframeCommand(tl, at).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- move_keyframe ---

func moveKeyframeTool() mcp.Tool {
	return mcp.NewTool("move_keyframe",
		mcp.WithDescription("Move a keyframe to a new time. Fails if another keyframe is already there."),
		mcp.WithNumber("from",
			mcp.Description("Current time of the keyframe"),
			mcp.Required(),
		),
		mcp.WithNumber("to",
			mcp.Description("New time"),
			mcp.Required(),
		),
	)
}

func moveKeyframe(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	from, err := requiredNumber(req, "from")
	if err != nil {
		return "", err
	}
	to, err := requiredNumber(req, "to")
	if err != nil {
		return "", err
	}
	res, err := commands.NewMoveKeyframeCommand(tl, from, to).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- set_node ---

func setNodeTool() mcp.Tool {
	return mcp.NewTool("set_node",
		mcp.WithDescription("Set the value, the interpolation mode, or both, of one track on a keyframe."),
		mcp.WithString("track",
			mcp.Description("Track name"),
			mcp.Required(),
		),
		mcp.WithNumber("value",
			mcp.Description("New value"),
		),
		mcp.WithString("mode",
			mcp.Description("Interpolation mode: a name (Step, Linear, QuadraticIn, QuadraticOut, Smoothstep) or its code 0-4"),
		),
		mcp.WithNumber("time",
			mcp.Description("Keyframe time. Omit for the scrub time."),
		),
	)
}

func setNode(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	at, err := optionalNumber(req, "time")
	if err != nil {
		return "", err
	}
	value, err := optionalNumber(req, "value")
	if err != nil {
		return "", err
	}

	var mode *domain.Mode
	if s := req.GetString("mode", ""); s != "" {
		m, err := application.ParseMode(s)
		if err != nil {
			return "", err
		}
		mode = &m
	}

	res, err := commands.NewSetNodeCommand(tl, at, req.GetString("track", ""), value, mode).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- set_time ---

func setTimeTool() mcp.Tool {
	return mcp.NewTool("set_time",
		mcp.WithDescription("Move the scrub position. Tools that take an optional time default to it."),
		mcp.WithNumber("time",
			mcp.Description("Time in seconds"),
			mcp.Required(),
		),
	)
}

func setTime(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
	t, err := requiredNumber(req, "time")
	if err != nil {
		return "", err
	}
	res, err := commands.NewSetTimeCommand(tl, t).Execute(ctx)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Replace the timeline with the contents of a JSON export. The timeline is unchanged if the file is invalid."),
		mcp.WithString("path",
			mcp.Description("Path of the JSON file"),
			mcp.Required(),
		),
	)
}

func importFile(sess *Session) toolFunc {
	return func(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
		res, err := commands.NewImportCommand(sess.store, tl, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Export the timeline to a file. The format follows the extension (.json, .xlsx, .h) unless given."),
		mcp.WithString("path",
			mcp.Description("Output file"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("json, excel or header"),
			mcp.Enum("json", "excel", "header"),
		),
		mcp.WithNumber("pad_count",
			mcp.Description("JSON only: pad or truncate the keyframe list to this length by repeating the last keyframe"),
		),
	)
}

func export(sess *Session) toolFunc {
	return func(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
		path := req.GetString("path", "")

		var format application.ExportFormat
		var err error
		if f := req.GetString("format", ""); f != "" {
			format, err = application.ParseExportFormat(f)
		} else {
			format, err = application.FormatForPath(path)
		}
		if err != nil {
			return "", err
		}

		pad, err := optionalNumber(req, "pad_count")
		if err != nil {
			return "", err
		}
		var padCount *int
		if pad != nil {
			n := int(*pad)
			padCount = &n
		}

		res, err := commands.NewExportCommand(sess.store, tl, format, path, padCount).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}
}

// --- export_all ---

func exportAllTool() mcp.Tool {
	return mcp.NewTool("export_all",
		mcp.WithDescription("Export the JSON (padded), spreadsheet and header files side by side."),
		mcp.WithString("dir",
			mcp.Description("Output directory. Omit for the project directory."),
		),
		mcp.WithString("base",
			mcp.Description("Base file name without extension. Omit for the project name."),
		),
	)
}

func exportAll(sess *Session) toolFunc {
	return func(ctx context.Context, tl *domain.Timeline, req mcp.CallToolRequest) (string, error) {
		project := sess.Path()
		dir := req.GetString("dir", filepath.Dir(project))
		base := req.GetString("base", strings.TrimSuffix(filepath.Base(project), filepath.Ext(project)))
		pad := sess.pad

		res, err := commands.NewExportAllCommand(sess.store, tl, dir, base, &pad).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}
}
