package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"keyframer/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Mode     = domain.Mode
	Node     = domain.Node
	Keyframe = domain.Keyframe
	Timeline = domain.Timeline
	Document = domain.Document
)

// ExportFormat selects the file written by an export
type ExportFormat string

const (
	FormatJSON   ExportFormat = "json"
	FormatExcel  ExportFormat = "excel"
	FormatHeader ExportFormat = "header"
)

// ExportFormats lists every format in the order "export all" writes them
func ExportFormats() []ExportFormat {
	return []ExportFormat{FormatJSON, FormatExcel, FormatHeader}
}

// Extension returns the file extension for the format, dot included
func (f ExportFormat) Extension() string {
	switch f {
	case FormatExcel:
		return ".xlsx"
	case FormatHeader:
		return ".h"
	default:
		return ".json"
	}
}

// ParseExportFormat accepts a format name or one of its aliases
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "excel", "xlsx", "spreadsheet":
		return FormatExcel, nil
	case "header", "h", "cpp":
		return FormatHeader, nil
	default:
		return "", &ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unknown export format %q (expected json, excel or header)", s),
		}
	}
}

// FormatForPath picks the export format from a file extension
func FormatForPath(path string) (ExportFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatExcel, nil
	case ".h", ".hpp":
		return FormatHeader, nil
	default:
		return "", &ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("cannot tell export format from %q (use .json, .xlsx or .h)", path),
		}
	}
}

// EnsureJSONExt appends .json to path unless it already ends in it
func EnsureJSONExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return path
	}
	return path + ".json"
}
