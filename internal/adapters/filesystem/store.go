package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"keyframer/internal/domain"
)

// SheetName is the worksheet written by ExportExcel
const SheetName = "Keyframes"

// Store implements ports.TimelineStore on the local filesystem. It holds no
// state and is safe for concurrent use.
type Store struct{}

// NewStore creates a new filesystem store
func NewStore() *Store {
	return &Store{}
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// Load decodes a JSON keyframe file into a new timeline
func (s *Store) Load(path string) (*domain.Timeline, error) {
	path = ExpandPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	tl, err := domain.DecodeTimeline(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return tl, nil
}

// LoadFrames reads an exported JSON file into per-track frame arrays
func (s *Store) LoadFrames(path string, opts domain.FrameOptions) (*domain.FrameSet, error) {
	path = ExpandPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	fs, err := domain.DecodeFrames(f, opts)
	if err != nil {
		return nil, withPath(err, path)
	}
	return fs, nil
}

// ExportJSON writes the timeline as indented JSON
func (s *Store) ExportJSON(tl *domain.Timeline, path string, opts ...domain.ExportOption) error {
	var buf bytes.Buffer
	if err := tl.EncodeJSON(&buf, opts...); err != nil {
		return err
	}
	return writeAtomic(ExpandPath(path), buf.Bytes())
}

// ExportHeader writes the timeline as C++ constexpr arrays
func (s *Store) ExportHeader(tl *domain.Timeline, path string) error {
	var buf bytes.Buffer
	if err := tl.EncodeHeader(&buf); err != nil {
		return err
	}
	return writeAtomic(ExpandPath(path), buf.Bytes())
}

// ExportExcel writes one row per track and one column per keyframe time.
// The first column holds track names and the first row holds times; cells
// without a node stay empty.
func (s *Store) ExportExcel(tl *domain.Timeline, path string) error {
	path = ExpandPath(path)
	grid := tl.Grid()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
	}

	for col, t := range grid.Times {
		cell, err := excelize.CoordinatesToCellName(col+2, 1)
		if err != nil {
			return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
		}
		if err := f.SetCellFloat(SheetName, cell, t, -1, 64); err != nil {
			return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
		}
	}

	for r, row := range grid.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
		}
		if err := f.SetCellStr(SheetName, cell, row.Track); err != nil {
			return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
		}
		for col, v := range row.Cells {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+2, r+2)
			if err != nil {
				return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
			}
			if err := f.SetCellFloat(SheetName, cell, *v, -1, 64); err != nil {
				return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return &domain.IOError{Op: "build spreadsheet", Path: path, Err: err}
	}
	return writeAtomic(path, buf.Bytes())
}

// writeAtomic writes data to a temporary file in the target directory and
// renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.IOError{Op: "create directory", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.IOError{Op: "create", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	// Keep the mode of a file being replaced
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return &domain.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &domain.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// withPath attaches the file path to a format error
func withPath(err error, path string) error {
	if fe, ok := err.(*domain.FormatError); ok {
		copied := *fe
		copied.Path = path
		return &copied
	}
	return err
}
