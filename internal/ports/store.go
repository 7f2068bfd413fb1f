package ports

import "keyframer/internal/domain"

// TimelineStore defines the interface for reading and writing keyframe files
type TimelineStore interface {
	// Load decodes a JSON keyframe file into a new, unowned timeline.
	// Callers swap it in with Timeline.Replace so a failed load leaves the
	// current timeline untouched.
	Load(path string) (*domain.Timeline, error)

	// Export operations. Each writes to a temporary file and renames it
	// over path, so readers never see a partial file.
	ExportJSON(tl *domain.Timeline, path string, opts ...domain.ExportOption) error
	ExportExcel(tl *domain.Timeline, path string) error
	ExportHeader(tl *domain.Timeline, path string) error

	// LoadFrames reads an exported file the way the playback engine does
	LoadFrames(path string, opts domain.FrameOptions) (*domain.FrameSet, error)
}
