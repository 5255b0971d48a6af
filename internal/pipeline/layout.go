package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// On-disk artifact names, relative to the working directory. The zero-padded
// three-digit index keeps filenames humanly sortable; ordering logic parses
// the index instead of relying on the filesystem sort.
const (
	chunksDirName      = "audio_chunks"
	transcriptsDirName = "transcripts"
	summariesDirName   = "summaries"
	notesDirName       = "notes"

	recordingFileName     = "recording.wav"
	cleanTranscriptName   = "lecture_clean.txt"
	finalNotesFileName    = "final_notes.txt"
	transcriptFilePattern = "batch_%03d.txt"
	summaryFilePattern    = "summary_%03d.txt"
)

var transcriptNameRe = regexp.MustCompile(`^batch_(\d+)\.txt$`)

// Layout resolves every pipeline artifact path under one working directory.
type Layout struct {
	workDir string
}

// NewLayout creates a Layout rooted at workDir.
func NewLayout(workDir string) Layout {
	return Layout{workDir: workDir}
}

func (l Layout) WorkDir() string        { return l.workDir }
func (l Layout) RecordingPath() string  { return filepath.Join(l.workDir, recordingFileName) }
func (l Layout) ChunksDir() string      { return filepath.Join(l.workDir, chunksDirName) }
func (l Layout) TranscriptsDir() string { return filepath.Join(l.workDir, transcriptsDirName) }
func (l Layout) SummariesDir() string   { return filepath.Join(l.workDir, summariesDirName) }
func (l Layout) NotesDir() string       { return filepath.Join(l.workDir, notesDirName) }

func (l Layout) CleanTranscriptPath() string {
	return filepath.Join(l.workDir, cleanTranscriptName)
}

func (l Layout) NotesPath() string {
	return filepath.Join(l.NotesDir(), finalNotesFileName)
}

// TranscriptPath returns the transcript unit file for a chunk index.
func (l Layout) TranscriptPath(index int) string {
	return filepath.Join(l.TranscriptsDir(), fmt.Sprintf(transcriptFilePattern, index))
}

// SummaryPath returns the summary unit file for a segment index.
func (l Layout) SummaryPath(index int) string {
	return filepath.Join(l.SummariesDir(), fmt.Sprintf(summaryFilePattern, index))
}

// Ensure creates the artifact directories the stages write into.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.TranscriptsDir(), l.SummariesDir(), l.NotesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// unit is one indexed artifact file tracked by a stage.
type unit struct {
	Index int
	Path  string
}

// scanTranscripts rebuilds the ordered transcript unit list from disk.
// A missing directory yields an empty list.
func scanTranscripts(dir string) ([]unit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var units []unit
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := transcriptNameRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		units = append(units, unit{Index: index, Path: filepath.Join(dir, e.Name())})
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Index < units[j].Index })
	return units, nil
}

// unitDone reports whether a unit's output file exists with content.
// Presence with nonzero size is the completion marker; such a unit is
// never overwritten.
func unitDone(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
