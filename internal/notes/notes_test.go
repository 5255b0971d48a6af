package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
)

func testConfig(t *testing.T, exportDocx bool) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Paths:       config.PathsConfig{WorkDir: t.TempDir()},
		Transcriber: config.TranscriberConfig{BinaryPath: "./transcribe-worker"},
		Notes:       config.NotesConfig{ExportDocx: exportDocx},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}
	return cfg
}

func writeSummaries(t *testing.T, dir string, contents map[int]string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for i, text := range contents {
		path := filepath.Join(dir, fmt.Sprintf("summary_%03d.txt", i))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCompileOrdering(t *testing.T) {
	ctx := context.Background()
	summariesDir := t.TempDir()
	writeSummaries(t, summariesDir, map[int]string{
		0:  "- first part",
		2:  "- third part",
		10: "- eleventh part",
		1:  "- second part",
	})

	notesPath := filepath.Join(t.TempDir(), "notes", "final_notes.txt")
	comp := New(testConfig(t, false), logger.New("error"))
	if err := comp.Compile(ctx, summariesDir, notesPath); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	data, err := os.ReadFile(notesPath)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	got := string(data)

	if !strings.HasPrefix(got, "# Final Lecture Notes\n\n") {
		t.Errorf("notes missing header, got prefix %q", got[:min(len(got), 30)])
	}

	order := []string{"first part", "second part", "third part", "eleventh part"}
	last := -1
	for _, want := range order {
		idx := strings.Index(got, want)
		if idx < 0 {
			t.Fatalf("notes missing %q", want)
		}
		if idx < last {
			t.Errorf("%q appears out of order", want)
		}
		last = idx
	}
}

func TestCompileIdempotent(t *testing.T) {
	ctx := context.Background()
	summariesDir := t.TempDir()
	writeSummaries(t, summariesDir, map[int]string{0: "- alpha", 1: "- beta"})

	notesPath := filepath.Join(t.TempDir(), "final_notes.txt")
	comp := New(testConfig(t, false), logger.New("error"))

	if err := comp.Compile(ctx, summariesDir, notesPath); err != nil {
		t.Fatalf("first Compile() error = %v", err)
	}
	first, err := os.ReadFile(notesPath)
	if err != nil {
		t.Fatal(err)
	}

	if err := comp.Compile(ctx, summariesDir, notesPath); err != nil {
		t.Fatalf("second Compile() error = %v", err)
	}
	second, err := os.ReadFile(notesPath)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("Compile() is not idempotent over unchanged summaries")
	}
}

func TestCompileEmptyDir(t *testing.T) {
	ctx := context.Background()
	notesPath := filepath.Join(t.TempDir(), "final_notes.txt")
	comp := New(testConfig(t, false), logger.New("error"))

	if err := comp.Compile(ctx, filepath.Join(t.TempDir(), "missing"), notesPath); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	data, err := os.ReadFile(notesPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Header {
		t.Errorf("notes = %q, want bare header", string(data))
	}
}

func TestCompileIgnoresForeignFiles(t *testing.T) {
	ctx := context.Background()
	summariesDir := t.TempDir()
	writeSummaries(t, summariesDir, map[int]string{0: "- real content"})
	if err := os.WriteFile(filepath.Join(summariesDir, "notes.bak"), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(summariesDir, "summary_abc.txt"), []byte("bogus"), 0644); err != nil {
		t.Fatal(err)
	}

	notesPath := filepath.Join(t.TempDir(), "final_notes.txt")
	comp := New(testConfig(t, false), logger.New("error"))
	if err := comp.Compile(ctx, summariesDir, notesPath); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	data, err := os.ReadFile(notesPath)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if strings.Contains(got, "stale") || strings.Contains(got, "bogus") {
		t.Errorf("notes picked up non-summary files: %q", got)
	}
	if !strings.Contains(got, "real content") {
		t.Errorf("notes missing summary content: %q", got)
	}
}

func TestCompileDocxExport(t *testing.T) {
	ctx := context.Background()
	summariesDir := t.TempDir()
	writeSummaries(t, summariesDir, map[int]string{0: "- **bold** point\n- plain point"})

	notesDir := t.TempDir()
	notesPath := filepath.Join(notesDir, "final_notes.txt")
	comp := New(testConfig(t, true), logger.New("error"))
	if err := comp.Compile(ctx, summariesDir, notesPath); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	docxPath := filepath.Join(notesDir, "final_notes.docx")
	info, err := os.Stat(docxPath)
	if err != nil {
		t.Fatalf("expected DOCX export at %s: %v", docxPath, err)
	}
	if info.Size() == 0 {
		t.Error("DOCX export is empty")
	}
}
