package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Header is the fixed first line of the compiled notes document.
const Header = "# Final Lecture Notes\n\n"

var summaryNameRe = regexp.MustCompile(`^summary_(\d+)\.txt$`)

// Compile concatenates all summary units in index order into the final
// notes file, and optionally renders a DOCX copy beside it.
func (c *implCompiler) Compile(ctx context.Context, summariesDir, notesPath string) error {
	units, err := scanSummaries(summariesDir)
	if err != nil {
		return fmt.Errorf("scan summaries: %w", err)
	}

	var b strings.Builder
	b.WriteString(Header)
	for _, u := range units {
		content, err := os.ReadFile(u.path)
		if err != nil {
			return fmt.Errorf("read summary %s: %w", u.path, err)
		}
		b.Write(content)
		b.WriteString("\n\n")
	}

	if err := os.MkdirAll(filepath.Dir(notesPath), 0755); err != nil {
		return fmt.Errorf("create notes directory: %w", err)
	}
	if err := os.WriteFile(notesPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write final notes: %w", err)
	}

	c.logger.Info(ctx, "Compiled %d summaries into %s", len(units), notesPath)

	if c.cfg.Notes.ExportDocx {
		docxPath := strings.TrimSuffix(notesPath, filepath.Ext(notesPath)) + ".docx"
		if err := renderDocx(b.String(), docxPath); err != nil {
			// The text document is the artifact of record; the DOCX copy
			// is a convenience export.
			c.logger.Warn(ctx, "DOCX export failed: %v", err)
		} else {
			c.logger.Info(ctx, "Exported notes to %s", docxPath)
		}
	}

	return nil
}

type summaryUnit struct {
	index int
	path  string
}

func scanSummaries(dir string) ([]summaryUnit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var units []summaryUnit
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := summaryNameRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		units = append(units, summaryUnit{index: index, path: filepath.Join(dir, e.Name())})
	}

	sort.Slice(units, func(i, j int) bool { return units[i].index < units[j].index })
	return units, nil
}
