package notes

import "context"

// Compiler assembles per-segment summaries into the final notes document
type Compiler interface {
	// Compile scans summariesDir for summary units, concatenates them in
	// index order under the notes header and writes the result to
	// notesPath. Re-running with the same inputs is byte-identical.
	Compile(ctx context.Context, summariesDir, notesPath string) error
}
