package transcriber

import "context"

// Transcriber defines the interface for the speech-to-text collaborator
type Transcriber interface {
	// Transcribe converts one audio file to text. A non-zero exit or any
	// stderr output from the worker is a failure; the caller decides what
	// an empty result means for its unit.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
