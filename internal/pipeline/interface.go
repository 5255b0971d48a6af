package pipeline

import "context"

// Pipeline defines the interface for batch pipeline operations
type Pipeline interface {
	// Run executes the full pipeline over one audio file: normalize,
	// chunk, transcribe, merge, summarize, compile. One run at a time;
	// a second call while active returns ErrAlreadyRunning.
	Run(ctx context.Context, audioPath string) error

	// RunTranscription executes only the audio half: normalize, chunk,
	// transcribe, merge.
	RunTranscription(ctx context.Context, audioPath string) error

	// RunSummarization executes only the text half over the merged
	// transcript: segment, summarize, compile.
	RunSummarization(ctx context.Context) error

	// Stop requests a cooperative stop, honored at the next unit
	// boundary. In-flight collaborator calls are never interrupted.
	Stop() error

	// Status returns a point-in-time copy of the run state.
	Status() Snapshot

	// CleanArtifacts removes chunk, transcript, summary and notes files
	// from previous runs. The recording itself is kept.
	CleanArtifacts(ctx context.Context) error
}
