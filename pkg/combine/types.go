package combine

import "fmt"

// Arguments holds the inputs of a single combine run.
type Arguments struct {
	InputDir       string // The directory to walk
	Output         string // The combined output file
	ExcludeFiles   string // Regex matched against file base names; empty excludes nothing
	ExcludeFolders string // Regex matched against folder base names; empty excludes nothing
}

// Result tallies the outcome of a completed run.
type Result struct {
	Processed int // Files written to the output
	Skipped   int // Binary or unreadable files
}

// Total returns the number of candidates the run went through.
func (r Result) Total() int {
	return r.Processed + r.Skipped
}

// Summary returns the human-readable completion message.
func (r Result) Summary() string {
	return fmt.Sprintf("Done. Combined %d files. Skipped %d (binary/unreadable).", r.Processed, r.Skipped)
}

// EventKind identifies the type of message sent from the worker.
type EventKind int

const (
	EventStatus      EventKind = iota // Transient status text
	EventProgressMax                  // Total number of candidates, sent once
	EventProgress                     // 1-based index of the file being processed
	EventDone                         // Run finished; Text holds the summary
	EventError                        // Run aborted; Text holds the reason
)

func (k EventKind) String() string {
	switch k {
	case EventStatus:
		return "status"
	case EventProgressMax:
		return "progress_max"
	case EventProgress:
		return "progress_update"
	case EventDone:
		return "done"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single message from the worker to the presentation layer.
type Event struct {
	Kind  EventKind
	Text  string
	Value int
}

// Terminal reports whether no further events follow this one.
func (e Event) Terminal() bool {
	return e.Kind == EventDone || e.Kind == EventError
}

// Phase is the lifecycle state of a run.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseCollecting
	PhaseProcessing
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCollecting:
		return "collecting"
	case PhaseProcessing:
		return "processing"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Constants
const (
	ProbeSize   = 1024 // Bytes inspected for NUL before a file is read as text
	EventBuffer = 64   // Capacity of the channel returned by Combiner.Start
)
