// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Combiner runs the collect-then-process sequence against a filesystem.
type Combiner struct {
	fs     afero.Fs
	logger *zap.Logger
	phase  atomic.Int32
}

// NewCombiner returns a Combiner reading and writing through fsys.
func NewCombiner(fsys afero.Fs, logger *zap.Logger) *Combiner {
	if logger == nil {
		logger = zap.NewNop() // Use no-op logger if none is provided
	}
	return &Combiner{fs: fsys, logger: logger}
}

// Phase returns the state of the current or last run.
func (c *Combiner) Phase() Phase {
	return Phase(c.phase.Load())
}

func (c *Combiner) setPhase(p Phase) {
	c.phase.Store(int32(p))
	c.logger.Debug("Combine phase changed", zap.Stringer("phase", p))
}

// Start runs the combination on a new goroutine. The returned channel delivers
// events in emission order and is closed after the Done or Error event.
func (c *Combiner) Start(args Arguments) <-chan Event {
	events := make(chan Event, EventBuffer)
	go func() {
		defer close(events)
		_, _ = c.Run(args, events)
	}()
	return events
}

// Run executes one combination synchronously, sending events to events when it is non-nil.
// A terminal Done or Error event is always the last event sent.
func (c *Combiner) Run(args Arguments, events chan<- Event) (Result, error) {
	startTime := time.Now()
	c.logger.Info("Starting combination process",
		zap.String("directory", args.InputDir),
		zap.String("output", args.Output))

	filePattern, folderPattern, err := CompilePatterns(args.ExcludeFiles, args.ExcludeFolders)
	if err != nil {
		return c.fail(events, err)
	}

	absOutput, err := filepath.Abs(args.Output)
	if err != nil {
		return c.fail(events, fmt.Errorf("failed to resolve output path: %w", err))
	}

	c.setPhase(PhaseCollecting)
	candidates, err := CollectCandidates(c.fs, args.InputDir, CollectOptions{
		Files:   filePattern,
		Folders: folderPattern,
		Output:  absOutput,
		OnOutputSkipped: func(name string) {
			emit(events, Event{Kind: EventStatus, Text: "Skipping output file itself: " + name})
		},
	}, c.logger)
	if err != nil {
		return c.fail(events, fmt.Errorf("failed to collect files: %w", err))
	}
	emit(events, Event{Kind: EventProgressMax, Value: len(candidates)})

	c.setPhase(PhaseProcessing)
	result, err := c.processFiles(candidates, absOutput, events)
	if err != nil {
		return c.fail(events, err)
	}

	c.setPhase(PhaseDone)
	c.logger.Info("Combination process completed",
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Duration("elapsed", time.Since(startTime)))
	emit(events, Event{Kind: EventDone, Text: result.Summary()})
	return result, nil
}

func (c *Combiner) fail(events chan<- Event, err error) (Result, error) {
	c.setPhase(PhaseFailed)
	c.logger.Error("Combination process failed", zap.Error(err))
	emit(events, Event{Kind: EventError, Text: err.Error()})
	return Result{}, err
}
