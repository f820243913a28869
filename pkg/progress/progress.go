// Package progress reports a combination run on plain terminals and pipes.
package progress

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"textcombiner/pkg/combine"
)

// DefaultInterval is how often the reporter polls the event channel.
const DefaultInterval = 100 * time.Millisecond

// Reporter drives a progress bar from worker events.
type Reporter struct {
	out      io.Writer // Final summary
	barOut   io.Writer // Progress bar rendering
	logger   *zap.Logger
	interval time.Duration
	bar      *progressbar.ProgressBar
}

// NewReporter creates a Reporter printing the summary to out and the bar to barOut.
func NewReporter(out, barOut io.Writer, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		out:      out,
		barOut:   barOut,
		logger:   logger,
		interval: DefaultInterval,
	}
}

// Consume polls events until the channel is closed and returns the completion
// summary, or an error carrying the text of an Error event.
func (r *Reporter) Consume(events <-chan combine.Event) (string, error) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var summary string
	var runErr error
	for range ticker.C {
		closed := false
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					closed = true
					break drain
				}
				switch ev.Kind {
				case combine.EventDone:
					summary = ev.Text
				case combine.EventError:
					runErr = errors.New(ev.Text)
				}
				r.handle(ev)
			default:
				break drain
			}
		}
		if closed {
			break
		}
	}

	if runErr != nil {
		return "", runErr
	}
	return summary, nil
}

func (r *Reporter) handle(ev combine.Event) {
	switch ev.Kind {
	case combine.EventStatus:
		r.logger.Debug("Status", zap.String("status", ev.Text))
		if r.bar != nil {
			r.bar.Describe(ev.Text)
		}
	case combine.EventProgressMax:
		r.start(ev.Value)
	case combine.EventProgress:
		if r.bar != nil {
			_ = r.bar.Set(ev.Value)
		}
	case combine.EventDone:
		if r.bar != nil {
			_ = r.bar.Finish()
		}
		fmt.Fprintln(r.out, ev.Text)
	case combine.EventError:
		if r.bar != nil {
			_ = r.bar.Exit()
		}
		r.logger.Debug("Run failed", zap.String("error", ev.Text))
	}
}

// start creates the bar for total candidates. No bar is drawn for an empty run.
func (r *Reporter) start(total int) {
	if total <= 0 {
		r.bar = nil
		return
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Combining"),
		progressbar.OptionSetWriter(r.barOut),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(r.interval),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(r.barOut, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}
