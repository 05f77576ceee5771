package search

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/poiesic/scout/core"
)

// ProgressWriter is a SearchMonitor that prints search progress to a
// terminal, one line per step.
type ProgressWriter struct {
	writer    io.Writer
	total     int
	current   int
	startTime time.Time
	started   bool
	mu        sync.Mutex
}

var _ SearchMonitor = (*ProgressWriter)(nil)

// NewProgressWriter creates a progress writer.
// writer: where to write progress output (typically os.Stderr)
// total: number of steps the search reports, zero when unknown
func NewProgressWriter(writer io.Writer, total int) *ProgressWriter {
	return &ProgressWriter{
		writer: writer,
		total:  total,
	}
}

// Start begins tracking progress.
func (p *ProgressWriter) Start(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.current = 0
	fmt.Fprintf(p.writer, "Searching: %s\n", query)
}

// StepStarted prints the step that became active.
func (p *ProgressWriter) StepStarted(step core.ProgressStep) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current++
	if p.total > 0 {
		fmt.Fprintf(p.writer, "[%d/%d] %s...\n", p.current, p.total, step.Text)
		return
	}
	fmt.Fprintf(p.writer, "%s...\n", step.Text)
}

func (p *ProgressWriter) StepDone(core.ProgressStep) {}

// Fallback notes that fallback data will be served.
func (p *ProgressWriter) Fallback(reason error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	fmt.Fprintf(p.writer, "Using fallback data: %v\n", reason)
}

// Finish prints the result count and elapsed time.
func (p *ProgressWriter) Finish(count int, source core.ResultSource) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	elapsed := time.Since(p.startTime)
	fmt.Fprintf(p.writer, "Found %d results (%s) in %s\n", count, source, elapsed.Round(time.Millisecond))
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressWriter) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}
