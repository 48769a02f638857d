package ui

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/brady131313/rtiow/internal/engine"
)

// renderJob is one render request captured from the parameter panel.
type renderJob struct {
	id     uuid.UUID
	config engine.CameraConfig
}

// jobMailbox hands jobs to the render worker, keeping only the newest.
// A submission replaces any job still waiting in the slot; a render that
// is already in flight is never interrupted.
type jobMailbox struct {
	slot chan renderJob
}

func newJobMailbox() *jobMailbox {
	return &jobMailbox{slot: make(chan renderJob, 1)}
}

// Submit places job in the slot, draining a queued job first if the slot
// is occupied. Submit never blocks on the worker.
func (m *jobMailbox) Submit(job renderJob) {
	for {
		select {
		case m.slot <- job:
			return
		default:
		}
		select {
		case <-m.slot:
		default:
		}
	}
}

// Next blocks until a job is available and removes it from the slot.
func (m *jobMailbox) Next() renderJob {
	return <-m.slot
}

// progressGauge accumulates render progress from worker goroutines so the
// UI can poll it on a timer instead of refreshing per completed row.
type progressGauge struct {
	total atomic.Int64
	done  atomic.Int64
}

var _ engine.ProgressTracker = (*progressGauge)(nil)

func (g *progressGauge) Init(total int) {
	g.total.Store(int64(total))
	g.done.Store(0)
}

func (g *progressGauge) Tick(completed int) {
	g.done.Store(int64(completed))
}

// Fraction reports completed work in [0, 1].
func (g *progressGauge) Fraction() float64 {
	total := g.total.Load()
	if total <= 0 {
		return 0
	}
	return float64(g.done.Load()) / float64(total)
}
