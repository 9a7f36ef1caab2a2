package progrock

import (
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/justrun/internal/core/ports"
)

var _ progrock.Writer = (*SummaryWriter)(nil)

// SummaryWriter is a progrock.Writer that reports every vertex once, when
// it completes, as a single line on a logger.
type SummaryWriter struct {
	sink ports.Logger

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewSummaryWriter creates a SummaryWriter logging to sink.
func NewSummaryWriter(sink ports.Logger) *SummaryWriter {
	return &SummaryWriter{
		sink:     sink,
		reported: make(map[string]struct{}),
	}
}

// WriteStatus logs the vertices of update that completed since the last call.
func (w *SummaryWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if v.GetCompleted() == nil {
			continue
		}
		if _, done := w.reported[v.GetId()]; done {
			continue
		}
		w.reported[v.GetId()] = struct{}{}

		switch {
		case v.GetError() != "":
			w.sink.Warn(v.GetName() + ": failed: " + v.GetError())
		case v.GetCached():
			w.sink.Info(v.GetName() + ": cached")
		default:
			took := time.Duration(0)
			if v.GetStarted() != nil {
				took = v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).Round(time.Millisecond)
			}
			w.sink.Info(v.GetName() + ": done in " + took.String())
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (w *SummaryWriter) Close() error {
	return nil
}
