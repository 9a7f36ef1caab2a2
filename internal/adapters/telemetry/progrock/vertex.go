package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/justrun/internal/core/domain"
)

// vertex adapts a progrock vertex to ports.Vertex.
type vertex struct {
	rec *progrock.VertexRecorder
}

func (v *vertex) Stdout() io.Writer { return v.rec.Stdout() }

func (v *vertex) Stderr() io.Writer { return v.rec.Stderr() }

// Log appends msg to the vertex output. Warnings and errors go to its error stream.
func (v *vertex) Log(level domain.LogLevel, msg string) {
	w := v.rec.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.rec.Stderr()
	}
	_, _ = io.WriteString(w, msg+"\n")
}

func (v *vertex) Complete(err error) { v.rec.Done(err) }

func (v *vertex) Cached() { v.rec.Cached() }
