package orchestrator

import (
	"bytes"
	"sync"
)

// logWriter turns a byte stream into one log call per line.
// A trailing partial line is held back until Flush.
type logWriter struct {
	mu   sync.Mutex
	emit func(string)
	buf  []byte
}

func newLogWriter(emit func(string)) *logWriter {
	return &logWriter{emit: emit}
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(bytes.TrimSuffix(w.buf[:i], []byte("\r"))))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}
