package domain_test

import (
	"errors"
	"io/fs"
	"testing"

	"go.trai.ch/justrun/internal/core/domain"
)

func TestMark(t *testing.T) {
	detail := &fs.PathError{Op: "open", Path: "/work/src/a.ts", Err: fs.ErrPermission}
	err := domain.Mark(domain.ErrIO, detail)

	if !errors.Is(err, domain.ErrIO) {
		t.Error("expected the kind to match")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected the wrapped error to match")
	}
	if errors.Is(err, domain.ErrMissingInput) {
		t.Error("unexpected match with another kind")
	}
	if err.Error() != detail.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), detail.Error())
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != "/work/src/a.ts" {
		t.Errorf("expected *fs.PathError in chain, got %v", pathErr)
	}
}

func TestMark_Nil(t *testing.T) {
	if err := domain.Mark(domain.ErrIO, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level domain.LogLevel
		want  string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(99), "INFO"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
