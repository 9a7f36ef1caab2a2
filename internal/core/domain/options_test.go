package domain_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/zerr"
)

func validOptions() domain.Options {
	return domain.Options{
		WorkingDir:    "/work",
		EntryArtifact: "dist/main.js",
		BuildCommand:  "npm run build",
		Inputs:        []string{"src"},
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want domain.InvocationMode
	}{
		{"", domain.ModeSpawn},
		{"spawn-and-forward-streams", domain.ModeSpawn},
		{"spawn", domain.ModeSpawn},
		{" Script ", domain.ModeSpawn},
		{"blocking-import", domain.ModeImport},
		{"import", domain.ModeImport},
		{"MODULE", domain.ModeImport},
	}

	for _, tt := range tests {
		got, err := domain.ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMode_Invalid(t *testing.T) {
	_, err := domain.ParseMode("fork")
	if !errors.Is(err, domain.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if mode, ok := zErr.Metadata()["mode"].(string); !ok || mode != "fork" {
		t.Errorf("expected metadata mode=fork, got %v", zErr.Metadata()["mode"])
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Options)
		wantErr error
	}{
		{name: "valid", mutate: func(*domain.Options) {}},
		{name: "explicitly empty inputs", mutate: func(o *domain.Options) { o.Inputs = []string{} }},
		{name: "undeclared inputs", mutate: func(o *domain.Options) { o.Inputs = nil }, wantErr: domain.ErrInvalidOptions},
		{name: "missing working dir", mutate: func(o *domain.Options) { o.WorkingDir = "" }, wantErr: domain.ErrInvalidOptions},
		{name: "unterminated quote in build", mutate: func(o *domain.Options) { o.BuildCommand = `sh -c "make` }, wantErr: domain.ErrInvalidOptions},
		{name: "operator in build", mutate: func(o *domain.Options) { o.BuildCommand = "make && make test" }, wantErr: domain.ErrCommandSyntax},
		{name: "quoted interpreter", mutate: func(o *domain.Options) { o.Interpreter = `node --title "my app"` }},
		{name: "malformed interpreter", mutate: func(o *domain.Options) { o.Interpreter = "node 'x" }, wantErr: domain.ErrInvalidOptions},
		{name: "missing entry", mutate: func(o *domain.Options) { o.EntryArtifact = "" }, wantErr: domain.ErrInvalidOptions},
		{name: "blank build", mutate: func(o *domain.Options) { o.BuildCommand = " \t" }, wantErr: domain.ErrInvalidOptions},
		{name: "bad mode", mutate: func(o *domain.Options) { o.Mode = "fork" }, wantErr: domain.ErrInvalidMode},
		{name: "negative parallelism", mutate: func(o *domain.Options) { o.Parallelism = -1 }, wantErr: domain.ErrInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOptions_EntryPath(t *testing.T) {
	opts := validOptions()
	if got, want := opts.EntryPath(), filepath.Join("/work", "dist", "main.js"); got != want {
		t.Errorf("EntryPath() = %q, want %q", got, want)
	}

	opts.EntryArtifact = "/opt/app/../app/main.js"
	if got, want := opts.EntryPath(), "/opt/app/main.js"; got != want {
		t.Errorf("EntryPath() = %q, want %q", got, want)
	}
}

func TestOptions_SymbolName(t *testing.T) {
	opts := validOptions()
	if got := opts.SymbolName(); got != domain.DefaultSymbol {
		t.Errorf("SymbolName() = %q, want %q", got, domain.DefaultSymbol)
	}

	opts.Symbol = "Serve"
	if got := opts.SymbolName(); got != "Serve" {
		t.Errorf("SymbolName() = %q, want Serve", got)
	}
}

func TestOptions_Check(t *testing.T) {
	bare := domain.Options{WorkingDir: "/work"}
	if err := bare.Check(domain.RequireWorkingDir); err != nil {
		t.Errorf("Check(RequireWorkingDir): unexpected error: %v", err)
	}
	if err := bare.Check(domain.RequireInputs); !errors.Is(err, domain.ErrInvalidOptions) {
		t.Errorf("Check(RequireInputs) = %v, want ErrInvalidOptions", err)
	}

	bare.Inputs = []string{}
	if err := bare.Check(domain.RequireInputs); err != nil {
		t.Errorf("Check(RequireInputs) with empty inputs: unexpected error: %v", err)
	}
	if err := bare.Check(domain.RequireAll); !errors.Is(err, domain.ErrInvalidOptions) {
		t.Errorf("Check(RequireAll) = %v, want ErrInvalidOptions", err)
	}

	bare.Parallelism = -2
	if err := bare.Check(domain.RequireWorkingDir); !errors.Is(err, domain.ErrInvalidOptions) {
		t.Errorf("Check(RequireWorkingDir) with negative parallelism = %v, want ErrInvalidOptions", err)
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		command string
		want    []string
	}{
		{"  npm run   build\t--prod ", []string{"npm", "run", "build", "--prod"}},
		{`sh -c "echo hi > built"`, []string{"sh", "-c", "echo hi > built"}},
		{`go build -ldflags "-X main.v=1" -o 'out dir/app'`, []string{"go", "build", "-ldflags", "-X main.v=1", "-o", "out dir/app"}},
		{`cp my\ file.txt dist`, []string{"cp", "my file.txt", "dist"}},
	}

	for _, tt := range tests {
		got, err := domain.SplitCommand(tt.command)
		if err != nil {
			t.Errorf("SplitCommand(%q): unexpected error: %v", tt.command, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCommand(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}

func TestSplitCommand_Errors(t *testing.T) {
	tests := []struct {
		command string
		wantErr error
	}{
		{"   ", domain.ErrEmptyCommand},
		{`sh -c "make`, domain.ErrCommandSyntax},
		{"tsc && cp a b", domain.ErrCommandSyntax},
		{"make > build.log", domain.ErrCommandSyntax},
	}

	for _, tt := range tests {
		if _, err := domain.SplitCommand(tt.command); !errors.Is(err, tt.wantErr) {
			t.Errorf("SplitCommand(%q) = %v, want %v", tt.command, err, tt.wantErr)
		}
	}
}

func TestSplitWords_Blank(t *testing.T) {
	words, err := domain.SplitWords(" ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("SplitWords() = %q, want no words", words)
	}
}
