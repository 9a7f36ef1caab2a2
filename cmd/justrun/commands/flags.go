package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/justrun/internal/app"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// optionFlags holds the persistent flags mirroring domain.Options.
type optionFlags struct {
	config      string
	workingDir  string
	entry       string
	build       string
	inputs      []string
	logging     bool
	mode        string
	interpreter string
	symbol      string
	parallelism int
}

func bindOptionFlags(cmd *cobra.Command) *optionFlags {
	f := &optionFlags{}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "Path to the config file (default: justrun.{yaml,yml,jsonc,json} in the current directory)")
	pf.StringVarP(&f.workingDir, "cwd", "C", "", "Working directory every other path is resolved against")
	pf.StringVarP(&f.entry, "entry", "e", "", "Entry artifact produced by the build")
	pf.StringVarP(&f.build, "build", "b", "", "Build command run when the inputs changed")
	pf.StringArrayVarP(&f.inputs, "input", "i", nil, "Input file or directory (repeatable)")
	pf.BoolVarP(&f.logging, "log", "l", false, "Report decisions and build output on stderr")
	pf.StringVarP(&f.mode, "mode", "m", "", "Invocation mode: spawn-and-forward-streams or blocking-import")
	pf.StringVar(&f.interpreter, "interpreter", "", "Program the artifact is passed to in spawn mode (e.g. node)")
	pf.StringVar(&f.symbol, "symbol", "", "Symbol looked up in the artifact in import mode (default: Main)")
	pf.IntVarP(&f.parallelism, "parallelism", "p", 0, "Files hashed concurrently (default: number of CPUs)")
	return f
}

// cwd returns the directory config discovery starts from.
func (f *optionFlags) cwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return cwd, nil
}

// overrides returns one override per flag set on the command line.
func (f *optionFlags) overrides(cmd *cobra.Command, cwd string) []app.Override {
	changed := cmd.Flags().Changed
	var out []app.Override

	if changed("cwd") {
		dir := f.workingDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		dir = filepath.Clean(dir)
		out = append(out, func(o *domain.Options) { o.WorkingDir = dir })
	}
	if changed("entry") {
		out = append(out, func(o *domain.Options) { o.EntryArtifact = f.entry })
	}
	if changed("build") {
		out = append(out, func(o *domain.Options) { o.BuildCommand = f.build })
	}
	if changed("input") {
		out = append(out, func(o *domain.Options) { o.Inputs = f.inputs })
	}
	if changed("log") {
		out = append(out, func(o *domain.Options) { o.LoggingEnabled = f.logging })
	}
	if changed("mode") {
		out = append(out, func(o *domain.Options) { o.Mode = domain.InvocationMode(f.mode) })
	}
	if changed("interpreter") {
		out = append(out, func(o *domain.Options) { o.Interpreter = f.interpreter })
	}
	if changed("symbol") {
		out = append(out, func(o *domain.Options) { o.Symbol = f.symbol })
	}
	if changed("parallelism") {
		out = append(out, func(o *domain.Options) { o.Parallelism = f.parallelism })
	}
	return out
}
