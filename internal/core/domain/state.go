package domain

// RunState is the final state of a run.
type RunState string

const (
	// StateDone means the artifact was invoked successfully.
	StateDone RunState = "done"
	// StateFail means the run aborted.
	StateFail RunState = "fail"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Payload is the implementation-defined value produced by an imported artifact.
type Payload any

// SpawnSpec describes a child process whose streams are forwarded.
type SpawnSpec struct {
	// Argv is the program followed by its arguments.
	Argv []string
	// Dir is the working directory of the child.
	Dir string
}
