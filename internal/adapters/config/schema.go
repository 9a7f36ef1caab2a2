package config

// Runfile represents the structure of a justrun config file.
// JSON and JSONC files use the same keys.
type Runfile struct {
	WorkingDirectory string   `yaml:"workingDirectory" json:"workingDirectory"`
	EntryArtifact    string   `yaml:"entryArtifact" json:"entryArtifact"`
	BuildCommand     string   `yaml:"buildCommand" json:"buildCommand"`
	Inputs           []string `yaml:"inputs" json:"inputs"`
	LoggingEnabled   bool     `yaml:"loggingEnabled" json:"loggingEnabled"`
	InvocationMode   string   `yaml:"invocationMode" json:"invocationMode"`
	Interpreter      string   `yaml:"interpreter" json:"interpreter"`
	Symbol           string   `yaml:"symbol" json:"symbol"`
	Parallelism      int      `yaml:"parallelism" json:"parallelism"`
}
