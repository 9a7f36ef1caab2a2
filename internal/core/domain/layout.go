package domain

import "path/filepath"

const (
	// CacheFileName is the name of the sidecar file holding the cache record.
	CacheFileName = ".run-tool-cache"

	// DefaultSymbol is the symbol looked up in an imported artifact.
	DefaultSymbol = "Main"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigFileNames lists the config files searched for, in order.
var ConfigFileNames = []string{
	"justrun.yaml",
	"justrun.yml",
	"justrun.jsonc",
	"justrun.json",
}

// CacheRecordPath returns the path of the cache record for a working directory.
func CacheRecordPath(cwd string) string {
	return filepath.Join(cwd, CacheFileName)
}
