// Package version exposes build metadata stamped at link time.
package version

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/stackwise/invctl/pkg/version.version=1.0.0"
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info describes the running build.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Get returns the build info for this binary.
func Get() Info {
	return Info{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Version returns the bare version string.
func Version() string {
	return version
}
