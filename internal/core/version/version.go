// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Date    string `json:"date"    yaml:"date"`
}

// Set via -ldflags "-X 'cpauth/internal/core/version.version=v0.1.0'
// -X 'cpauth/internal/core/version.commit=abcd' -X 'cpauth/internal/core/version.date=2026-10-16'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for the named binary
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent is the default User-Agent for outbound platform calls
func UserAgent() string { return "cpauth/" + version }
