// Package version exposes build metadata for the dockhand binary. Release
// builds overwrite the vars below with
// -ldflags "-X github.com/localstack/dockhand/internal/version.version=...";
// a plain go build reports the dev placeholders.
package version

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func Version() string   { return version }
func Commit() string    { return commit }
func BuildDate() string { return buildDate }
