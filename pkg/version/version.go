// Package version records build metadata, injected at link time via
// -ldflags "-X github.com/Sumatoshi-tech/angularize/pkg/version.Version=...".
package version

var (
	// Version is the release version of the angularize binary.
	Version = "dev"
	// Commit is the Git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
