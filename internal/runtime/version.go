package runtime

import "fmt"

// Build metadata, injected at build time via
// -ldflags "-X github.com/annolab/labelctl/internal/runtime.Version=... ".
var (
	// Version holds the Git version tag from build.
	Version = "dev"

	// BuildDate is the time when the binary was built.
	BuildDate = "unknown"
)

// VersionString renders the version line shown by labelctl --version.
func VersionString() string {
	return fmt.Sprintf("%s (built %s)", Version, BuildDate)
}
