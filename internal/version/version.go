// Package version provides the prompt-env version string.
package version

import "strings"

// Version is the current release version. It is a var rather than a const so
// ldflags -X can override it at build time.
var Version = "dev"

// String returns the version with a single 'v' prefix, tolerating values
// that already carry one (git tags) or none (dev builds).
func String() string {
	return "v" + strings.TrimPrefix(Version, "v")
}
