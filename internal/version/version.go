// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/goslab/internal/version.Version=0.2.0"
package version

import "fmt"

var (
	Version   = "0.2.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2026"
)

// String formats the version line shown by `goslab version` and in reports.
func String() string {
	s := fmt.Sprintf("goslab v%s", Version)
	if GitCommit != "unknown" {
		s += fmt.Sprintf(" (%s, built %s)", GitCommit, BuildTime)
	}
	return s
}
