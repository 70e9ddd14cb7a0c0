package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "goslab v"+Version, String())

	commit, built := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = commit, built })
	GitCommit, BuildTime = "abc123", "2026-01-02"
	assert.Contains(t, String(), "(abc123, built 2026-01-02)")
}
