package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitProjectID(t *testing.T) {
	owner, repo, err := splitProjectID("maxbolgarin/addheader")
	require.NoError(t, err)
	assert.Equal(t, "maxbolgarin", owner)
	assert.Equal(t, "addheader", repo)

	for _, bad := range []string{"", "justname", "a/b/c", "/repo", "owner/"} {
		_, _, err := splitProjectID(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsProcessable(t *testing.T) {
	for _, status := range []string{"added", "copied", "modified", "renamed", "changed"} {
		assert.True(t, isProcessable(status), status)
	}
	for _, status := range []string{"removed", "unchanged", ""} {
		assert.False(t, isProcessable(status), status)
	}
}
