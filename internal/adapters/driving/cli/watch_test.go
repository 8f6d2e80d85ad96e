package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
	assert.Contains(t, watchCmd.Long, ".tex")
}

func TestWatchCmd_NoService(t *testing.T) {
	cleanup := setupCLITest(t, nil, nil)
	defer cleanup()

	_, err := execute("watch")
	assert.EqualError(t, err, "sync service not configured")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "y", plural(1, "y", "ies"))
	assert.Equal(t, "ies", plural(2, "y", "ies"))
}
