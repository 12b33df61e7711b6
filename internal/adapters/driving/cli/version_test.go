package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	version = v
	t.Cleanup(func() { version = original })
}

func TestVersionCmd(t *testing.T) {
	withVersion(t, "1.4.2")

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "hirewire version 1.4.2\n", out)
}

func TestSetVersion(t *testing.T) {
	withVersion(t, "dev")

	SetVersion("")
	assert.Equal(t, "dev", version)

	SetVersion("2.0.0")
	assert.Equal(t, "2.0.0", version)
}
