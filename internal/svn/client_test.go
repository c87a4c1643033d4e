package svn

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/tixview/internal/logging"
)

func TestNewClient_DefaultsToPathLookup(t *testing.T) {
	t.Parallel()

	client := NewClient("", logging.Nop())
	assert.Equal(t, "svn", client.executable)

	client = NewClient("/opt/svn/bin/svn", logging.Nop())
	assert.Equal(t, "/opt/svn/bin/svn", client.executable)
}

func TestRun_CarriesToolOutputVerbatim(t *testing.T) {
	t.Parallel()

	// Use a real command that fails with output on stderr
	client := NewClient("sh", logging.Nop())
	_, err := client.run(t.TempDir(), "-c", "echo 'svn: E155007: not a working copy' >&2; exit 1")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Output, "E155007")
	assert.Contains(t, cmdErr.Error(), "E155007")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestRun_ToolNotFound(t *testing.T) {
	t.Parallel()

	client := NewClient("definitely-not-a-real-svn-binary", logging.Nop())
	_, err := client.run(t.TempDir(), "info")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestLooksLikePathNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output string
		want   bool
	}{
		{"svn: E160013: File not found: revision 9, path '/trunk/a.txt'", true},
		{"svn: E195012: Unable to find repository location for 'a.txt' in revision 9", true},
		{"svn: warning: W160013: URL 'file:///repo/a.txt' non-existent in revision 9", true},
		{"svn: E155007: '/tmp/x' is not a working copy", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, looksLikePathNotFound(tt.output), tt.output)
	}
}

func TestPathNotFoundError_Message(t *testing.T) {
	t.Parallel()

	err := &PathNotFoundError{Path: "src/app.ts", Revision: 9}
	assert.Equal(t, "src/app.ts does not exist at revision 9", err.Error())

	var target *PathNotFoundError
	assert.True(t, errors.As(error(err), &target))
}

func TestCommandError_FallsBackToWrappedError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("exit status 1")
	err := &CommandError{Args: []string{"log", "-v"}, Output: "  \n", Err: wrapped}
	assert.Equal(t, "svn log -v failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, wrapped)
}
