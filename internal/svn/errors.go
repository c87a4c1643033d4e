package svn

import (
	"fmt"
	"strings"
)

// CommandError indicates the external svn invocation itself failed. The
// tool's own output is carried verbatim for display; failures are never
// retried automatically.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	output := strings.TrimSpace(e.Output)
	if output == "" {
		return fmt.Sprintf("svn %s failed: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("svn %s failed: %s", strings.Join(e.Args, " "), output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// PathNotFoundError indicates a path did not exist at the requested
// revision. Recoverable: callers diffing against a nonexistent predecessor
// substitute empty content.
type PathNotFoundError struct {
	Path     string
	Revision int64
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist at revision %d", e.Path, e.Revision)
}
