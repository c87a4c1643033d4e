package svn

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wahlandcase/tixview/internal/models"

	"github.com/rs/zerolog"
)

// Client runs the external svn executable against a working copy. All
// invocations are sequential, one in flight per user action; the Client
// itself holds no mutable state beyond its configuration.
type Client struct {
	executable string
	logger     zerolog.Logger
}

// NewClient creates a Client. An empty executable falls back to "svn"
// resolved via PATH.
func NewClient(executable string, logger zerolog.Logger) *Client {
	if executable == "" {
		executable = "svn"
	}
	return &Client{
		executable: executable,
		logger:     logger,
	}
}

// run executes svn with the given args inside the working copy and returns
// combined stdout/stderr. Non-zero exits become a CommandError carrying the
// tool's output verbatim.
func (c *Client) run(workingCopy string, args ...string) (string, error) {
	cmd := exec.Command(c.executable, args...)
	cmd.Dir = workingCopy

	c.logger.Debug().Str("dir", workingCopy).Strs("args", args).Msg("running svn")

	output, err := cmd.CombinedOutput()
	if err != nil {
		c.logger.Debug().Err(err).Str("output", string(output)).Msg("svn failed")
		return "", &CommandError{Args: args, Output: string(output), Err: err}
	}
	return string(output), nil
}

// IsWorkingCopy checks whether the directory is an svn working copy
func (c *Client) IsWorkingCopy(dir string) bool {
	cmd := exec.Command(c.executable, "info")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// FindWorkingCopy walks up from the given directory until an svn working
// copy is found, using the directory name as display name
func (c *Client) FindWorkingCopy(startDir string) (*models.WorkingCopy, error) {
	path := startDir
	for {
		if c.IsWorkingCopy(path) {
			wc := models.NewWorkingCopy(path, filepath.Base(path))
			return &wc, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return nil, os.ErrNotExist
		}
		path = parent
	}
}

// Log runs a verbose log query scoped by the hash-prefixed ticket search
// term and returns the raw output for parsing
func (c *Client) Log(workingCopy, ticketID string) (string, error) {
	return c.run(workingCopy, "log", "--verbose", "--search", "#"+ticketID)
}

// LogRevision runs a verbose log query scoped to exactly one revision
func (c *Client) LogRevision(workingCopy string, revision int64) (string, error) {
	return c.run(workingCopy, "log", "--verbose", "-r", strconv.FormatInt(revision, 10))
}

// Diff returns the raw diff text for a single revision, verbatim
func (c *Client) Diff(workingCopy string, revision int64) (string, error) {
	return c.run(workingCopy, "diff", "-c", strconv.FormatInt(revision, 10))
}

// Cat returns the file content at the given revision. A path absent at
// that revision comes back as a PathNotFoundError so callers wanting a
// graceful diff against a nonexistent predecessor can substitute empty
// content.
func (c *Client) Cat(workingCopy, path string, revision int64) (string, error) {
	rev := strconv.FormatInt(revision, 10)
	output, err := c.run(workingCopy, "cat", "-r", rev, path+"@"+rev)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && looksLikePathNotFound(cmdErr.Output) {
			return "", &PathNotFoundError{Path: path, Revision: revision}
		}
		return "", err
	}
	return output, nil
}

// pathNotFoundMarkers are the svn error codes and phrases that mean "this
// path did not exist at that revision" rather than a broken invocation.
// E160013: path not found, E195012: unable to find repository location,
// W160013: URL non-existent in that revision.
var pathNotFoundMarkers = []string{
	"E160013",
	"E195012",
	"W160013",
	"path not found",
	"non-existent in revision",
}

func looksLikePathNotFound(output string) bool {
	for _, marker := range pathNotFoundMarkers {
		if strings.Contains(output, marker) {
			return true
		}
	}
	return false
}

// SearchTicket runs the ticket-scoped log query, parses it and returns the
// changesets newest first
func (c *Client) SearchTicket(workingCopy, ticketID string) ([]models.Changeset, error) {
	logText, err := c.Log(workingCopy, ticketID)
	if err != nil {
		return nil, err
	}
	changesets := ParseLog(logText, ticketID)
	SortNewestFirst(changesets)
	return changesets, nil
}

// ChangedFilesAt returns the bare changed paths of one revision, resolved
// against the working copy root so they are directly retrievable
func (c *Client) ChangedFilesAt(workingCopy string, revision int64) ([]string, error) {
	logText, err := c.LogRevision(workingCopy, revision)
	if err != nil {
		return nil, err
	}

	var resolved []string
	for _, file := range ExtractChangedFiles(logText) {
		resolved = append(resolved, ResolvePath(file, workingCopy))
	}
	return resolved, nil
}

// UnifiedDiff holds the endpoint contents bounding a file's change window
type UnifiedDiff struct {
	Span   models.DiffSpan
	Before string
	After  string
}

// FetchUnifiedDiff plans the revision span for targetPath across the
// changesets and fetches both endpoint contents. A missing "before"
// endpoint means the file did not exist yet and becomes empty content; a
// failing "after" endpoint is a hard error since the target revision's
// content is assumed to exist.
func (c *Client) FetchUnifiedDiff(workingCopy, targetPath string, changesets []models.Changeset) (*UnifiedDiff, error) {
	span, err := PlanUnifiedDiff(targetPath, changesets)
	if err != nil {
		return nil, err
	}

	resolved := ResolvePath(targetPath, workingCopy)

	before, err := c.Cat(workingCopy, resolved, span.From)
	if err != nil {
		c.logger.Debug().Err(err).Int64("revision", span.From).Msg("before endpoint unavailable, using empty content")
		before = ""
	}

	after, err := c.Cat(workingCopy, resolved, span.To)
	if err != nil {
		return nil, err
	}

	return &UnifiedDiff{Span: span, Before: before, After: after}, nil
}
