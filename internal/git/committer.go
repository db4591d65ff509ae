package git

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/errors"
)

// CommitRecord describes one commit that was pushed
type CommitRecord struct {
	Message   string    `json:"message"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Attempt is the outcome of a single commit attempt. Detail is the commit
// message on success and a failure description otherwise.
type Attempt struct {
	Success bool
	Detail  string
	Record  CommitRecord
	Err     error
}

// Committer appends a line to the tracked file and publishes it with
// git add, commit and push.
type Committer struct {
	executor CommandExecutor
	chooser  Chooser
	clock    common.Clock
	logger   common.Logger
}

// NewCommitter creates a Committer that runs the real git binary
func NewCommitter(logger common.Logger) *Committer {
	return NewCommitterWithDeps(NewExecExecutor(), RandomChooser(), common.SystemClock(), logger)
}

// NewCommitterWithDeps creates a Committer with injected dependencies.
// This is primarily used for testing.
func NewCommitterWithDeps(executor CommandExecutor, chooser Chooser, clock common.Clock, logger common.Logger) *Committer {
	return &Committer{
		executor: executor,
		chooser:  chooser,
		clock:    clock,
		logger:   logger,
	}
}

// AttemptCommit performs one append, add, commit and push cycle against
// cfg.RepoPath. The first failing step ends the attempt; no rollback is done.
func (c *Committer) AttemptCommit(ctx context.Context, cfg config.Config) Attempt {
	timestamp := c.clock.Now()
	content := RenderContent(ContentTemplates[c.chooser.Choose(len(ContentTemplates))], timestamp.Format(TimestampLayout))
	message := CommitMessages[c.chooser.Choose(len(CommitMessages))]

	record := CommitRecord{
		Message:   message,
		Content:   content,
		Timestamp: timestamp,
	}

	if err := appendLine(filepath.Join(cfg.RepoPath, cfg.TrackedFile), content); err != nil {
		c.logger.Error("Commit failed: %v", err)
		return Attempt{Detail: err.Error(), Record: record, Err: errors.Wrap(errors.ErrCommitFailed, err.Error())}
	}

	steps := [][]string{
		{"add", cfg.TrackedFile},
		{"commit", "-m", message},
		{"push", cfg.Remote, cfg.Branch},
	}

	for _, args := range steps {
		if err := c.executor.Execute(ctx, cfg.RepoPath, "git", args...); err != nil {
			c.logger.Error("Git operation failed: %v", err)
			return Attempt{Detail: err.Error(), Record: record, Err: err}
		}
	}

	return Attempt{Success: true, Detail: message, Record: record}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
