package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemirror"
)

// Ensure LoggingWorkspaceOpener implements pagemirror.WorkspaceOpener.
var _ pagemirror.WorkspaceOpener = (*LoggingWorkspaceOpener)(nil)

// LoggingWorkspaceOpener wraps a WorkspaceOpener so that the opened
// workspaces log every write.
type LoggingWorkspaceOpener struct {
	next   pagemirror.WorkspaceOpener
	logger *slog.Logger
}

// NewLoggingWorkspaceOpener creates a new LoggingWorkspaceOpener.
func NewLoggingWorkspaceOpener(next pagemirror.WorkspaceOpener, logger *slog.Logger) *LoggingWorkspaceOpener {
	return &LoggingWorkspaceOpener{next: next, logger: logger}
}

// Open delegates to the wrapped opener and returns a logging workspace.
func (o *LoggingWorkspaceOpener) Open(ctx context.Context, name string) (ws pagemirror.Workspace, err error) {
	defer func(begin time.Time) {
		o.logger.Info("open workspace",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	ws, err = o.next.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingWorkspace{next: ws, logger: o.logger.With("workspace", ws.Dir())}, nil
}

type loggingWorkspace struct {
	next   pagemirror.Workspace
	logger *slog.Logger
}

func (w *loggingWorkspace) Dir() string {
	return w.next.Dir()
}

func (w *loggingWorkspace) WriteAsset(ctx context.Context, subfolder, name string, data []byte) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write asset",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteAsset(ctx, subfolder, name, data)
}

func (w *loggingWorkspace) CopyAsset(ctx context.Context, src, subfolder, name string) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("copy asset",
			"src", src,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.CopyAsset(ctx, src, subfolder, name)
}

func (w *loggingWorkspace) WritePage(ctx context.Context, name string, data []byte) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write page",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePage(ctx, name, data)
}
