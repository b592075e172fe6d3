// Package strider implements a three-pane terminal file browser: a parent
// listing, the current listing with a movable selection, and a preview of
// the selected entry. The Navigator is the sole owner of browsing state
// and must only be used from a single goroutine.
package strider

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/datatug/strider/pkg/cursor"
	"github.com/datatug/strider/pkg/files"
	"github.com/datatug/strider/pkg/logging"
)

// Navigator keeps the current directory, its parent snapshot, the selection
// cursor and the preview mutually consistent across navigation inputs.
type Navigator struct {
	store files.Store
	open  Opener
	log   *logrus.Logger

	currentDir string
	entries    *cursor.Cursor[files.Entry]
	parent     *ParentSnapshot

	// returnIndex remembers where the user was in the parent listing when
	// they descended, so that one Ascend restores their position.
	returnIndex    int
	hasReturnIndex bool

	preview Preview
	lastErr string
	done    bool
}

// ParentSnapshot is a read-only listing of the directory one level up.
// Entries is nil when the parent could not be listed; the snapshot then
// still names the path.
type ParentSnapshot struct {
	Dir     string
	Entries []files.Entry
}

type Option func(*Navigator)

func WithOpener(open Opener) Option {
	return func(nav *Navigator) {
		nav.open = open
	}
}

func WithLogger(log *logrus.Logger) Option {
	return func(nav *Navigator) {
		nav.log = log
	}
}

// NewNavigator loads startDir and derives the initial parent snapshot and
// preview. A startDir that cannot be read is a hard error.
func NewNavigator(ctx context.Context, store files.Store, startDir string, options ...Option) (*Navigator, error) {
	nav := &Navigator{
		store: store,
		open:  OpenInExternalApp,
	}
	for _, option := range options {
		option(nav)
	}
	if nav.log == nil {
		nav.log, _, _ = logging.Setup("")
	}
	if err := nav.loadDir(ctx, filepath.Clean(startDir), 0, false); err != nil {
		return nil, err
	}
	nav.refreshPreview(ctx)
	return nav, nil
}

// Handle processes one input event to completion. Unrecognised keys and
// ticks leave the state untouched.
func (nav *Navigator) Handle(ctx context.Context, ev Event) {
	if ev.Tick {
		return
	}
	switch ev.Key {
	case KeyQuit:
		nav.log.Debug("quit requested")
		nav.done = true
	case KeyDown:
		nav.lastErr = ""
		nav.entries.Next()
		nav.refreshPreview(ctx)
	case KeyUp:
		nav.lastErr = ""
		nav.entries.Previous()
		nav.refreshPreview(ctx)
	case KeyAscend:
		nav.lastErr = ""
		nav.ascend(ctx)
	case KeyDescend:
		nav.lastErr = ""
		nav.descend(ctx)
	}
}

// Done reports whether the session was marked for termination.
func (nav *Navigator) Done() bool {
	return nav.done
}

// loadDir reads dir and, on success only, adopts it as the current
// directory, rebuilding the cursor and the parent snapshot. The previous
// state stays untouched when the read fails. A parent listing failure is
// not fatal: the snapshot then carries the path without entries.
func (nav *Navigator) loadDir(ctx context.Context, dir string, selectIdx int, restore bool) error {
	entries, err := nav.store.ReadDir(ctx, dir)
	if err != nil {
		return err
	}

	var parent *ParentSnapshot
	if parentDir := filepath.Dir(dir); parentDir != dir {
		snapshot := ParentSnapshot{Dir: parentDir}
		if parentEntries, parentErr := nav.store.ReadDir(ctx, parentDir); parentErr == nil {
			snapshot.Entries = parentEntries
		}
		parent = &snapshot
	}

	nav.currentDir = dir
	nav.entries = cursor.New(entries)
	if restore {
		nav.entries.Select(selectIdx)
	}
	nav.parent = parent
	return nil
}

func (nav *Navigator) ascend(ctx context.Context) {
	parentDir := filepath.Dir(nav.currentDir)
	if parentDir == nav.currentDir {
		return // already at the filesystem root
	}
	idx, restore := nav.returnIndex, nav.hasReturnIndex
	if err := nav.loadDir(ctx, parentDir, idx, restore); err != nil {
		nav.lastErr = err.Error()
		nav.log.WithError(err).WithField("dir", parentDir).Warn("ascend failed")
		return
	}
	nav.hasReturnIndex = false
	nav.log.WithField("dir", parentDir).Debug("ascended")
	nav.refreshPreview(ctx)
}

func (nav *Navigator) descend(ctx context.Context) {
	entry, ok := nav.entries.Current()
	if !ok {
		return
	}

	kind := files.KindOf(entry.Type())
	if kind == files.KindSymlink {
		resolved, err := entry.StatResolved()
		if err != nil {
			nav.lastErr = err.Error()
			nav.log.WithError(err).WithField("path", entry.Path()).Warn("symlink resolution failed")
			return
		}
		switch {
		case resolved.IsDir():
			kind = files.KindDirectory
		case resolved.Mode().IsRegular():
			kind = files.KindFile
		default:
			return
		}
	}

	switch kind {
	case files.KindDirectory:
		idx, _ := nav.entries.Index()
		if err := nav.loadDir(ctx, entry.Path(), 0, false); err != nil {
			nav.lastErr = err.Error()
			nav.log.WithError(err).WithField("dir", entry.Path()).Warn("descend failed")
			return
		}
		nav.returnIndex = idx
		nav.hasReturnIndex = true
		nav.log.WithField("dir", nav.currentDir).Debug("descended")
		nav.refreshPreview(ctx)
	case files.KindFile:
		if err := nav.open(entry.Path()); err != nil {
			nav.lastErr = err.Error()
			nav.log.WithError(err).WithField("path", entry.Path()).Warn("external open failed")
		}
	}
}
