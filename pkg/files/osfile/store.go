// Package osfile implements files.Store over the local filesystem.
package osfile

import (
	"context"
	"os"

	"github.com/datatug/strider/pkg/files"
)

var osOpen = os.Open
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
}

func NewStore() *Store {
	store := Store{}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = "localhost"
	}
	return &store
}

func (s *Store) RootTitle() string {
	return s.title
}

// ReadDir lists dir. A failure to open or read the directory is returned as
// an error; when the directory stream fails midway the entries read so far
// are kept and the remainder is skipped silently.
func (s *Store) ReadDir(ctx context.Context, dir string) ([]files.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := osOpen(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	children, err := f.ReadDir(-1)
	if err != nil && len(children) == 0 {
		return nil, err
	}

	entries := make([]files.Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, files.FromDirEntry(dir, child))
	}
	files.SortEntries(entries)
	return entries, nil
}
