package files

import "context"

// Store reads directory listings. Implementations must treat only a failure
// to open or read the directory itself as an error; entries the directory
// stream does yield are always retained, even when their metadata later
// turns out to be unreadable.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, dir string) ([]Entry, error)
}
