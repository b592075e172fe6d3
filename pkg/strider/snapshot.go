package strider

import "github.com/datatug/strider/pkg/files"

// Snapshot is a point-in-time view of the Navigator for rendering.
// SelectedIndex is -1 when the current listing is empty.
type Snapshot struct {
	RootTitle string

	ParentDir     string
	ParentEntries []files.Entry
	HasParent     bool

	CurrentDir     string
	CurrentEntries []files.Entry
	SelectedIndex  int

	PreviewTitle string
	Preview      Preview

	LastError string
	Done      bool
}

func (nav *Navigator) Snapshot() Snapshot {
	s := Snapshot{
		RootTitle:      nav.store.RootTitle(),
		CurrentDir:     nav.currentDir,
		CurrentEntries: nav.entries.Items(),
		SelectedIndex:  -1,
		Preview:        nav.preview,
		LastError:      nav.lastErr,
		Done:           nav.done,
	}
	if nav.parent != nil {
		s.HasParent = true
		s.ParentDir = nav.parent.Dir
		s.ParentEntries = nav.parent.Entries
	}
	if idx, ok := nav.entries.Index(); ok {
		s.SelectedIndex = idx
	}
	if entry, ok := nav.entries.Current(); ok {
		s.PreviewTitle = entry.DisplayName()
	}
	return s
}
