package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

var osLstat = os.Lstat
var osStat = os.Stat

// Entry is one child of a listed directory. It keeps only the raw name and
// the parent directory path; metadata is queried on demand. Entries are
// constructed fresh on every listing and never mutated.
type Entry struct {
	dir  string
	name string
	typ  os.FileMode
}

// NewEntry builds an entry for name inside dir. typ carries the type bits
// reported by the directory stream; it is a hint for sorting and icons,
// authoritative type information comes from Stat.
func NewEntry(dir, name string, typ os.FileMode) Entry {
	return Entry{dir: dir, name: name, typ: typ}
}

// FromDirEntry wraps an os.DirEntry read from dir.
func FromDirEntry(dir string, de os.DirEntry) Entry {
	return NewEntry(dir, de.Name(), de.Type())
}

// Name returns the raw entry name. It is not guaranteed to be valid UTF-8;
// use DisplayName for rendering and Name/Path for filesystem calls.
func (e Entry) Name() string { return e.name }

func (e Entry) Dir() string { return e.dir }

// Path returns the fully qualified path of the entry.
func (e Entry) Path() string { return filepath.Join(e.dir, e.name) }

// DisplayName returns the name with invalid UTF-8 replaced for display.
func (e Entry) DisplayName() string {
	if utf8.ValidString(e.name) {
		return e.name
	}
	return strings.ToValidUTF8(e.name, "�")
}

// Type returns the type bits captured at listing time.
func (e Entry) Type() os.FileMode { return e.typ }

// IsDir reports the listing-time directory bit.
func (e Entry) IsDir() bool { return e.typ.IsDir() }

// Stat queries the entry's own metadata (symlinks are not followed).
func (e Entry) Stat() (os.FileInfo, error) {
	return osLstat(e.Path())
}

// StatResolved queries metadata following symlinks.
func (e Entry) StatResolved() (os.FileInfo, error) {
	return osStat(e.Path())
}

// Kind classifies the entry from fresh metadata.
func (e Entry) Kind() (Kind, error) {
	info, err := e.Stat()
	if err != nil {
		return KindUnknown, err
	}
	return KindOf(info.Mode()), nil
}

// Size returns the byte length from fresh metadata; valid only when the
// query succeeds.
func (e Entry) Size() (int64, error) {
	info, err := e.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// SortEntries orders directories first, then by name.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].name < entries[j].name
	})
}
