package files

import "os"

// Kind classifies a directory entry.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDirectory
	KindFile
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// KindOf derives the Kind from a file mode.
func KindOf(mode os.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindUnknown
	}
}
