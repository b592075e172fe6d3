package strider

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/datatug/strider/pkg/files"
	"github.com/datatug/strider/pkg/fsutils"
)

var osOpen = os.Open

// previewMaxLines caps how much of a file the preview reads.
const previewMaxLines = 128

type PreviewKind uint8

const (
	PreviewEmpty PreviewKind = iota
	PreviewListing
	PreviewText
	PreviewImage
	PreviewError
)

// ImageMeta describes an image without its pixel data.
type ImageMeta struct {
	Format string
	Width  int
	Height int
}

// Preview is what the right-hand pane shows for the selected entry.
// Exactly one of Entries, Text, Image and Err is meaningful, per Kind.
type Preview struct {
	Kind    PreviewKind
	Entries []files.Entry
	Text    string
	Image   ImageMeta
	Err     string
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

func (nav *Navigator) refreshPreview(ctx context.Context) {
	nav.preview = nav.computePreview(ctx)
}

// computePreview derives the preview for the current selection. Failures
// to read a regular file degrade to an empty preview; a directory listing
// failure is surfaced inside the pane so the main listing stays usable.
func (nav *Navigator) computePreview(ctx context.Context) Preview {
	entry, ok := nav.entries.Current()
	if !ok {
		return Preview{Kind: PreviewEmpty}
	}

	kind := files.KindOf(entry.Type())
	if kind == files.KindSymlink {
		resolved, resolveErr := entry.StatResolved()
		if resolveErr != nil {
			nav.lastErr = resolveErr.Error()
			return Preview{Kind: PreviewEmpty}
		}
		switch {
		case resolved.IsDir():
			kind = files.KindDirectory
		case resolved.Mode().IsRegular():
			kind = files.KindFile
		default:
			return Preview{Kind: PreviewEmpty}
		}
	}

	switch kind {
	case files.KindDirectory:
		children, readErr := nav.store.ReadDir(ctx, entry.Path())
		if readErr != nil {
			return Preview{Kind: PreviewError, Err: readErr.Error()}
		}
		return Preview{Kind: PreviewListing, Entries: children}
	case files.KindFile:
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			if meta, metaErr := imageMeta(entry); metaErr == nil {
				return Preview{Kind: PreviewImage, Image: meta}
			}
		}
		text, readErr := fsutils.ReadFileHead(entry.Path(), previewMaxLines)
		if readErr != nil {
			return Preview{Kind: PreviewEmpty}
		}
		return Preview{Kind: PreviewText, Text: text}
	default:
		return Preview{Kind: PreviewEmpty}
	}
}

func imageMeta(entry files.Entry) (ImageMeta, error) {
	f, err := osOpen(entry.Path())
	if err != nil {
		return ImageMeta{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageMeta{}, err
	}
	return ImageMeta{Format: format, Width: config.Width, Height: config.Height}, nil
}
