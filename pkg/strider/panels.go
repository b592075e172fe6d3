package strider

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/datatug/strider/pkg/files"
	"github.com/datatug/strider/pkg/fsutils"
)

var titlePrinter = message.NewPrinter(language.English)

// listingPanel renders a directory listing as a two-column table: icon
// plus name, then size. Only the current pane shows a selection bar; the
// table is never focused, input is captured at the application level.
type listingPanel struct {
	*tview.Table
	showSelection bool
}

func newListingPanel(showSelection bool) *listingPanel {
	table := tview.NewTable()
	table.SetBorder(true)
	table.SetBorderColor(Style.BlurBorderColor)
	table.SetTitleColor(Style.TitleColor)
	table.SetTitleAlign(tview.AlignLeft)
	if showSelection {
		table.SetBorderColor(Style.FocusedBorderColor)
		table.SetSelectable(true, false)
		table.SetSelectedStyle(tcell.StyleDefault.Background(Style.SelectionBackground))
	}
	return &listingPanel{Table: table, showSelection: showSelection}
}

func (p *listingPanel) setEntries(dir string, entries []files.Entry, selected int) {
	p.Clear()
	p.SetTitle(listingTitle(dir, len(entries)))
	for row, entry := range entries {
		nameCell := tview.NewTableCell(entryIcon(entry) + " " + entry.DisplayName())
		nameCell.SetTextColor(entryColor(entry))
		nameCell.SetExpansion(1)
		p.SetCell(row, 0, nameCell)

		sizeCell := tview.NewTableCell(entrySizeText(entry))
		sizeCell.SetTextColor(Style.SizeTextColor)
		sizeCell.SetAlign(tview.AlignRight)
		p.SetCell(row, 1, sizeCell)
	}
	if p.showSelection && selected >= 0 && selected < len(entries) {
		p.Select(selected, 0)
		p.ScrollToBeginning()
	}
}

func listingTitle(dir string, count int) string {
	return titlePrinter.Sprintf(" %s (%d items) ", dir, count)
}

func entryIcon(entry files.Entry) string {
	switch files.KindOf(entry.Type()) {
	case files.KindDirectory:
		return "📁"
	case files.KindSymlink:
		return "🔗"
	default:
		return "📄"
	}
}

func entryColor(entry files.Entry) tcell.Color {
	if entry.IsDir() {
		return tcell.ColorLightSkyBlue
	}
	return GetColorByFileExt(entry.Name())
}

func entrySizeText(entry files.Entry) string {
	info, err := entry.Stat()
	if err != nil || info.IsDir() {
		return ""
	}
	return fsutils.GetSizeShortText(info.Size())
}
