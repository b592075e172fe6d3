package strider

import (
	"strconv"

	"github.com/rivo/tview"

	"github.com/datatug/strider/pkg/chroma2tcell"
)

// previewerPanel owns the right-hand pane and swaps its content between a
// text view, a nested directory listing and an image attributes table
// depending on what is selected.
type previewerPanel struct {
	*tview.Flex
	textView *tview.TextView
	listing  *listingPanel
	attrs    *tview.Table
	mounted  tview.Primitive
}

func newPreviewerPanel() *previewerPanel {
	flex := tview.NewFlex()
	flex.SetDirection(tview.FlexRow)
	flex.SetBorder(true)
	flex.SetBorderColor(Style.BlurBorderColor)
	flex.SetTitleColor(Style.TitleColor)
	flex.SetTitleAlign(tview.AlignLeft)

	textView := tview.NewTextView()
	textView.SetWrap(false)

	p := &previewerPanel{
		Flex:     flex,
		textView: textView,
		listing:  newListingPanel(false),
		attrs:    newImageAttrsTable(),
	}
	p.listing.SetBorder(false)
	p.mount(p.textView)
	return p
}

func newImageAttrsTable() *tview.Table {
	t := tview.NewTable()
	for row, label := range []string{"Format", "Width", "Height"} {
		labelCell := tview.NewTableCell(label)
		labelCell.SetAlign(tview.AlignRight)
		labelCell.SetTextColor(Style.TitleColor)
		t.SetCell(row, 0, labelCell)
		t.SetCell(row, 1, tview.NewTableCell(""))
	}
	return t
}

func (p *previewerPanel) mount(primitive tview.Primitive) {
	if p.mounted == primitive {
		return
	}
	if p.mounted != nil {
		p.RemoveItem(p.mounted)
	}
	p.AddItem(primitive, 0, 1, false)
	p.mounted = primitive
}

func (p *previewerPanel) show(title string, preview Preview) {
	p.SetTitle(" " + title + " ")
	switch preview.Kind {
	case PreviewText:
		p.showText(title, preview.Text)
	case PreviewListing:
		p.listing.setEntries("", preview.Entries, -1)
		p.listing.SetTitle("")
		p.mount(p.listing)
	case PreviewImage:
		p.attrs.GetCell(0, 1).SetText(preview.Image.Format)
		p.attrs.GetCell(1, 1).SetText(strconv.Itoa(preview.Image.Width))
		p.attrs.GetCell(2, 1).SetText(strconv.Itoa(preview.Image.Height))
		p.mount(p.attrs)
	case PreviewError:
		p.textView.SetDynamicColors(false)
		p.textView.SetTextColor(Style.ErrorTextColor)
		p.textView.SetText(preview.Err)
		p.mount(p.textView)
	default:
		p.textView.SetDynamicColors(false)
		p.textView.SetTextColor(Style.SizeTextColor)
		p.textView.SetText("...")
		p.mount(p.textView)
	}
}

func (p *previewerPanel) showText(fileName, text string) {
	if colorized, ok := chroma2tcell.Highlight(fileName, text); ok {
		p.textView.SetDynamicColors(true)
		p.textView.SetText(colorized)
	} else {
		p.textView.SetDynamicColors(false)
		p.textView.SetTextColor(Style.PlainTextColor)
		p.textView.SetText(text)
	}
	p.mount(p.textView)
}
