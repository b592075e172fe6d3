package strider

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TitleColor          tcell.Color
	SelectionBackground tcell.Color

	ErrorTextColor tcell.Color
	SizeTextColor  tcell.Color
	PlainTextColor tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TitleColor:          tcell.ColorYellow,
	SelectionBackground: tcell.ColorBlue,

	ErrorTextColor: tcell.ColorRed,
	SizeTextColor:  tcell.ColorDarkGray,
	PlainTextColor: tcell.ColorWhiteSmoke,
}
