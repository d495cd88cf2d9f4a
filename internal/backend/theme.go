package backend

import (
	"image/color"

	"github.com/04pril/imsweeper/internal/gui"
)

type theme struct {
	Name           string
	BG             color.Color
	Panel          color.Color
	Light          color.Color
	Dark           color.Color
	CellHidden     color.Color
	CellRevealed   color.Color
	CellGrid       color.Color
	CellText       color.Color
	Mine           color.Color
	Flag           color.Color
	WrongFlag      color.Color
	Losing         color.Color
	Accent         color.Color
	AccentText     color.Color
	Shadow         color.Color
	Digit          color.Color
	DigitOff       color.Color
	DigitBG        color.Color
	HeaderText     color.Color
	HeaderTextSoft color.Color
}

var classic = theme{
	Name:           "Classic",
	BG:             rgb(192, 192, 192),
	Panel:          rgb(192, 192, 192),
	Light:          rgb(255, 255, 255),
	Dark:           rgb(128, 128, 128),
	CellHidden:     rgb(192, 192, 192),
	CellRevealed:   rgb(214, 214, 214),
	CellGrid:       rgb(155, 155, 155),
	CellText:       rgb(15, 15, 15),
	Mine:           rgb(10, 10, 10),
	Flag:           rgb(210, 32, 32),
	WrongFlag:      rgb(180, 0, 0),
	Losing:         rgb(210, 40, 40),
	Accent:         rgb(32, 128, 255),
	AccentText:     rgb(255, 255, 255),
	Shadow:         color.RGBA{0, 0, 0, 90},
	Digit:          rgb(215, 40, 40),
	DigitOff:       rgb(60, 20, 20),
	DigitBG:        rgb(20, 20, 20),
	HeaderText:     rgb(12, 12, 12),
	HeaderTextSoft: rgb(30, 30, 30),
}

var dark = theme{
	Name:           "Dark",
	BG:             rgb(34, 36, 42),
	Panel:          rgb(48, 51, 60),
	Light:          rgb(78, 82, 93),
	Dark:           rgb(18, 20, 26),
	CellHidden:     rgb(62, 66, 78),
	CellRevealed:   rgb(86, 90, 102),
	CellGrid:       rgb(30, 33, 41),
	CellText:       rgb(242, 242, 245),
	Mine:           rgb(245, 245, 245),
	Flag:           rgb(255, 88, 88),
	WrongFlag:      rgb(255, 25, 25),
	Losing:         rgb(170, 30, 30),
	Accent:         rgb(107, 199, 255),
	AccentText:     rgb(18, 20, 26),
	Shadow:         color.RGBA{0, 0, 0, 140},
	Digit:          rgb(255, 98, 98),
	DigitOff:       rgb(70, 28, 28),
	DigitBG:        rgb(12, 12, 14),
	HeaderText:     rgb(245, 245, 245),
	HeaderTextSoft: rgb(215, 215, 225),
}

var numberColors = [9]color.Color{
	color.RGBA{},
	rgb(25, 25, 220),
	rgb(0, 130, 0),
	rgb(210, 20, 20),
	rgb(0, 0, 135),
	rgb(130, 0, 0),
	rgb(0, 128, 128),
	rgb(0, 0, 0),
	rgb(110, 110, 110),
}

func themeFor(darkTheme bool) theme {
	if darkTheme {
		return dark
	}
	return classic
}

// paint maps a palette role to a color of th.
func (th theme) paint(p gui.Paint) color.Color {
	switch p {
	case gui.PaintBackground:
		return th.BG
	case gui.PaintMenubar:
		return th.Panel
	case gui.PaintMenubarHot, gui.PaintCloseHot:
		return th.Accent
	case gui.PaintMenuText, gui.PaintPopupBodyText, gui.PaintButtonText:
		return th.HeaderText
	case gui.PaintMenuTextHot, gui.PaintPopupTitleText:
		return th.AccentText
	case gui.PaintShadow:
		return th.Shadow
	case gui.PaintClose:
		return th.Dark
	case gui.PaintDisabledText:
		return th.HeaderTextSoft
	case gui.PaintAccent:
		return th.Accent
	}
	return th.HeaderText
}

// number is the color of a tile's neighbour count.
func (th theme) number(n int) color.Color {
	if n < 1 || n >= len(numberColors) {
		return th.CellText
	}
	if th.Name == "Dark" && n == 1 {
		return rgb(120, 170, 255)
	}
	return numberColors[n]
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
