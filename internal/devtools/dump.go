// Package devtools prints the board to a terminal for debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/04pril/imsweeper/internal/minesweeper"
)

var (
	styleHidden = color.Style{color.FgGray}
	styleFlag   = color.Style{color.FgMagenta, color.OpBold}
	styleMine   = color.Style{color.FgRed, color.OpBold}
	styleEmpty  = color.Style{color.FgDarkGray}

	numberStyles = [9]color.Style{
		1: {color.FgBlue},
		2: {color.FgGreen},
		3: {color.FgRed},
		4: {color.FgBlue, color.OpBold},
		5: {color.FgRed, color.OpBold},
		6: {color.FgCyan},
		7: {color.FgWhite, color.OpBold},
		8: {color.FgGray, color.OpBold},
	}
)

// Options controls a dump.
type Options struct {
	Color     bool
	ShowMines bool // reveal where the mines are, even under unopened tiles
}

// Dump writes one line per row: '#' unopened, 'F' flag, '*' mine, '.' an
// empty revealed tile and digits for numbered ones.
func Dump(w io.Writer, g *minesweeper.Engine, o Options) error {
	bw := bufio.NewWriter(w)
	left, ok := g.FlagsLeft()
	flags := "-"
	if ok {
		flags = strconv.Itoa(left)
	}
	fmt.Fprintf(bw, "%dx%d bombs=%d state=%s turns=%d flags_left=%s\n",
		g.Width(), g.Height(), g.BombCount(), g.State(), g.Turns(), flags)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			glyph, style := cell(g, y*g.Width()+x, o.ShowMines)
			if o.Color {
				bw.WriteString(style.Sprint(glyph))
			} else {
				bw.WriteString(glyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func cell(g *minesweeper.Engine, i int, showMines bool) (string, color.Style) {
	t, _ := g.Tile(i)
	switch {
	case t.Kind == minesweeper.Flagged:
		return "F", styleFlag
	case g.IsBomb(i) && (showMines || t.Kind == minesweeper.Revealed):
		return "*", styleMine
	case t.Kind == minesweeper.Unopened:
		return "#", styleHidden
	case t.Count == 0:
		return ".", styleEmpty
	}
	return strconv.Itoa(int(t.Count)), numberStyles[t.Count]
}

// DumpStderr writes the board with its mines to stderr, in color when
// stderr is a terminal.
func DumpStderr(g *minesweeper.Engine) {
	o := Options{Color: term.IsTerminal(int(os.Stderr.Fd())), ShowMines: true}
	if err := Dump(os.Stderr, g, o); err != nil {
		log.Warn().Err(err).Msg("board dump failed")
		return
	}
	log.Debug().Bool("color", o.Color).Msg("board dumped")
}
