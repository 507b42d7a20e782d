package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orf-cloud/parameter"
)

var (
	menuFrameStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	menuTitleStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	menuLabelStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	menuSelectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	menuHintStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	menuWarnStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	menuErrorStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// MenuRow is one line of the settings panel
type MenuRow struct {
	Label    string
	Value    string
	Hint     string
	Selected bool
}

// MenuView is everything the settings panel displays
type MenuView struct {
	Title    string
	Rows     []MenuRow
	Input    string // Path being typed, shown when Editing
	Editing  bool
	Warnings []string
	Errors   []string
	Footer   string
}

// DrawMenu renders the settings panel centred on screen
func DrawMenu(screen tcell.Screen, view MenuView) {
	sw, sh := screen.Size()
	width := min(parameter.MenuWidth, sw)
	height := len(view.Rows) + len(view.Warnings) + len(view.Errors) + 2*parameter.MenuPadding + 4
	if view.Editing {
		height += 2
	}
	x0 := max(0, (sw-width)/2)
	y0 := max(0, (sh-height)/2)

	drawBox(screen, x0, y0, width, height)
	DrawText(screen, x0+2, y0, menuTitleStyle, " "+view.Title+" ")

	inner := x0 + parameter.MenuPadding
	y := y0 + parameter.MenuPadding
	for _, row := range view.Rows {
		style := menuLabelStyle
		if row.Selected {
			style = menuSelectedStyle
			for x := inner; x < x0+width-parameter.MenuPadding; x++ {
				screen.SetContent(x, y, ' ', nil, style)
			}
		}
		x := DrawText(screen, inner, y, style, row.Label)
		if row.Value != "" {
			x = DrawText(screen, max(x+1, inner+24), y, style, row.Value)
		}
		if row.Hint != "" {
			DrawText(screen, x+2, y, menuHintStyle, row.Hint)
		}
		y++
	}

	if view.Editing {
		y++
		x := DrawText(screen, inner, y, menuLabelStyle, "path: ")
		x = DrawText(screen, x, y, menuSelectedStyle, view.Input)
		screen.SetContent(x, y, '_', nil, menuSelectedStyle)
		y++
	}

	y++
	for _, w := range view.Warnings {
		DrawText(screen, inner, y, menuWarnStyle, w)
		y++
	}
	for _, e := range view.Errors {
		DrawText(screen, inner, y, menuErrorStyle, e)
		y++
	}
	if view.Footer != "" {
		DrawText(screen, inner, y0+height-1, menuHintStyle, " "+view.Footer+" ")
	}
}

func drawBox(screen tcell.Screen, x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				r = '+'
			case y == y0 || y == y0+h-1:
				r = '-'
			case x == x0 || x == x0+w-1:
				r = '|'
			}
			screen.SetContent(x, y, r, nil, menuFrameStyle)
		}
	}
}
