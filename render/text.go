package render

import (
	"github.com/gdamore/tcell/v2"
)

// DrawText writes s starting at (x, y), clipped to the screen width
// Returns the column after the last written rune
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// FillRow paints an entire row with spaces in style
func FillRow(screen tcell.Screen, y int, style tcell.Style) {
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
