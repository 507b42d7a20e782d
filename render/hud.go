package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orf-cloud/status"
)

var (
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	hudWarnStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
)

// HUDInfo is the non-metric part of the status line
type HUDInfo struct {
	GenomeID  string
	Eviction  bool
	Exhausted bool
	Muted     bool
}

// DrawHUD renders the status line on row 0 from registry values
func DrawHUD(screen tcell.Screen, reg *status.Registry, info HUDInfo) {
	snap := reg.Snapshot()

	style := hudStyle
	FillRow(screen, 0, style)

	evict := "off"
	if info.Eviction {
		evict = fmt.Sprintf("%.0f", snap[status.KeyCapacity])
	}
	line := fmt.Sprintf(" %s | live %.0f cap %s | queue %.0f/%.0f | spawned %.0f culled %.0f evicted %.0f | %.1fms ",
		info.GenomeID,
		snap[status.KeyLive], evict,
		snap[status.KeyQueue], snap[status.KeyCatalog],
		snap[status.KeySpawned], snap[status.KeyCulled], snap[status.KeyEvicted],
		snap[status.KeyFrameMillis],
	)
	x := DrawText(screen, 0, 0, style, line)

	if info.Exhausted {
		x = DrawText(screen, x, 0, hudWarnStyle, " drained ")
	}
	if info.Muted {
		x = DrawText(screen, x, 0, style, " muted")
	}
	DrawText(screen, x, 0, style, "  [q]uit [m]enu [+/-]cap [e]vict [s]ound")
}
