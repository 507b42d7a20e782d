package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/orf-cloud/config"
	"github.com/lixenwraith/orf-cloud/genome"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/picker"
	"github.com/lixenwraith/orf-cloud/render"
)

// MenuItem identifies a settings row
type MenuItem int

const (
	ItemGenome MenuItem = iota
	ItemUpload
	ItemMinLength
	ItemBatch
	ItemCapacity
	ItemEviction
	ItemDrain
	ItemReset
	ItemStart
)

// MenuAction is what the app should do after a key
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionStart
	ActionQuit
)

// Step sizes for left/right adjustment
const (
	minLengthStep = 10
	batchStep     = 1
	capacityStep  = 100
)

// Menu is the settings phase state
type Menu struct {
	cfg    *config.Config
	ctx    context.Context
	picker *picker.Task

	cursor  int
	editing bool
	input   string
	notice  string
	failure string
}

// NewMenu edits cfg in place; ctx bounds picker reads
func NewMenu(ctx context.Context, cfg *config.Config, task *picker.Task) *Menu {
	if task == nil {
		task = picker.NewTask()
	}
	return &Menu{cfg: cfg, ctx: ctx, picker: task}
}

// items lists visible rows; the upload row only exists for a custom genome
func (m *Menu) items() []MenuItem {
	out := []MenuItem{ItemGenome}
	if m.cfg.Genome.Kind == genome.KindCustom {
		out = append(out, ItemUpload)
	}
	return append(out, ItemMinLength, ItemBatch, ItemCapacity, ItemEviction, ItemDrain, ItemReset, ItemStart)
}

// Selected returns the row under the cursor
func (m *Menu) Selected() MenuItem {
	items := m.items()
	m.cursor = min(max(m.cursor, 0), len(items)-1)
	return items[m.cursor]
}

// Editing reports whether the upload path is being typed
func (m *Menu) Editing() bool {
	return m.editing
}

// Poll checks the picker once; call once per menu frame
func (m *Menu) Poll() {
	res := m.picker.Poll()
	switch res.Status {
	case picker.StatusFinished:
		m.cfg.Genome = genome.CustomSource(res.Data)
		m.cfg.GenomePath = res.Path
		m.notice = fmt.Sprintf("loaded %s (%d bytes)", filepath.Base(res.Path), len(res.Data))
		m.failure = ""
		log.Info().Str("path", res.Path).Int("bytes", len(res.Data)).Msg("genome file loaded")
	case picker.StatusFailed:
		m.failure = res.Err.Error()
		log.Warn().Err(res.Err).Str("path", res.Path).Msg("genome file load failed")
	}
}

// Leave cancels any in-flight file read; its result is discarded
func (m *Menu) Leave() {
	m.picker.Cancel()
	m.editing = false
}

// TryStart validates the configuration for a new run
func (m *Menu) TryStart() error {
	if !m.cfg.Genome.HasData() {
		return ErrNoGenomeData
	}
	if m.picker.Pending() {
		return errors.New("genome file still loading")
	}
	return m.cfg.Validate()
}

// SetFailure shows err until the next successful action
func (m *Menu) SetFailure(err error) {
	if err == nil {
		m.failure = ""
		return
	}
	m.failure = err.Error()
}

// HandleKey applies one key press
func (m *Menu) HandleKey(ev *tcell.EventKey) MenuAction {
	if m.editing {
		m.handleEditKey(ev)
		return ActionNone
	}

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyUp:
		m.move(-1)
	case tcell.KeyDown, tcell.KeyTab:
		m.move(1)
	case tcell.KeyLeft:
		m.adjust(-1)
	case tcell.KeyRight:
		m.adjust(1)
	case tcell.KeyEnter:
		return m.activate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'k':
			m.move(-1)
		case 'j':
			m.move(1)
		case 'h', '-':
			m.adjust(-1)
		case 'l', '+':
			m.adjust(1)
		case ' ':
			return m.activate()
		case 'r':
			m.reset()
		case 's':
			return m.start()
		}
	}
	return ActionNone
}

func (m *Menu) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.editing = false
	case tcell.KeyEnter:
		m.editing = false
		if m.input == "" {
			return
		}
		m.failure = ""
		m.notice = "loading " + filepath.Base(m.input) + "..."
		m.picker.Start(m.ctx, m.input)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tcell.KeyRune:
		m.input += string(ev.Rune())
	}
}

func (m *Menu) move(delta int) {
	n := len(m.items())
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Menu) adjust(dir int) {
	c := m.cfg
	switch m.Selected() {
	case ItemGenome:
		if dir < 0 {
			m.selectKind(genome.BundledSource())
		} else {
			m.selectKind(genome.CustomSource(nil))
		}
	case ItemMinLength:
		next := int64(c.MinFeatureLength) + int64(dir*minLengthStep)
		c.MinFeatureLength = uint64(max(next, parameter.MinFeatureLengthLow))
	case ItemBatch:
		c.BatchSize += dir * batchStep
	case ItemCapacity:
		c.CapacityCap += dir * capacityStep
	case ItemEviction:
		c.EvictionEnabled = !c.EvictionEnabled
	case ItemDrain:
		c.DrainFromFront = !c.DrainFromFront
	}
	c.Clamp()
}

func (m *Menu) activate() MenuAction {
	switch m.Selected() {
	case ItemGenome:
		if m.cfg.Genome.Kind == genome.KindBundled {
			m.selectKind(genome.CustomSource(nil))
		} else {
			m.selectKind(genome.BundledSource())
		}
	case ItemUpload:
		m.editing = true
		m.input = m.cfg.GenomePath
	case ItemEviction, ItemDrain:
		m.adjust(1)
	case ItemReset:
		m.reset()
	case ItemStart:
		return m.start()
	}
	return ActionNone
}

// selectKind switches genome source; re-selecting the current kind keeps loaded data
func (m *Menu) selectKind(src genome.Source) {
	if m.cfg.Genome.SameKind(src) {
		return
	}
	if src.Kind == genome.KindBundled {
		m.picker.Cancel()
	}
	m.cfg.Genome = src
	m.cfg.GenomePath = ""
	m.notice = ""
	m.failure = ""
}

func (m *Menu) reset() {
	m.picker.Cancel()
	m.cfg.Reset()
	m.cursor = 0
	m.input = ""
	m.notice = "settings reset"
	m.failure = ""
}

func (m *Menu) start() MenuAction {
	if err := m.TryStart(); err != nil {
		// Missing data already has its own standing message
		if !errors.Is(err, ErrNoGenomeData) {
			m.SetFailure(err)
		}
		return ActionNone
	}
	return ActionStart
}

// View builds the panel contents
func (m *Menu) View() render.MenuView {
	c := m.cfg
	sel := m.Selected()

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	drain := "back (highest start first)"
	if c.DrainFromFront {
		drain = "front (lowest start first)"
	}

	var rows []render.MenuRow
	for _, it := range m.items() {
		row := render.MenuRow{Selected: it == sel}
		switch it {
		case ItemGenome:
			bundled, custom := "( )", "( )"
			if c.Genome.SameKind(genome.BundledSource()) {
				bundled = "(*)"
			} else {
				custom = "(*)"
			}
			row.Label = "Genome"
			row.Value = bundled + " bundled  " + custom + " custom"
		case ItemUpload:
			row.Label = "Upload"
			row.Value = "<none>"
			if c.GenomePath != "" {
				row.Value = filepath.Base(c.GenomePath)
			}
			row.Hint = "plain or gzip fasta"
		case ItemMinLength:
			row.Label = "Min ORF length"
			row.Value = fmt.Sprintf("%d", c.MinFeatureLength)
			row.Hint = fmt.Sprintf("%d-%d", parameter.MinFeatureLengthLow, parameter.MinFeatureLengthHigh)
		case ItemBatch:
			row.Label = "ORFs per step"
			row.Value = fmt.Sprintf("%d", c.BatchSize)
			row.Hint = "cloud density"
		case ItemCapacity:
			row.Label = "Capacity"
			row.Value = fmt.Sprintf("%d", c.CapacityCap)
			row.Hint = "max live objects"
		case ItemEviction:
			row.Label = "Eviction"
			row.Value = onOff(c.EvictionEnabled)
		case ItemDrain:
			row.Label = "Drain from"
			row.Value = drain
		case ItemReset:
			row.Label = "[ Reset ]"
		case ItemStart:
			row.Label = "[ Start ]"
		}
		rows = append(rows, row)
	}

	view := render.MenuView{
		Title:   "orf-cloud settings",
		Rows:    rows,
		Editing: m.editing,
		Input:   m.input,
		Footer:  "arrows move/adjust  enter select  s start  r reset  q quit",
	}
	if c.SlowWarning() {
		view.Warnings = append(view.Warnings, fmt.Sprintf("Min ORF length below %d: dense cloud, it'll be slow", parameter.SlowFeatureLength))
	}
	if m.notice != "" {
		view.Warnings = append(view.Warnings, m.notice)
	}
	if !c.Genome.HasData() {
		view.Errors = append(view.Errors, "No genome data! Won't start!")
	}
	if m.failure != "" {
		view.Errors = append(view.Errors, m.failure)
	}
	return view
}
