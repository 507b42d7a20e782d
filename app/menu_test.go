package app

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orf-cloud/config"
	"github.com/lixenwraith/orf-cloud/genome"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/picker"
)

const testFasta = ">test_seq demo\nATGAAACCCGGGTTTTAG\n"

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestMenu(read picker.ReadFunc) (*Menu, *config.Config) {
	cfg := config.Default()
	if read == nil {
		read = func(ctx context.Context, path string) ([]byte, error) {
			return []byte(testFasta), nil
		}
	}
	return NewMenu(context.Background(), &cfg, picker.NewTaskWithReader(read)), &cfg
}

// waitLoaded polls until the picker delivers or the deadline passes
func waitLoaded(t *testing.T, m *Menu) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.Poll()
		if !m.picker.Pending() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("picker did not finish")
}

func TestMenuStartRejectedWithoutCustomData(t *testing.T) {
	m, cfg := newTestMenu(nil)

	if m.Selected() != ItemGenome {
		t.Fatalf("cursor starts on %v", m.Selected())
	}
	m.HandleKey(key(tcell.KeyRight))
	if cfg.Genome.Kind != genome.KindCustom {
		t.Fatal("right on genome row should select custom")
	}

	if act := m.HandleKey(runeKey('s')); act != ActionNone {
		t.Fatalf("start with no data returned %v", act)
	}
	if !errors.Is(m.TryStart(), ErrNoGenomeData) {
		t.Fatal("TryStart should report missing data")
	}

	view := m.View()
	if !slices.Contains(view.Errors, "No genome data! Won't start!") {
		t.Errorf("errors = %v", view.Errors)
	}
	if len(view.Errors) != 1 {
		t.Errorf("missing data reported more than once: %v", view.Errors)
	}
}

func TestMenuUploadLoadsCustomData(t *testing.T) {
	m, cfg := newTestMenu(nil)
	m.HandleKey(key(tcell.KeyRight))
	m.HandleKey(key(tcell.KeyDown))
	if m.Selected() != ItemUpload {
		t.Fatalf("expected upload row, got %v", m.Selected())
	}

	m.HandleKey(key(tcell.KeyEnter))
	if !m.Editing() {
		t.Fatal("enter on upload should open the path input")
	}
	for _, r := range "/tmp/x.faa" {
		m.HandleKey(runeKey(r))
	}
	m.HandleKey(key(tcell.KeyBackspace2))
	m.HandleKey(key(tcell.KeyBackspace2))
	m.HandleKey(runeKey('a'))
	m.HandleKey(key(tcell.KeyEnter))
	if m.Editing() {
		t.Fatal("enter should close the path input")
	}

	waitLoaded(t, m)

	if cfg.GenomePath != "/tmp/x.fa" {
		t.Errorf("path = %q", cfg.GenomePath)
	}
	if string(cfg.Genome.Data) != testFasta {
		t.Errorf("data = %q", cfg.Genome.Data)
	}
	if err := m.TryStart(); err != nil {
		t.Errorf("TryStart after load: %v", err)
	}
	if act := m.HandleKey(runeKey('s')); act != ActionStart {
		t.Errorf("start after load returned %v", act)
	}
}

func TestMenuReselectCustomKeepsData(t *testing.T) {
	m, cfg := newTestMenu(nil)
	m.HandleKey(key(tcell.KeyRight))
	m.picker.Start(context.Background(), "/data/g.fa")
	waitLoaded(t, m)

	// Pressing right again re-selects custom
	m.HandleKey(key(tcell.KeyRight))
	if !cfg.Genome.HasData() {
		t.Fatal("re-selecting custom dropped loaded data")
	}
	if cfg.GenomePath != "/data/g.fa" {
		t.Errorf("path = %q", cfg.GenomePath)
	}

	m.HandleKey(key(tcell.KeyLeft))
	if !cfg.Genome.Equal(genome.BundledSource()) {
		t.Fatal("left should select bundled")
	}
	m.HandleKey(key(tcell.KeyRight))
	if cfg.Genome.HasData() {
		t.Error("switching away and back starts with empty custom data")
	}
}

func TestMenuLoadFailureShown(t *testing.T) {
	m, cfg := newTestMenu(func(ctx context.Context, path string) ([]byte, error) {
		return nil, picker.ErrEmptyFile
	})
	m.HandleKey(key(tcell.KeyRight))
	m.picker.Start(context.Background(), "/data/empty.fa")
	waitLoaded(t, m)

	if cfg.Genome.HasData() {
		t.Fatal("failed read must not set data")
	}
	if !slices.Contains(m.View().Errors, picker.ErrEmptyFile.Error()) {
		t.Errorf("errors = %v", m.View().Errors)
	}
}

func TestMenuLeaveDiscardsPendingRead(t *testing.T) {
	release := make(chan struct{})
	m, cfg := newTestMenu(func(ctx context.Context, path string) ([]byte, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return []byte(testFasta), nil
	})
	m.HandleKey(key(tcell.KeyRight))
	m.picker.Start(context.Background(), "/data/slow.fa")
	if err := m.TryStart(); err == nil {
		t.Fatal("start should be refused while loading")
	}

	m.Leave()
	close(release)
	time.Sleep(10 * time.Millisecond)
	m.Poll()

	if cfg.Genome.HasData() {
		t.Error("cancelled read delivered data")
	}
}

func TestMenuAdjustClamps(t *testing.T) {
	m, cfg := newTestMenu(nil)

	for m.Selected() != ItemMinLength {
		m.HandleKey(key(tcell.KeyDown))
	}
	for i := 0; i < 20; i++ {
		m.HandleKey(key(tcell.KeyLeft))
	}
	if cfg.MinFeatureLength != parameter.MinFeatureLengthLow {
		t.Errorf("min length = %d", cfg.MinFeatureLength)
	}
	if !slices.ContainsFunc(m.View().Warnings, func(w string) bool { return w != "" }) {
		t.Error("low min length should warn")
	}

	m.HandleKey(key(tcell.KeyDown))
	for i := 0; i < 200; i++ {
		m.HandleKey(runeKey('l'))
	}
	if cfg.BatchSize != parameter.BatchSizeHigh {
		t.Errorf("batch = %d", cfg.BatchSize)
	}

	m.HandleKey(key(tcell.KeyDown))
	for i := 0; i < 200; i++ {
		m.HandleKey(runeKey('-'))
	}
	if cfg.CapacityCap != parameter.CapacityCapLow {
		t.Errorf("cap = %d", cfg.CapacityCap)
	}

	m.HandleKey(key(tcell.KeyDown))
	m.HandleKey(key(tcell.KeyEnter))
	if cfg.EvictionEnabled {
		t.Error("enter on eviction should toggle it off")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m, _ := newTestMenu(nil)
	m.HandleKey(key(tcell.KeyUp))
	if m.Selected() != ItemStart {
		t.Errorf("up from top selected %v", m.Selected())
	}
	m.HandleKey(runeKey('j'))
	if m.Selected() != ItemGenome {
		t.Errorf("down from bottom selected %v", m.Selected())
	}
}

func TestMenuReset(t *testing.T) {
	m, cfg := newTestMenu(nil)
	cfg.BatchSize = 5
	cfg.CapacityCap = 300
	cfg.EvictionEnabled = false
	cfg.Genome = genome.CustomSource([]byte(testFasta))
	cfg.Audio.Enabled = true

	m.HandleKey(runeKey('r'))

	d := config.Default()
	if cfg.BatchSize != d.BatchSize || cfg.CapacityCap != d.CapacityCap || !cfg.EvictionEnabled {
		t.Errorf("reset left %+v", *cfg)
	}
	if !cfg.Genome.Equal(genome.BundledSource()) {
		t.Error("reset should restore the bundled genome")
	}
	if !cfg.Audio.Enabled {
		t.Error("reset should keep audio settings")
	}
	if m.Selected() != ItemGenome {
		t.Error("reset should move the cursor to the top")
	}
}

func TestMenuQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), runeKey('q')} {
		m, _ := newTestMenu(nil)
		if act := m.HandleKey(ev); act != ActionQuit {
			t.Errorf("%v returned %v", ev.Name(), act)
		}
	}
}
