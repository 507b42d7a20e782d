// Package app drives the menu and run phases on a terminal screen
package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/orf-cloud/audio"
	"github.com/lixenwraith/orf-cloud/config"
	"github.com/lixenwraith/orf-cloud/core"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/picker"
	"github.com/lixenwraith/orf-cloud/render"
	"github.com/lixenwraith/orf-cloud/status"
	"github.com/lixenwraith/orf-cloud/system"
)

// Options are optional collaborators; zero values get defaults
type Options struct {
	Status *status.Registry
	Cues   *audio.CuePlayer
	Clock  engine.TimeProvider
	Picker *picker.Task
}

// App owns the screen and switches between menu and run phases
type App struct {
	screen   tcell.Screen
	cfg      config.Config
	phase    Phase
	menu     *Menu
	run      *Run
	renderer *render.SceneRenderer
	status   *status.Registry
	cues     *audio.CuePlayer
	clock    engine.TimeProvider
	quit     bool
}

// New creates an app in the menu phase
func New(screen tcell.Screen, cfg config.Config, opts Options) *App {
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	task := opts.Picker
	if task == nil {
		task = picker.NewTask()
	}
	cfg.Clamp()

	a := &App{
		screen:   screen,
		cfg:      cfg,
		phase:    PhaseMenu,
		renderer: render.NewSceneRenderer(screen, render.NewCamera()),
		status:   reg,
		cues:     opts.Cues,
		clock:    clock,
	}
	a.menu = NewMenu(context.Background(), &a.cfg, task)
	return a
}

// Phase returns the current phase
func (a *App) Phase() Phase {
	return a.phase
}

// Config returns the current settings
func (a *App) Config() config.Config {
	return a.cfg
}

// ActiveRun returns the run in progress, nil in the menu
func (a *App) ActiveRun() *Run {
	return a.run
}

// Done reports whether the operator asked to quit
func (a *App) Done() bool {
	return a.quit
}

// Run processes input and frames until ctx is done or the operator quits
func (a *App) Run(ctx context.Context) error {
	a.menu.ctx = ctx
	defer a.shutdown()

	events := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ev)
		case <-ticker.C:
			a.Frame()
		}
	}
	return nil
}

// HandleEvent routes one terminal event to the active phase
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if a.phase == PhaseMenu {
			a.handleMenuKey(ev)
		} else {
			a.handleRunKey(ev)
		}
	}
}

// Frame runs one tick of the active phase and presents it
func (a *App) Frame() {
	a.screen.Clear()
	switch a.phase {
	case PhaseMenu:
		a.menu.Poll()
		render.DrawMenu(a.screen, a.menu.View())
	case PhaseRun:
		a.renderer.SyncView(a.run.World)
		a.run.Loop.Step()
		a.renderer.Draw(a.run.World)
		st := a.run.Pipeline.Stats()
		render.DrawHUD(a.screen, a.status, render.HUDInfo{
			GenomeID:  a.run.GenomeID,
			Eviction:  a.run.Pipeline.Options().EvictionEnabled,
			Exhausted: st.Exhausted,
			Muted:     a.cues != nil && !a.cues.Enabled(),
		})
	}
	a.screen.Show()
}

func (a *App) handleMenuKey(ev *tcell.EventKey) {
	switch a.menu.HandleKey(ev) {
	case ActionQuit:
		a.menu.Leave()
		a.quit = true
	case ActionStart:
		a.startRun()
	}
}

func (a *App) handleRunKey(ev *tcell.EventKey) {
	p := a.run.Pipeline
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyEscape:
		a.stopRun()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		a.quit = true
	case 'm':
		a.stopRun()
	case '+', '=':
		a.cfg.CapacityCap += capacityStep
		a.cfg.Clamp()
		p.SetCapacityCap(a.cfg.CapacityCap)
	case '-', '_':
		a.cfg.CapacityCap -= capacityStep
		a.cfg.Clamp()
		p.SetCapacityCap(a.cfg.CapacityCap)
	case 'e':
		a.cfg.EvictionEnabled = !a.cfg.EvictionEnabled
		p.SetEvictionEnabled(a.cfg.EvictionEnabled)
	case 's':
		if a.cues != nil {
			a.cues.ToggleMute()
		}
	}
}

func (a *App) startRun() {
	deps := RunDeps{
		Clock:  a.clock,
		Status: a.status,
		Camera: a.renderer.Camera(),
	}
	if a.cues != nil {
		deps.Cues = a.cues
	}

	r, err := StartRun(a.cfg, deps)
	if err != nil {
		log.Error().Err(err).Msg("run start failed")
		a.menu.SetFailure(err)
		return
	}
	a.menu.Leave()
	a.run = r
	a.phase = PhaseRun
}

func (a *App) stopRun() {
	if a.run != nil {
		a.run.Stop()
		a.run = nil
	}
	a.phase = PhaseMenu
}

func (a *App) shutdown() {
	a.menu.Leave()
	if a.run != nil {
		a.run.Stop()
		a.run = nil
	}
}

var _ system.CueSink = (*audio.CuePlayer)(nil)
