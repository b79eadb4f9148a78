package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/devclass/internal/breakpoint"
	"github.com/five82/devclass/internal/config"
	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/device"
	"github.com/five82/devclass/internal/prefs"
	"github.com/five82/devclass/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Detector  *detector.Detector
	Store     *state.Store
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	det       *detector.Detector
	store     *state.Store
	config    *config.Config
	prefsPath string
	logger    *slog.Logger
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string

	// Breaker chosen with the keyboard; zero when the configured breaker applies.
	override device.Type
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	det := opts.Detector
	if det == nil {
		det = detector.New(breakpoint.Default())
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		det:       det,
		store:     store,
		config:    cfg,
		prefsPath: prefsPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		override:  opts.Prefs.Breaker,
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.measure()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleBreaker):
		m.setBreaker(nextBreaker(m.det.Breaker()))
		return m, nil

	case key.Matches(msg, m.keys.ResetBreaker):
		m.resetBreaker()
		return m, nil
	}

	return m, nil
}

// measure classifies the current terminal width and records it.
func (m *Model) measure() {
	pixels := m.config.ToPixels(m.width)
	if m.store.Update(state.Measure(m.det, m.width, pixels)) {
		snap := m.store.Snapshot()
		m.logger.Info("device class changed",
			"class", snap.Class(),
			"width", snap.Width,
			"columns", snap.Columns,
			"mobile", snap.Mobile,
			"breaker", snap.Breaker,
		)
	}
}

func (m *Model) setBreaker(breaker device.Type) {
	if err := m.det.Configure(detector.Options{Breaker: breaker}); err != nil {
		m.status = err.Error()
		m.logger.Error("configure breaker", "error", err)
		return
	}
	m.override = breaker
	m.status = fmt.Sprintf("breaker set to %v", breaker)
	m.savePrefs()
	m.measure()
}

func (m *Model) resetBreaker() {
	breaker := m.config.Breaker
	if breaker == 0 {
		breaker = m.det.Table().Widest()
	}
	if err := m.det.Configure(detector.Options{Breaker: breaker}); err != nil {
		m.status = err.Error()
		m.logger.Error("reset breaker", "error", err)
		return
	}
	m.override = 0
	m.status = fmt.Sprintf("breaker reset to %v", breaker)
	m.savePrefs()
	m.measure()
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Breaker: m.override}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.status = fmt.Sprintf("save prefs: %v", err)
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// nextBreaker returns the device type after current in canonical order.
func nextBreaker(current device.Type) device.Type {
	types := device.Types()
	for i, typ := range types {
		if typ == current {
			return types[(i+1)%len(types)]
		}
	}
	return types[len(types)-1]
}
