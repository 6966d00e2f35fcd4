package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model hosting one snake game.
// Frame ticks feed the wall-clock delta into Game.Tick; key messages that are
// not host bindings go to Game.OnKey.
type Model struct {
	game    *snake.Game
	screen  *core.Screen
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	width    int
	height   int
	lastTick time.Time
	paused   bool
	quitting bool
	reported bool // Game over has been logged
}

// NewModel creates a host model for a new game. A zero seed picks one from
// the clock. A nil logger discards output.
func NewModel(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) Model {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    snake.New(cfg, rc.Seed),
		screen:  core.NewScreen(rc.ScreenW, rc.ScreenH),
		runtime: rc,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		width:   rc.ScreenW,
		height:  rc.ScreenH,
	}
	m.layout()

	logger.Debug("game started", "seed", rc.Seed, "board", cfg.Bounds(), "interval", cfg.TickInterval())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case key.Matches(msg, m.keys.Restart):
		m.restart()

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Pause):
		if !m.game.Dead() {
			m.paused = !m.paused
		}

	default:
		if !m.held() {
			m.game.OnKey(msg.String())
		}
	}

	return m, nil
}

// handleTick advances the game by the time since the previous frame. The
// clock keeps running while the game is held so resuming never jumps.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.held() || m.game.Dead() {
		return m, frameCmd(m.runtime.FrameRate)
	}

	if res := m.game.Tick(delta); res.Terminated() {
		m.gameOver(res)
	}

	return m, frameCmd(m.runtime.FrameRate)
}

// held reports whether the game is paused or hidden behind the too-small
// notice. A held game takes neither steps nor input.
func (m Model) held() bool {
	return m.paused || !m.game.Fits(m.screen.Width(), m.screen.Height())
}

func (m *Model) gameOver(res snake.Result) {
	m.keys.Restart.SetEnabled(true)
	if m.reported {
		return
	}
	m.reported = true

	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"reason", res.Reason,
		"length", len(snap.Tail)+1,
		"ticks", snap.Tick,
	)
	m.logger.Debug("final state\n" + m.game.DebugState())
}

func (m *Model) restart() {
	m.runtime.Seed = time.Now().UnixNano()
	m.game.Reset(m.runtime.Seed)
	m.keys.Restart.SetEnabled(false)
	m.paused = false
	m.reported = false
	m.logger.Debug("game restarted", "seed", m.runtime.Seed)
}

// saveScreenshot writes the current frame as plain text to
// ~/.snake/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// layout sizes the screen buffer to the terminal minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(max(m.width, 0), max(m.height-footer, 0))
}

// View renders the game, any overlay, and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.game.Fits(m.screen.Width(), m.screen.Height()) {
		switch {
		case m.game.Dead():
			snap := m.game.Snapshot()
			m.screen.DrawOverlay("GAME OVER", describeReason(snap.Reason)+" - press r", core.ColorAlert)
		case m.paused:
			m.screen.DrawOverlay("PAUSED", "press p to resume", core.ColorText)
		}
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func describeReason(r snake.Reason) string {
	switch r {
	case snake.ReasonWallCollision:
		return "Hit the wall"
	case snake.ReasonSelfCollision:
		return "Ran into itself"
	case snake.ReasonBoardFull:
		return "Board full"
	default:
		return string(r)
	}
}

// Run starts a local Bubble Tea program on the alternate screen.
func Run(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rc, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
