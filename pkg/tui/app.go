package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/clipboard"
	"github.com/pluqqy/pluqqy-board/pkg/contextmenu"
	"github.com/pluqqy/pluqqy-board/pkg/events"
	"github.com/pluqqy/pluqqy-board/pkg/files"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
	"github.com/pluqqy/pluqqy-board/pkg/workspace"
)

// statusDuration is how long a StatusMsg stays before it is cleared
const statusDuration = 3 * time.Second

// footerHeight is the status/help line under the board
const footerHeight = 1

// Options configures an App
type Options struct {
	Workspace *workspace.Workspace
	Settings  *models.Settings
	Clipboard clipboard.Clipboard
	Logger    *zap.Logger
	// Save persists the board; defaults to files.WriteBoard
	Save func([]models.CommentState) error
}

// App is the interactive board: it feeds terminal input to the workspace
// surface and paints the result
type App struct {
	ws        *workspace.Workspace
	settings  *models.Settings
	clipboard clipboard.Clipboard
	logger    *zap.Logger
	save      func([]models.CommentState) error

	painter *render.Painter
	menu    *contextmenu.Model
	confirm *ConfirmationModel

	width  int
	height int

	statusMsg string
	statusSeq int

	dirty     bool
	editGroup string
}

// NewApp creates the board UI around an already loaded workspace
func NewApp(opts Options) *App {
	if opts.Settings == nil {
		opts.Settings = models.DefaultSettings()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Workspace == nil {
		opts.Workspace = workspace.New(workspace.OptionsFromSettings(opts.Settings, opts.Logger))
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Default()
	}
	if opts.Save == nil {
		opts.Save = files.WriteBoard
	}

	a := &App{
		ws:        opts.Workspace,
		settings:  opts.Settings,
		clipboard: opts.Clipboard,
		logger:    opts.Logger,
		save:      opts.Save,
		painter:   render.NewPainter(render.DefaultTheme()),
		menu:      contextmenu.New(),
		confirm:   NewConfirmation(),
	}
	a.ws.Events().Subscribe(a.onEvent)
	return a
}

func (a *App) onEvent(e events.Event) {
	if e.Undoable() {
		a.dirty = true
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutDeleteArea()
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case PersistentStatusMsg:
		return a, a.setStatus(string(msg), true)

	case clearStatusMsg:
		// a stale tick must not clear a newer message
		if msg.seq == 0 || msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	return a, nil
}

// setStatus shows msg in the status bar. Unless persistent it is cleared
// after statusDuration.
func (a *App) setStatus(msg string, persistent bool) tea.Cmd {
	a.statusSeq++
	a.statusMsg = msg
	if persistent {
		return nil
	}

	seq := a.statusSeq
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) status(format string, args ...any) tea.Cmd {
	return a.setStatus(fmt.Sprintf(format, args...), false)
}

// boardSize is the area below the header and above the footer
func (a *App) boardSize() (int, int) {
	return a.width, max(a.height-headerHeight-footerHeight, 0)
}

// layoutDeleteArea pins the trash zone to the bottom-right of the board
func (a *App) layoutDeleteArea() {
	if !a.settings.UI.ShowDeleteArea {
		a.ws.SetDeleteArea(models.Rect{})
		return
	}
	w, h := a.boardSize()
	size := a.settings.UI.DeleteAreaSize
	if size.Width <= 0 || size.Height <= 0 || size.Width > w || size.Height > h {
		a.ws.SetDeleteArea(models.Rect{})
		return
	}
	at := models.Coordinate{X: w - size.Width, Y: h - size.Height}
	a.ws.SetDeleteArea(models.NewRect(at, size))
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.confirm.Active() {
		return nil
	}

	ev := render.PointerEventFromMouse(msg)
	ev.Y -= headerHeight

	if a.menu.Active() && ev.Kind == render.PointerDown {
		a.menu.Hide()
		return nil
	}

	handled := a.ws.Surface().Dispatch(ev)
	if !handled && ev.Kind == render.PointerDown && ev.Button == render.ButtonLeft {
		a.ws.ClearSelection()
	}

	if options, at, ok := a.ws.PendingContextMenu(); ok {
		a.menu.Show(options, at)
	}
	return a.syncEditGroup()
}

// syncEditGroup makes one editing session one undo step: a group is opened
// when a comment starts editing and closed when it stops
func (a *App) syncEditGroup() tea.Cmd {
	bus := a.ws.Events()
	c := a.ws.Selected()
	editing := c != nil && c.IsEditing()

	switch {
	case editing && a.editGroup == "" && bus.Group() == "":
		a.editGroup = bus.NewGroup()
	case !editing && a.editGroup != "":
		if bus.Group() == a.editGroup {
			bus.SetGroup("")
		}
		a.editGroup = ""
	}
	return nil
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	w, h := a.boardSize()
	board := a.painter.Paint(a.ws.Surface().Root(), w, h)

	if a.menu.Active() {
		menu := a.menu.View()
		at := a.menu.Anchor()
		x, y := clampOverlay(at.X, at.Y, lipgloss.Width(menu), lipgloss.Height(menu), w, h)
		board = placeOverlay(x, y, menu, board)
	}
	if a.confirm.IsDialog() {
		dialog := a.confirm.View()
		dw, dh := lipgloss.Width(dialog), lipgloss.Height(dialog)
		x, y := clampOverlay((w-dw)/2, (h-dh)/2, dw, dh, w, h)
		board = placeOverlay(x, y, dialog, board)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.width, "pluqqy board", a.headerInfo()),
		board,
		a.footer(),
	)
}

func (a *App) headerInfo() string {
	var parts []string

	mode := "board"
	editing := false
	if c := a.ws.Selected(); c != nil && c.IsEditing() {
		mode, editing = "editing", true
	}
	parts = append(parts, GetModeBadgeStyle(editing).Render(mode))

	count := fmt.Sprintf("%d comments", a.ws.Len())
	if a.ws.Len() == 1 {
		count = "1 comment"
	}
	parts = append(parts, HeaderInfoStyle.Render(count))

	if grid := a.ws.Grid(); grid.ShouldSnap() {
		parts = append(parts, HeaderInfoStyle.Render(fmt.Sprintf("grid %d", grid.Spacing)))
	}
	if a.dirty {
		parts = append(parts, DirtyBadgeStyle.Render("●"))
	}
	if a.ws.IsReadOnly() {
		parts = append(parts, ReadOnlyBadgeStyle.Render("READ ONLY"))
	}
	return strings.Join(parts, "  ")
}

func (a *App) footer() string {
	switch {
	case a.confirm.Active() && !a.confirm.IsDialog():
		return StatusBarStyle.Width(a.width).Render(a.confirm.View())
	case a.statusMsg != "":
		return StatusBarStyle.Width(a.width).Render(a.statusMsg)
	default:
		return lipgloss.NewStyle().MaxWidth(a.width).Render(HelpStyle.Render(a.helpLine()))
	}
}

// Messages

// StatusMsg shows a message that clears itself
type StatusMsg string

// PersistentStatusMsg shows a message until the next one replaces it
type PersistentStatusMsg string

// clearStatusMsg clears the status set with the same seq; zero clears any
type clearStatusMsg struct {
	seq int
}
