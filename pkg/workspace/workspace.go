package workspace

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/contextmenu"
	"github.com/pluqqy/pluqqy-board/pkg/events"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

var (
	// ErrCommentNotFound is returned when no comment matches an id
	ErrCommentNotFound = errors.New("comment not found")
	// ErrAmbiguousID is returned when an id prefix matches several comments
	ErrAmbiguousID = errors.New("id prefix matches more than one comment")
	// ErrDuplicateID is returned when loading two comments with the same id
	ErrDuplicateID = errors.New("duplicate comment id")
)

// Options configures a new Workspace
type Options struct {
	ReadOnly    bool
	Grid        models.GridOptions
	DragRadius  int
	DefaultSize models.Size
	// DeleteArea is the trash zone; the zero Rect disables it
	DeleteArea models.Rect
	Logger     *zap.Logger
}

// OptionsFromSettings maps the settings file onto workspace options
func OptionsFromSettings(s *models.Settings, logger *zap.Logger) Options {
	return Options{
		ReadOnly:    s.Workspace.ReadOnly,
		Grid:        s.Workspace.Grid,
		DragRadius:  s.Workspace.DragRadius,
		DefaultSize: s.DefaultCommentSize(),
		Logger:      logger,
	}
}

type pendingMenu struct {
	options []contextmenu.Option
	at      models.Coordinate
}

// Workspace is the board that owns every comment, the surface they draw
// on and the event bus they report to
type Workspace struct {
	readOnly    bool
	grid        models.GridOptions
	dragRadius  int
	defaultSize models.Size

	logger  *zap.Logger
	bus     *events.Bus
	surface *render.Surface

	comments map[string]comment.Comment
	order    []string
	selected *comment.RenderedWorkspaceComment

	deleteArea     models.Rect
	deleteAreaNode *render.Node

	menu    *pendingMenu
	gesture *gesture
	history *history
}

// New creates an empty workspace
func New(opts Options) *Workspace {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultSize.Width <= 0 || opts.DefaultSize.Height <= 0 {
		opts.DefaultSize = comment.DefaultSize
	}
	if opts.DragRadius < 0 {
		opts.DragRadius = 0
	}

	w := &Workspace{
		readOnly:    opts.ReadOnly,
		grid:        opts.Grid,
		dragRadius:  opts.DragRadius,
		defaultSize: opts.DefaultSize,
		logger:      logger,
		bus:         events.NewBus(logger),
		surface:     render.NewSurface(),
		comments:    make(map[string]comment.Comment),
	}

	w.deleteAreaNode = w.surface.Root().Append(render.NewNode(render.KindRect, "delete-area"))
	w.deleteAreaNode.AddClass(render.ClassDeleteArea)
	w.deleteAreaNode.SetAttr(render.AttrBorder, "")
	label := w.deleteAreaNode.Append(render.NewNode(render.KindText, "delete-area-label"))
	label.SetPosition(1, 1)
	label.SetText("Delete")
	w.SetDeleteArea(opts.DeleteArea)

	w.history = newHistory(w)
	return w
}

func (w *Workspace) IsReadOnly() bool {
	return w.readOnly
}

// SetReadOnly switches read-only mode and refreshes what every comment
// shows as editable. A drag in progress is reverted.
func (w *Workspace) SetReadOnly(readOnly bool) {
	if readOnly == w.readOnly {
		return
	}
	if readOnly {
		w.CancelGesture()
	}
	w.readOnly = readOnly
	for _, c := range w.RenderedComments() {
		c.RefreshEditable()
		if readOnly {
			c.StopEditing()
		}
	}
	w.logger.Info("Workspace read-only mode changed", zap.Bool("read_only", readOnly))
}

func (w *Workspace) Events() *events.Bus {
	return w.bus
}

func (w *Workspace) Grid() models.GridOptions {
	return w.grid
}

func (w *Workspace) SetGrid(grid models.GridOptions) {
	w.grid = grid
}

func (w *Workspace) Logger() *zap.Logger {
	return w.logger
}

func (w *Workspace) Surface() *render.Surface {
	return w.surface
}

// DefaultSize is the size given to comments created with NewComment
func (w *Workspace) DefaultSize() models.Size {
	return w.defaultSize
}

// DeleteArea returns the trash zone, or the zero Rect if there is none
func (w *Workspace) DeleteArea() models.Rect {
	return w.deleteArea
}

// SetDeleteArea moves the trash zone. The zero Rect hides it.
func (w *Workspace) SetDeleteArea(area models.Rect) {
	w.deleteArea = area
	w.deleteAreaNode.SetPosition(area.Left, area.Top)
	w.deleteAreaNode.SetSize(area.Width(), area.Height())
	w.deleteAreaNode.SetHidden(area.Width() <= 0 || area.Height() <= 0)
}

func (w *Workspace) hasDeleteArea() bool {
	return w.deleteArea.Width() > 0 && w.deleteArea.Height() > 0
}

// AddTopComment registers c. Called by comment constructors.
func (w *Workspace) AddTopComment(c comment.Comment) {
	if _, exists := w.comments[c.ID()]; !exists {
		w.order = append(w.order, c.ID())
	}
	w.comments[c.ID()] = c
}

// RemoveTopComment forgets the comment with id. Called by Dispose.
func (w *Workspace) RemoveTopComment(id string) {
	if _, ok := w.comments[id]; !ok {
		return
	}
	delete(w.comments, id)
	for i, cur := range w.order {
		if cur == id {
			w.order = append(w.order[:i:i], w.order[i+1:]...)
			break
		}
	}
	if w.selected != nil && w.selected.ID() == id {
		w.selected = nil
	}
}

// GetCommentByID returns the comment with exactly id, or nil
func (w *Workspace) GetCommentByID(id string) comment.Comment {
	return w.comments[id]
}

// Lookup finds a rendered comment by id or unique id prefix
func (w *Workspace) Lookup(id string) (*comment.RenderedWorkspaceComment, error) {
	if id == "" {
		return nil, fmt.Errorf("empty id: %w", ErrCommentNotFound)
	}
	if c, ok := w.comments[id].(*comment.RenderedWorkspaceComment); ok {
		return c, nil
	}

	var match *comment.RenderedWorkspaceComment
	for _, c := range w.RenderedComments() {
		if !strings.HasPrefix(c.ID(), id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%q: %w", id, ErrAmbiguousID)
		}
		match = c
	}
	if match == nil {
		return nil, fmt.Errorf("%q: %w", id, ErrCommentNotFound)
	}
	return match, nil
}

// TopComments returns every comment in creation order
func (w *Workspace) TopComments() []comment.Comment {
	out := make([]comment.Comment, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.comments[id])
	}
	return out
}

// RenderedComments is TopComments restricted to rendered comments
func (w *Workspace) RenderedComments() []*comment.RenderedWorkspaceComment {
	out := make([]*comment.RenderedWorkspaceComment, 0, len(w.order))
	for _, id := range w.order {
		if c, ok := w.comments[id].(*comment.RenderedWorkspaceComment); ok {
			out = append(out, c)
		}
	}
	return out
}

func (w *Workspace) Len() int {
	return len(w.order)
}

// NewComment creates a rendered comment with text at the given location.
// Its events form one undo step.
func (w *Workspace) NewComment(text string, at models.Coordinate) *comment.RenderedWorkspaceComment {
	var c *comment.RenderedWorkspaceComment
	w.bus.WithGroup(func() {
		c = comment.NewRenderedWorkspaceComment(w, "")
		c.SetSize(w.defaultSize)
		c.SetText(text)
		c.MoveTo(at, "create")
		c.SnapToGrid()
	})
	w.logger.Debug("Created comment", zap.String("comment", c.ID()))
	return c
}

func (w *Workspace) Selected() *comment.RenderedWorkspaceComment {
	return w.selected
}

// SetSelected records the selection. Highlighting is the comment's job;
// use Select on the comment to change both.
func (w *Workspace) SetSelected(c *comment.RenderedWorkspaceComment) {
	w.selected = c
}

// SelectNext moves the selection to the next comment in creation order,
// wrapping around. It returns the new selection.
func (w *Workspace) SelectNext(step int) *comment.RenderedWorkspaceComment {
	comments := w.RenderedComments()
	if len(comments) == 0 {
		return nil
	}
	idx := -1
	for i, c := range comments {
		if c == w.selected {
			idx = i
			break
		}
	}
	n := len(comments)
	next := 0
	if idx >= 0 {
		next = ((idx+step)%n + n) % n
	} else if step < 0 {
		next = n - 1
	}
	comments[next].Select()
	return comments[next]
}

// ClearSelection unselects the current comment, if any
func (w *Workspace) ClearSelection() {
	if w.selected != nil {
		w.selected.Unselect()
	}
}

// ShowContextMenu stores a menu for the host UI to display
func (w *Workspace) ShowContextMenu(options []contextmenu.Option, at models.Coordinate) {
	w.menu = &pendingMenu{options: options, at: at}
}

// PendingContextMenu hands over the menu requested since the last call
func (w *Workspace) PendingContextMenu() ([]contextmenu.Option, models.Coordinate, bool) {
	if w.menu == nil {
		return nil, models.Coordinate{}, false
	}
	m := w.menu
	w.menu = nil
	return m.options, m.at, true
}

// Clear disposes every comment without recording undo history
func (w *Workspace) Clear() {
	w.CancelGesture()
	w.bus.Silently(func() {
		for _, c := range w.TopComments() {
			c.Dispose()
		}
	})
	w.selected = nil
	w.history.reset()
}

// Save returns the state of every comment in creation order
func (w *Workspace) Save() []models.CommentState {
	states := make([]models.CommentState, 0, len(w.order))
	for _, c := range w.TopComments() {
		states = append(states, comment.SaveState(c))
	}
	return states
}

// Load replaces the board with states. No events are fired and the undo
// history starts empty.
func (w *Workspace) Load(states []models.CommentState) error {
	seen := make(map[string]bool, len(states))
	for i, s := range states {
		if s.ID == "" {
			return fmt.Errorf("comment %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%s: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = true
	}

	w.Clear()
	w.bus.Silently(func() {
		for _, s := range states {
			c := comment.NewRenderedWorkspaceComment(w, s.ID)
			comment.ApplyState(c, s)
		}
	})
	w.history.reset()
	w.logger.Info("Loaded board", zap.Int("comments", len(states)))
	return nil
}

// restore recreates a comment from saved state, used by undo and redo.
// A non-negative at puts it back at that place in creation order; it is
// still drawn on top.
func (w *Workspace) restore(state models.CommentState, at int) {
	if _, exists := w.comments[state.ID]; exists {
		return
	}
	c := comment.NewRenderedWorkspaceComment(w, state.ID)
	comment.ApplyState(c, state)
	if at >= 0 {
		w.moveInOrder(state.ID, at)
	}
}

func (w *Workspace) indexOf(id string) int {
	for i, cur := range w.order {
		if cur == id {
			return i
		}
	}
	return -1
}

// moveInOrder moves id to index at of the creation order, clamped to the end
func (w *Workspace) moveInOrder(id string, at int) {
	from := w.indexOf(id)
	if from < 0 {
		return
	}
	if at >= len(w.order) {
		at = len(w.order) - 1
	}
	if from == at {
		return
	}
	w.order = append(w.order[:from:from], w.order[from+1:]...)
	w.order = append(w.order[:at], append([]string{id}, w.order[at:]...)...)
}
