package comment

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/events"
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// DefaultSize is the size of a comment nobody has resized yet
var DefaultSize = models.Size{Width: 30, Height: 8}

// Workspace is what a comment needs from the board that owns it
type Workspace interface {
	IsReadOnly() bool
	Events() *events.Bus
	Grid() models.GridOptions
	Logger() *zap.Logger
	AddTopComment(c Comment)
	RemoveTopComment(id string)
}

// Comment is the read surface shared by plain and rendered comments
type Comment interface {
	ID() string
	GetText() string
	GetSize() models.Size
	IsCollapsed() bool
	GetRelativeToSurfaceXY() models.Coordinate
	IsOwnEditable() bool
	IsOwnMovable() bool
	IsOwnDeletable() bool
	Dispose()
	IsDisposed() bool
	IsDeadOrDying() bool
}

// WorkspaceComment is the logical model of a free-floating comment. It owns
// the authoritative state and reports every transition to the workspace's
// event bus. All mutators silently do nothing once the comment is disposed.
type WorkspaceComment struct {
	workspace Workspace
	id        string

	text      string
	size      models.Size
	collapsed bool
	editable  bool
	movable   bool
	deletable bool
	location  models.Coordinate

	disposed  bool
	disposing bool
}

// NewWorkspaceComment creates a comment, registers it with ws and fires a
// create event. An empty id is replaced with a generated one.
func NewWorkspaceComment(ws Workspace, id string) *WorkspaceComment {
	c := newWorkspaceComment(ws, id)
	ws.AddTopComment(c)
	c.fireCreate()
	return c
}

func newWorkspaceComment(ws Workspace, id string) *WorkspaceComment {
	if id == "" {
		id = uuid.NewString()
	}
	return &WorkspaceComment{
		workspace: ws,
		id:        id,
		size:      DefaultSize,
		editable:  true,
		movable:   true,
		deletable: true,
	}
}

func (c *WorkspaceComment) ID() string {
	return c.id
}

// Workspace returns the owning workspace
func (c *WorkspaceComment) Workspace() Workspace {
	return c.workspace
}

// SetText replaces the text and fires a change event if it differs
func (c *WorkspaceComment) SetText(text string) {
	if c.disposed || text == c.text {
		return
	}
	old := c.text
	c.text = text
	c.fire(&events.Change{
		Base:    c.eventBase(),
		Element: events.ElementText,
		OldText: old,
		NewText: text,
	})
}

func (c *WorkspaceComment) GetText() string {
	return c.text
}

// SetSize stores size as given. Minimums are a rendering concern.
func (c *WorkspaceComment) SetSize(size models.Size) {
	if c.disposed || size.Equal(c.size) {
		return
	}
	old := c.size
	c.size = size
	c.fire(&events.Change{
		Base:    c.eventBase(),
		Element: events.ElementSize,
		OldSize: old,
		NewSize: size,
	})
}

// GetSize returns the stored size, which collapsing does not change
func (c *WorkspaceComment) GetSize() models.Size {
	return c.size
}

// SetCollapsed updates the collapsed flag and fires a collapse event
func (c *WorkspaceComment) SetCollapsed(collapsed bool) {
	if c.disposed || collapsed == c.collapsed {
		return
	}
	c.collapsed = collapsed
	c.fire(&events.Collapse{Base: c.eventBase(), NewCollapsed: collapsed})
}

func (c *WorkspaceComment) IsCollapsed() bool {
	return c.collapsed
}

func (c *WorkspaceComment) SetEditable(editable bool) {
	if c.disposed {
		return
	}
	c.editable = editable
}

// IsEditable reports whether the user may edit the comment right now
func (c *WorkspaceComment) IsEditable() bool {
	return c.IsOwnEditable() && !c.workspace.IsReadOnly()
}

// IsOwnEditable ignores the workspace read-only state
func (c *WorkspaceComment) IsOwnEditable() bool {
	return c.editable
}

func (c *WorkspaceComment) SetMovable(movable bool) {
	if c.disposed {
		return
	}
	c.movable = movable
}

func (c *WorkspaceComment) IsMovable() bool {
	return c.IsOwnMovable() && !c.workspace.IsReadOnly()
}

func (c *WorkspaceComment) IsOwnMovable() bool {
	return c.movable
}

func (c *WorkspaceComment) SetDeletable(deletable bool) {
	if c.disposed {
		return
	}
	c.deletable = deletable
}

// IsDeletable also refuses while the comment is already being torn down
func (c *WorkspaceComment) IsDeletable() bool {
	return c.IsOwnDeletable() && !c.IsDeadOrDying() && !c.workspace.IsReadOnly()
}

func (c *WorkspaceComment) IsOwnDeletable() bool {
	return c.deletable
}

// MoveTo changes the location. reason tags travel with the move event.
func (c *WorkspaceComment) MoveTo(location models.Coordinate, reason ...string) {
	if c.disposed || location.Equal(c.location) {
		return
	}
	old := c.location
	c.location = location
	c.fire(&events.Move{
		Base:   c.eventBase(),
		Old:    old,
		New:    location,
		Reason: reason,
	})
}

// GetRelativeToSurfaceXY returns the location in workspace coordinates
func (c *WorkspaceComment) GetRelativeToSurfaceXY() models.Coordinate {
	return c.location
}

// Dispose fires a delete event and removes the comment from its workspace.
// Calling it again is a no-op.
func (c *WorkspaceComment) Dispose() {
	if c.disposed {
		return
	}
	c.disposing = true
	c.fire(&events.Delete{Base: c.eventBase(), State: SaveState(c)})
	c.workspace.RemoveTopComment(c.id)
	c.disposed = true
	c.disposing = false
	c.logger().Debug("Comment disposed", zap.String("comment", c.id))
}

func (c *WorkspaceComment) IsDisposed() bool {
	return c.disposed
}

// IsDeadOrDying reports whether the comment is disposed or being disposed
func (c *WorkspaceComment) IsDeadOrDying() bool {
	return c.disposing || c.disposed
}

func (c *WorkspaceComment) fireCreate() {
	c.fire(&events.Create{Base: c.eventBase(), State: SaveState(c)})
}

func (c *WorkspaceComment) eventBase() events.Base {
	return events.Base{ID: c.id}
}

func (c *WorkspaceComment) fire(e events.Event) {
	if bus := c.workspace.Events(); bus != nil {
		bus.Fire(e)
	}
}

func (c *WorkspaceComment) logger() *zap.Logger {
	if l := c.workspace.Logger(); l != nil {
		return l
	}
	return zap.NewNop()
}
