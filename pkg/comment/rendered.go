package comment

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/contextmenu"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

// RenderedWorkspace is a Workspace that can also draw comments and host the
// gestures started on them
type RenderedWorkspace interface {
	Workspace
	Surface() *render.Surface
	Selected() *RenderedWorkspaceComment
	SetSelected(c *RenderedWorkspaceComment)
	StartGesture(c *RenderedWorkspaceComment, e render.PointerEvent) bool
	ShowContextMenu(options []contextmenu.Option, at models.Coordinate)
}

// syncPhase tracks which side started the change currently being bridged
type syncPhase int

const (
	phaseIdle syncPhase = iota
	phaseViewInitiated
	phaseModelInitiated
)

// DuplicateOffset is where a duplicate lands relative to its source
var DuplicateOffset = models.Coordinate{X: 2, Y: 2}

// RenderedWorkspaceComment is a WorkspaceComment with a view. Programmatic
// changes go to the model and are pushed into the view; user changes come
// from the view's listeners and go to the embedded model only.
type RenderedWorkspaceComment struct {
	*WorkspaceComment

	rws          RenderedWorkspace
	view         *CommentView
	dragStrategy DragStrategy
	phase        syncPhase
}

// NewRenderedWorkspaceComment creates a comment with its view, registers it
// with ws and fires a create event
func NewRenderedWorkspaceComment(ws RenderedWorkspace, id string) *RenderedWorkspaceComment {
	r := &RenderedWorkspaceComment{
		WorkspaceComment: newWorkspaceComment(ws, id),
		rws:              ws,
	}

	r.view = NewCommentView(ws.Surface())
	r.pushToView(func() {
		r.view.SetSize(r.WorkspaceComment.GetSize())
		r.view.SetEditable(r.IsEditable())
		r.view.SetDeletable(r.IsDeletable())
	})
	r.WorkspaceComment.SetSize(r.view.GetSize())

	r.addModelUpdateBindings()
	r.dragStrategy = NewCommentDragStrategy(r)
	ws.Surface().Bind(r.view.SvgRoot(), render.PointerDown, r.onPointerDown)

	ws.AddTopComment(r)
	r.fireCreate()
	return r
}

func (r *RenderedWorkspaceComment) addModelUpdateBindings() {
	r.view.AddSizeChangeListener(func(_, size models.Size) {
		r.pullFromView(func() { r.WorkspaceComment.SetSize(size) })
	})
	r.view.AddTextChangeListener(func(_, text string) {
		r.pullFromView(func() { r.WorkspaceComment.SetText(text) })
	})
	r.view.AddOnCollapseListener(func(_, collapsed bool) {
		r.pullFromView(func() { r.WorkspaceComment.SetCollapsed(collapsed) })
	})
	r.view.AddFocusListener(func(_, focused bool) {
		if focused {
			r.Select()
		}
	})
	r.view.AddDisposeListener(func() {
		if !r.IsDeadOrDying() {
			r.Dispose()
		}
	})
}

// pushToView runs fn with view callbacks suppressed
func (r *RenderedWorkspaceComment) pushToView(fn func()) {
	prev := r.phase
	r.phase = phaseModelInitiated
	defer func() { r.phase = prev }()
	fn()
}

// pullFromView applies a view-originated change unless the change is the
// echo of a push
func (r *RenderedWorkspaceComment) pullFromView(fn func()) {
	if r.phase == phaseModelInitiated {
		return
	}
	prev := r.phase
	r.phase = phaseViewInitiated
	defer func() { r.phase = prev }()
	fn()
}

// View returns the comment's view
func (r *RenderedWorkspaceComment) View() *CommentView {
	return r.view
}

func (r *RenderedWorkspaceComment) SetText(text string) {
	if r.IsDisposed() {
		return
	}
	r.inGroup(func() {
		r.WorkspaceComment.SetText(text)
		r.pushToView(func() { r.view.SetText(text) })
		r.WorkspaceComment.SetSize(r.view.GetSize())
	})
}

// inGroup runs fn so a text change and the growth it forces undo together
func (r *RenderedWorkspaceComment) inGroup(fn func()) {
	if bus := r.rws.Events(); bus != nil {
		bus.WithGroup(fn)
		return
	}
	fn()
}

// SetSize lets the view clamp size to its minimum and stores the result
func (r *RenderedWorkspaceComment) SetSize(size models.Size) {
	if r.IsDisposed() {
		return
	}
	r.pushToView(func() { r.view.SetSize(size) })
	r.WorkspaceComment.SetSize(r.view.GetSize())
}

func (r *RenderedWorkspaceComment) SetCollapsed(collapsed bool) {
	if r.IsDisposed() {
		return
	}
	r.WorkspaceComment.SetCollapsed(collapsed)
	r.pushToView(func() { r.view.SetCollapsed(collapsed) })
}

// SetEditable stores the own flag and shows the effective one
func (r *RenderedWorkspaceComment) SetEditable(editable bool) {
	if r.IsDisposed() {
		return
	}
	r.WorkspaceComment.SetEditable(editable)
	r.RefreshEditable()
}

func (r *RenderedWorkspaceComment) SetDeletable(deletable bool) {
	if r.IsDisposed() {
		return
	}
	r.WorkspaceComment.SetDeletable(deletable)
	r.RefreshEditable()
}

// RefreshEditable re-pushes the workspace-aware permissions to the view.
// The workspace calls it when its read-only state changes.
func (r *RenderedWorkspaceComment) RefreshEditable() {
	if r.IsDisposed() {
		return
	}
	r.pushToView(func() {
		r.view.SetEditable(r.IsEditable())
		r.view.SetDeletable(r.IsDeletable())
	})
}

func (r *RenderedWorkspaceComment) MoveTo(location models.Coordinate, reason ...string) {
	if r.IsDisposed() {
		return
	}
	r.WorkspaceComment.MoveTo(location, reason...)
	r.view.MoveTo(location)
}

// MoveBy shifts the comment by (dx, dy)
func (r *RenderedWorkspaceComment) MoveBy(dx, dy int, reason ...string) {
	loc := r.GetRelativeToSurfaceXY()
	r.MoveTo(models.Coordinate{X: loc.X + dx, Y: loc.Y + dy}, reason...)
}

// MoveDuringDrag moves the view only. The model catches up when the drag
// ends with a single move event.
func (r *RenderedWorkspaceComment) MoveDuringDrag(location models.Coordinate) {
	if r.IsDisposed() {
		return
	}
	r.view.MoveTo(location)
}

// GetBoundingRectangle covers the comment as drawn, so a collapsed comment
// is only its top bar
func (r *RenderedWorkspaceComment) GetBoundingRectangle() models.Rect {
	return models.NewRect(r.view.GetRelativeToSurfaceXY(), r.view.EffectiveSize())
}

// SetDragging toggles drag styling
func (r *RenderedWorkspaceComment) SetDragging(dragging bool) {
	r.view.SetDragging(dragging)
}

func (r *RenderedWorkspaceComment) DragStrategy() DragStrategy {
	return r.dragStrategy
}

// SetDragStrategy replaces the drag behavior; nil restores the default
func (r *RenderedWorkspaceComment) SetDragStrategy(s DragStrategy) {
	if s == nil {
		s = NewCommentDragStrategy(r)
	}
	r.dragStrategy = s
}

func (r *RenderedWorkspaceComment) StartDrag(e render.PointerEvent) {
	r.dragStrategy.StartDrag(e)
}

func (r *RenderedWorkspaceComment) Drag(newLocation models.Coordinate, e render.PointerEvent) {
	r.dragStrategy.Drag(newLocation, e)
}

func (r *RenderedWorkspaceComment) EndDrag(e render.PointerEvent) {
	r.dragStrategy.EndDrag(e)
}

func (r *RenderedWorkspaceComment) RevertDrag() {
	r.dragStrategy.RevertDrag()
}

// Select highlights the comment and makes it the workspace selection
func (r *RenderedWorkspaceComment) Select() {
	if r.IsDeadOrDying() {
		return
	}
	if cur := r.rws.Selected(); cur != nil && cur != r {
		cur.Unselect()
	}
	r.view.SetHighlighted(true)
	if r.rws.Selected() != r {
		r.rws.SetSelected(r)
	}
}

// Unselect drops the highlight and clears the workspace selection if it
// points here
func (r *RenderedWorkspaceComment) Unselect() {
	r.view.SetHighlighted(false)
	r.view.Blur()
	if r.rws.Selected() == r {
		r.rws.SetSelected(nil)
	}
}

func (r *RenderedWorkspaceComment) IsSelected() bool {
	return r.view.IsHighlighted()
}

// SetDeleteStyle shows whether dropping now would delete the comment
func (r *RenderedWorkspaceComment) SetDeleteStyle(wouldDelete bool) {
	r.view.SetDeleteStyle(wouldDelete)
}

// IsCopyable reports whether a copy could be pasted back with the same
// permissions the user has on this one
func (r *RenderedWorkspaceComment) IsCopyable() bool {
	return r.IsOwnDeletable() && r.IsOwnMovable()
}

// ToCopyData returns the clipboard payload, or nil if the comment may not
// be copied
func (r *RenderedWorkspaceComment) ToCopyData() *models.CommentCopyData {
	if !r.IsCopyable() {
		return nil
	}
	return &models.CommentCopyData{
		Paster: models.CommentPasterType,
		State:  SaveState(r),
	}
}

// ShowContextMenu offers the comment's actions at the pointer position
func (r *RenderedWorkspaceComment) ShowContextMenu(e render.PointerEvent) {
	if r.IsDeadOrDying() {
		return
	}
	collapseText := "Collapse Comment"
	if r.IsCollapsed() {
		collapseText = "Expand Comment"
	}
	options := []contextmenu.Option{
		{
			Text:    "Duplicate",
			Enabled: r.IsCopyable() && !r.rws.IsReadOnly(),
			Callback: func() {
				if _, err := Duplicate(r); err != nil {
					r.logger().Warn("Duplicate failed", zap.String("comment", r.ID()), zap.Error(err))
				}
			},
		},
		{
			Text:     collapseText,
			Enabled:  r.IsEditable(),
			Callback: func() { r.SetCollapsed(!r.IsCollapsed()) },
		},
		{
			Text:     "Delete Comment",
			Enabled:  r.IsDeletable(),
			Callback: r.Dispose,
		},
	}
	r.rws.ShowContextMenu(options, e.Coordinate())
}

// SnapToGrid moves the comment to the nearest grid point if snapping is on
func (r *RenderedWorkspaceComment) SnapToGrid() {
	if r.IsDeadOrDying() {
		return
	}
	grid := r.rws.Grid()
	if !grid.ShouldSnap() {
		return
	}
	r.MoveTo(grid.AlignXY(r.GetRelativeToSurfaceXY()), "snap")
}

// Edit focuses the text area
func (r *RenderedWorkspaceComment) Edit() tea.Cmd {
	if r.IsDeadOrDying() {
		return nil
	}
	return r.view.Focus()
}

// StopEditing blurs the text area
func (r *RenderedWorkspaceComment) StopEditing() {
	r.view.Blur()
}

func (r *RenderedWorkspaceComment) IsEditing() bool {
	return r.view.Focused()
}

// HandleKey forwards a key to the text area while editing
func (r *RenderedWorkspaceComment) HandleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	r.inGroup(func() { cmd = r.view.HandleKey(msg) })
	return cmd
}

func (r *RenderedWorkspaceComment) onPointerDown(e render.PointerEvent) bool {
	if e.Button == render.ButtonRight {
		r.Select()
		r.ShowContextMenu(e)
		return true
	}
	return r.rws.StartGesture(r, e)
}

// Dispose tears down the view and then the model. Calling it again, or from
// the view's own dispose listener, does nothing.
func (r *RenderedWorkspaceComment) Dispose() {
	if r.IsDeadOrDying() {
		return
	}
	r.disposing = true
	if r.rws.Selected() == r {
		r.rws.SetSelected(nil)
	}
	r.view.Dispose()
	r.disposing = false
	r.WorkspaceComment.Dispose()
}
