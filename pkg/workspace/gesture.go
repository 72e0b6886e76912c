package workspace

import (
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

// gesture follows one pointer press on a comment from down to up. It stays
// a click until the pointer travels further than the drag radius.
type gesture struct {
	comment      *comment.RenderedWorkspaceComment
	startPointer models.Coordinate
	startComment models.Coordinate
	dragging     bool
	wouldDelete  bool

	moveBinding *render.Binding
	upBinding   *render.Binding
}

// StartGesture begins tracking a left press on c. It is bound to every
// comment's root node.
func (w *Workspace) StartGesture(c *comment.RenderedWorkspaceComment, e render.PointerEvent) bool {
	if e.Button != render.ButtonLeft || c.IsDeadOrDying() {
		return false
	}
	if w.gesture != nil {
		w.CancelGesture()
	}

	g := &gesture{
		comment:      c,
		startPointer: e.Coordinate(),
		startComment: c.GetRelativeToSurfaceXY(),
	}
	g.moveBinding = w.surface.BindDocument(render.PointerMove, w.onGestureMove)
	g.upBinding = w.surface.BindDocument(render.PointerUp, w.onGestureUp)
	w.gesture = g
	return true
}

// InGesture reports whether a pointer press is being tracked
func (w *Workspace) InGesture() bool {
	return w.gesture != nil
}

// Dragging reports whether the tracked press turned into a drag
func (w *Workspace) Dragging() bool {
	return w.gesture != nil && w.gesture.dragging
}

func (w *Workspace) onGestureMove(e render.PointerEvent) bool {
	g := w.gesture
	if g == nil {
		return false
	}
	if g.comment.IsDeadOrDying() {
		if g.dragging {
			g.comment.EndDrag(e)
		}
		w.endGesture()
		return true
	}

	delta := e.Coordinate().Sub(g.startPointer)
	if !g.dragging {
		if !w.exceedsDragRadius(delta) || !g.comment.IsMovable() {
			return true
		}
		g.dragging = true
		g.comment.Select()
		g.comment.StartDrag(e)
	}

	g.comment.Drag(g.startComment.Add(delta), e)
	w.updateDeleteIntent(g, e.Coordinate())
	return true
}

func (w *Workspace) onGestureUp(e render.PointerEvent) bool {
	g := w.gesture
	if g == nil {
		return false
	}
	w.onGestureMove(e)
	if w.gesture == nil {
		return true
	}

	c := g.comment
	switch {
	case g.dragging && g.wouldDelete:
		w.logger.Debug("Comment dropped on delete area", zap.String("comment", c.ID()))
		c.Dispose()
		c.EndDrag(e)
	case g.dragging:
		c.EndDrag(e)
	default:
		c.Select()
	}
	w.endGesture()
	return true
}

// CancelGesture abandons the tracked press, putting a dragged comment back
// where the drag started
func (w *Workspace) CancelGesture() {
	g := w.gesture
	if g == nil {
		return
	}
	if g.dragging {
		g.comment.RevertDrag()
	}
	w.endGesture()
}

func (w *Workspace) endGesture() {
	g := w.gesture
	if g == nil {
		return
	}
	w.surface.Unbind(g.moveBinding)
	w.surface.Unbind(g.upBinding)
	if !g.comment.IsDisposed() {
		g.comment.SetDeleteStyle(false)
	}
	w.deleteAreaNode.RemoveClass(render.ClassDeleteAreaHot)
	w.gesture = nil
}

func (w *Workspace) exceedsDragRadius(delta models.Coordinate) bool {
	return abs(delta.X) > w.dragRadius || abs(delta.Y) > w.dragRadius
}

// updateDeleteIntent styles the comment and the trash zone while a
// deletable comment is dragged over it
func (w *Workspace) updateDeleteIntent(g *gesture, pointer models.Coordinate) {
	would := w.hasDeleteArea() && w.deleteArea.Contains(pointer) && g.comment.IsDeletable()
	if would == g.wouldDelete {
		return
	}
	g.wouldDelete = would
	g.comment.SetDeleteStyle(would)
	w.deleteAreaNode.ToggleClass(render.ClassDeleteAreaHot, would)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
