package comment

import (
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

// DragStrategy does the bookkeeping for dragging one element
type DragStrategy interface {
	IsMovable() bool
	StartDrag(e render.PointerEvent)
	Drag(newLocation models.Coordinate, e render.PointerEvent)
	EndDrag(e render.PointerEvent)
	RevertDrag()
}

// CommentDragStrategy drags a rendered comment. All events of one drag
// share an event group so undo treats the drag as a single step.
type CommentDragStrategy struct {
	comment       *RenderedWorkspaceComment
	startLocation models.Coordinate
	location      models.Coordinate
	ownsGroup     bool
	dragging      bool
}

// NewCommentDragStrategy creates the default strategy for c
func NewCommentDragStrategy(c *RenderedWorkspaceComment) *CommentDragStrategy {
	return &CommentDragStrategy{comment: c}
}

func (s *CommentDragStrategy) IsMovable() bool {
	return s.comment.IsMovable() && !s.comment.IsDeadOrDying()
}

func (s *CommentDragStrategy) StartDrag(e render.PointerEvent) {
	if !s.IsMovable() || s.dragging {
		return
	}
	s.dragging = true
	s.startLocation = s.comment.GetRelativeToSurfaceXY()
	s.location = s.startLocation

	if bus := s.comment.rws.Events(); bus != nil && bus.Group() == "" {
		bus.NewGroup()
		s.ownsGroup = true
	}

	s.comment.SetDragging(true)
	s.comment.View().BringToFront()
}

// Drag moves only the view; the model is updated once in EndDrag
func (s *CommentDragStrategy) Drag(newLocation models.Coordinate, e render.PointerEvent) {
	if !s.dragging {
		return
	}
	s.location = newLocation
	s.comment.MoveDuringDrag(newLocation)
}

func (s *CommentDragStrategy) EndDrag(e render.PointerEvent) {
	if !s.dragging {
		return
	}
	s.finish(s.location, "drag")
}

// RevertDrag puts the comment back where the drag started
func (s *CommentDragStrategy) RevertDrag() {
	if !s.dragging {
		return
	}
	s.finish(s.startLocation, "drag", "revert")
}

// Dragging reports whether a drag is in progress
func (s *CommentDragStrategy) Dragging() bool {
	return s.dragging
}

func (s *CommentDragStrategy) finish(location models.Coordinate, reason ...string) {
	s.dragging = false
	s.comment.SetDragging(false)
	s.comment.SetDeleteStyle(false)
	s.comment.MoveTo(location, reason...)
	s.comment.SnapToGrid()

	if s.ownsGroup {
		if bus := s.comment.rws.Events(); bus != nil {
			bus.SetGroup("")
		}
		s.ownsGroup = false
	}
}
