package comment

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

var (
	// ErrUnknownPaster is returned for copy data some other element produced
	ErrUnknownPaster = errors.New("copy data was not produced by a workspace comment")
	// ErrNotCopyable is returned when duplicating a comment that refuses copies
	ErrNotCopyable = errors.New("comment cannot be copied")
	// ErrReadOnly is returned when pasting into a read-only workspace
	ErrReadOnly = errors.New("workspace is read-only")
)

// Paste creates a new comment on ws from data. The copy gets a fresh id.
// If at is non-nil the comment is placed there instead of the saved
// location. All events of the paste share one group.
func Paste(ws RenderedWorkspace, data *models.CommentCopyData, at *models.Coordinate) (*RenderedWorkspaceComment, error) {
	if data == nil || data.Paster != models.CommentPasterType {
		return nil, ErrUnknownPaster
	}
	if ws.IsReadOnly() {
		return nil, ErrReadOnly
	}

	state := data.State
	state.ID = uuid.NewString()
	if at != nil {
		state.X, state.Y = at.X, at.Y
	}

	var c *RenderedWorkspaceComment
	bus := ws.Events()
	run := func() {
		c = NewRenderedWorkspaceComment(ws, state.ID)
		ApplyState(c, state)
		c.SnapToGrid()
	}
	if bus != nil {
		bus.WithGroup(run)
	} else {
		run()
	}

	if l := ws.Logger(); l != nil {
		l.Debug("Pasted comment", zap.String("comment", c.ID()), zap.String("source", data.State.ID))
	}
	return c, nil
}

// Duplicate pastes a copy of c next to it
func Duplicate(c *RenderedWorkspaceComment) (*RenderedWorkspaceComment, error) {
	data := c.ToCopyData()
	if data == nil {
		return nil, fmt.Errorf("duplicate %s: %w", c.ID(), ErrNotCopyable)
	}
	at := c.GetRelativeToSurfaceXY().Add(DuplicateOffset)
	return Paste(c.rws, data, &at)
}
