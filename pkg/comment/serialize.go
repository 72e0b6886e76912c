package comment

import (
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// SaveState captures c in its serialized form
func SaveState(c Comment) models.CommentState {
	size := c.GetSize()
	loc := c.GetRelativeToSurfaceXY()
	return models.CommentState{
		ID:        c.ID(),
		Text:      c.GetText(),
		Width:     size.Width,
		Height:    size.Height,
		Collapsed: c.IsCollapsed(),
		X:         loc.X,
		Y:         loc.Y,
		Editable:  models.FalseFlag(c.IsOwnEditable()),
		Movable:   models.FalseFlag(c.IsOwnMovable()),
		Deletable: models.FalseFlag(c.IsOwnDeletable()),
	}
}

// StateTarget is anything ApplyState can write into
type StateTarget interface {
	SetText(text string)
	SetSize(size models.Size)
	SetCollapsed(collapsed bool)
	SetEditable(editable bool)
	SetMovable(movable bool)
	SetDeletable(deletable bool)
	MoveTo(location models.Coordinate, reason ...string)
}

// ApplyState writes state into c. The id is not touched; a zero size keeps
// the comment's current size.
func ApplyState(c StateTarget, state models.CommentState) {
	c.SetText(state.Text)
	if state.Width > 0 && state.Height > 0 {
		c.SetSize(state.Size())
	}
	c.SetCollapsed(state.Collapsed)
	c.MoveTo(state.Location(), "create")
	c.SetMovable(state.IsMovable())
	c.SetDeletable(state.IsDeletable())
	c.SetEditable(state.IsEditable())
}
