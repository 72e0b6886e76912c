package events

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// Type names an event kind
type Type string

const (
	CommentCreate   Type = "comment_create"
	CommentDelete   Type = "comment_delete"
	CommentChange   Type = "comment_change"
	CommentCollapse Type = "comment_collapse"
	CommentMove     Type = "comment_move"
)

// Change elements
const (
	ElementText = "text"
	ElementSize = "size"
)

// Event is anything fired on a Bus
type Event interface {
	Type() Type
	CommentID() string
	Group() string
	SetGroup(group string)
	// Undoable reports whether the event belongs on the undo stack
	Undoable() bool
}

// Base carries the fields every comment event shares
type Base struct {
	ID      string
	GroupID string
}

func (b *Base) CommentID() string     { return b.ID }
func (b *Base) Group() string         { return b.GroupID }
func (b *Base) SetGroup(group string) { b.GroupID = group }
func (b *Base) Undoable() bool        { return true }

// Create is fired once when a comment is added to a workspace
type Create struct {
	Base
	State models.CommentState
}

func (e *Create) Type() Type { return CommentCreate }

// Delete is fired once when a comment is disposed. State holds the comment
// as it was immediately before disposal so it can be restored.
type Delete struct {
	Base
	State models.CommentState
}

func (e *Delete) Type() Type { return CommentDelete }

// Change records a text or size edit
type Change struct {
	Base
	Element string
	OldText string
	NewText string
	OldSize models.Size
	NewSize models.Size
}

func (e *Change) Type() Type { return CommentChange }

// Collapse records a collapsed-state flip
type Collapse struct {
	Base
	NewCollapsed bool
}

func (e *Collapse) Type() Type { return CommentCollapse }

// Move records a location change
type Move struct {
	Base
	Old    models.Coordinate
	New    models.Coordinate
	Reason []string
}

func (e *Move) Type() Type { return CommentMove }

// HasReason reports whether the move was tagged with reason
func (e *Move) HasReason(reason string) bool {
	for _, r := range e.Reason {
		if r == reason {
			return true
		}
	}
	return false
}

// Describe renders a one-line summary for logs and status messages
func Describe(e Event) string {
	switch ev := e.(type) {
	case *Create:
		return fmt.Sprintf("create %s", ev.ID)
	case *Delete:
		return fmt.Sprintf("delete %s", ev.ID)
	case *Change:
		if ev.Element == ElementSize {
			return fmt.Sprintf("resize %s %dx%d -> %dx%d", ev.ID,
				ev.OldSize.Width, ev.OldSize.Height, ev.NewSize.Width, ev.NewSize.Height)
		}
		return fmt.Sprintf("edit %s", ev.ID)
	case *Collapse:
		if ev.NewCollapsed {
			return fmt.Sprintf("collapse %s", ev.ID)
		}
		return fmt.Sprintf("expand %s", ev.ID)
	case *Move:
		desc := fmt.Sprintf("move %s (%d,%d) -> (%d,%d)", ev.ID, ev.Old.X, ev.Old.Y, ev.New.X, ev.New.Y)
		if len(ev.Reason) > 0 {
			desc += " [" + strings.Join(ev.Reason, ",") + "]"
		}
		return desc
	default:
		return string(e.Type())
	}
}
