package workspace

import (
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/events"
)

// MaxUndo bounds how many steps the history keeps
const MaxUndo = 100

// step is one undoable unit: every event of a group, or a single event
// fired outside any group
type step struct {
	group  string
	events []events.Event

	// positions maps a delete event to where the comment sat in creation
	// order, so undoing it puts the comment back in place
	positions map[events.Event]int
}

type history struct {
	ws    *Workspace
	undo  []*step
	redo  []*step
	limit int
}

func newHistory(ws *Workspace) *history {
	h := &history{ws: ws, limit: MaxUndo}
	ws.bus.Subscribe(h.record)
	return h
}

func (h *history) record(e events.Event) {
	if !e.Undoable() {
		return
	}
	h.redo = nil

	var s *step
	if n := len(h.undo); n > 0 && e.Group() != "" && h.undo[n-1].group == e.Group() {
		s = h.undo[n-1]
	} else {
		s = &step{group: e.Group()}
		h.undo = append(h.undo, s)
		if len(h.undo) > h.limit {
			h.undo = h.undo[len(h.undo)-h.limit:]
		}
	}
	s.events = append(s.events, e)

	// the delete event fires before the comment leaves the board
	if _, ok := e.(*events.Delete); ok {
		if s.positions == nil {
			s.positions = make(map[events.Event]int)
		}
		s.positions[e] = h.ws.indexOf(e.CommentID())
	}
}

func (h *history) reset() {
	h.undo = nil
	h.redo = nil
}

// CanUndo reports whether there is a step to undo
func (w *Workspace) CanUndo() bool {
	return len(w.history.undo) > 0
}

func (w *Workspace) CanRedo() bool {
	return len(w.history.redo) > 0
}

// Undo reverts the most recent step. Replayed changes fire no events.
// A read-only board keeps its history untouched.
func (w *Workspace) Undo() bool {
	h := w.history
	if w.IsReadOnly() || len(h.undo) == 0 {
		return false
	}
	w.CancelGesture()
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	w.bus.Silently(func() {
		for i := len(s.events) - 1; i >= 0; i-- {
			w.apply(s, s.events[i], false)
		}
	})
	h.redo = append(h.redo, s)
	w.logger.Debug("Undo", zap.String("group", s.group), zap.Int("events", len(s.events)))
	return true
}

// Redo replays the most recently undone step
func (w *Workspace) Redo() bool {
	h := w.history
	if w.IsReadOnly() || len(h.redo) == 0 {
		return false
	}
	w.CancelGesture()
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	w.bus.Silently(func() {
		for _, e := range s.events {
			w.apply(s, e, true)
		}
	})
	h.undo = append(h.undo, s)
	w.logger.Debug("Redo", zap.String("group", s.group), zap.Int("events", len(s.events)))
	return true
}

// apply runs e, recorded in s, forward or backward against the current
// comments
func (w *Workspace) apply(s *step, e events.Event, forward bool) {
	switch ev := e.(type) {
	case *events.Create:
		if forward {
			w.restore(ev.State, -1)
		} else {
			w.disposeByID(ev.ID)
		}
		return
	case *events.Delete:
		if forward {
			w.disposeByID(ev.ID)
		} else {
			at, ok := s.positions[e]
			if !ok {
				at = -1
			}
			w.restore(ev.State, at)
		}
		return
	}

	target, ok := w.comments[e.CommentID()].(comment.StateTarget)
	if !ok {
		w.logger.Warn("Undo target missing", zap.String("comment", e.CommentID()), zap.String("event", string(e.Type())))
		return
	}

	switch ev := e.(type) {
	case *events.Change:
		switch ev.Element {
		case events.ElementText:
			if forward {
				target.SetText(ev.NewText)
			} else {
				target.SetText(ev.OldText)
			}
		case events.ElementSize:
			if forward {
				target.SetSize(ev.NewSize)
			} else {
				target.SetSize(ev.OldSize)
			}
		}
	case *events.Collapse:
		target.SetCollapsed(ev.NewCollapsed == forward)
	case *events.Move:
		if forward {
			target.MoveTo(ev.New)
		} else {
			target.MoveTo(ev.Old)
		}
	}
}

func (w *Workspace) disposeByID(id string) {
	if c := w.comments[id]; c != nil {
		c.Dispose()
	}
}
