package workspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/events"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

func newTestWorkspace() *Workspace {
	return New(Options{DragRadius: 1})
}

func press(x, y int) render.PointerEvent {
	return render.PointerEvent{Kind: render.PointerDown, X: x, Y: y, Button: render.ButtonLeft}
}

func move(x, y int) render.PointerEvent {
	return render.PointerEvent{Kind: render.PointerMove, X: x, Y: y, Button: render.ButtonLeft}
}

func release(x, y int) render.PointerEvent {
	return render.PointerEvent{Kind: render.PointerUp, X: x, Y: y, Button: render.ButtonLeft}
}

func TestWorkspace_NewComment(t *testing.T) {
	ws := New(Options{Grid: models.GridOptions{Spacing: 4, Snap: true}})
	c := ws.NewComment("hello", models.Coordinate{X: 5, Y: 7})

	assert.Equal(t, "hello", c.GetText())
	assert.Equal(t, models.Coordinate{X: 4, Y: 8}, c.GetRelativeToSurfaceXY())
	assert.Equal(t, comment.DefaultSize, c.GetSize())
	assert.Same(t, c, ws.GetCommentByID(c.ID()))
	assert.Equal(t, 1, ws.Len())
	assert.Empty(t, ws.Events().Group())
}

func TestWorkspace_Lookup(t *testing.T) {
	ws := newTestWorkspace()
	require.NoError(t, ws.Load([]models.CommentState{
		{ID: "abc123", Text: "one"},
		{ID: "abd456", Text: "two"},
	}))

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr error
	}{
		{"exact", "abc123", "abc123", nil},
		{"unique prefix", "abd", "abd456", nil},
		{"ambiguous prefix", "ab", "", ErrAmbiguousID},
		{"missing", "zzz", "", ErrCommentNotFound},
		{"empty", "", "", ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ws.Lookup(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ID())
		})
	}
}

func TestWorkspace_SaveLoadRoundTrip(t *testing.T) {
	ws := newTestWorkspace()
	a := ws.NewComment("first", models.Coordinate{X: 1, Y: 2})
	b := ws.NewComment("second", models.Coordinate{X: 10, Y: 3})
	b.SetCollapsed(true)
	b.SetSize(models.Size{Width: 40, Height: 12})
	a.SetDeletable(false)

	saved := ws.Save()
	require.Len(t, saved, 2)

	other := newTestWorkspace()
	require.NoError(t, other.Load(saved))
	if diff := cmp.Diff(saved, other.Save()); diff != "" {
		t.Errorf("Load(Save()) mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, other.CanUndo(), "loading must not create history")
}

func TestWorkspace_LoadRejectsBadStates(t *testing.T) {
	ws := newTestWorkspace()
	ws.NewComment("keep", models.Coordinate{})

	err := ws.Load([]models.CommentState{{ID: "x"}, {ID: "x"}})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, ws.Len(), "a failed load must leave the board alone")

	assert.Error(t, ws.Load([]models.CommentState{{Text: "no id"}}))
}

func TestWorkspace_SetReadOnly(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("note", models.Coordinate{})
	c.Edit()
	require.True(t, c.IsEditing())

	ws.SetReadOnly(true)
	assert.True(t, ws.IsReadOnly())
	assert.False(t, c.View().IsEditable())
	assert.False(t, c.IsEditing())
	assert.False(t, c.IsDeletable())

	ws.SetReadOnly(false)
	assert.True(t, c.View().IsEditable())
}

func TestWorkspace_ClickSelects(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("note", models.Coordinate{})

	require.True(t, ws.Surface().Dispatch(press(5, 0)))
	assert.True(t, ws.InGesture())
	ws.Surface().Dispatch(move(6, 0))
	assert.False(t, ws.Dragging(), "moves inside the drag radius stay a click")
	ws.Surface().Dispatch(release(6, 0))

	assert.False(t, ws.InGesture())
	assert.Same(t, c, ws.Selected())
	assert.Equal(t, models.Coordinate{}, c.GetRelativeToSurfaceXY())
}

func TestWorkspace_DragMovesComment(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("note", models.Coordinate{})

	var moves []*events.Move
	ws.Events().Subscribe(func(e events.Event) {
		if m, ok := e.(*events.Move); ok {
			moves = append(moves, m)
		}
	})

	bindings := ws.Surface().BindingCount()
	ws.Surface().Dispatch(press(5, 0))
	ws.Surface().Dispatch(move(8, 2))
	ws.Surface().Dispatch(move(10, 3))
	assert.True(t, ws.Dragging())
	assert.Equal(t, models.Coordinate{X: 5, Y: 3}, c.View().GetRelativeToSurfaceXY())
	assert.Empty(t, moves, "no move events during the drag")

	ws.Surface().Dispatch(release(10, 3))
	assert.Equal(t, models.Coordinate{X: 5, Y: 3}, c.GetRelativeToSurfaceXY())
	require.Len(t, moves, 1)
	assert.True(t, moves[0].HasReason("drag"))
	assert.Equal(t, bindings, ws.Surface().BindingCount(), "gesture bindings must be released")
}

func TestWorkspace_DragRefusedWhenReadOnly(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("note", models.Coordinate{})
	ws.SetReadOnly(true)

	ws.Surface().Dispatch(press(5, 0))
	ws.Surface().Dispatch(move(15, 5))
	ws.Surface().Dispatch(release(15, 5))

	assert.Equal(t, models.Coordinate{}, c.GetRelativeToSurfaceXY())
	assert.Equal(t, models.Coordinate{}, c.View().GetRelativeToSurfaceXY())
	assert.Same(t, c, ws.Selected())
}

func TestWorkspace_DropOnDeleteArea(t *testing.T) {
	ws := newTestWorkspace()
	ws.SetDeleteArea(models.NewRect(models.Coordinate{X: 40, Y: 20}, models.Size{Width: 10, Height: 3}))
	c := ws.NewComment("doomed", models.Coordinate{})
	id := c.ID()

	ws.Surface().Dispatch(press(5, 0))
	ws.Surface().Dispatch(move(42, 21))
	assert.True(t, c.View().SvgRoot().HasClass(render.ClassDraggingDelete))

	ws.Surface().Dispatch(release(42, 21))
	assert.True(t, c.IsDisposed())
	assert.Equal(t, 0, ws.Len())
	assert.Empty(t, ws.Events().Group(), "drop must close the drag group")

	require.True(t, ws.Undo())
	restored, err := ws.Lookup(id)
	require.NoError(t, err)
	assert.Equal(t, "doomed", restored.GetText())
	assert.Equal(t, models.Coordinate{}, restored.GetRelativeToSurfaceXY())
}

func TestWorkspace_DeleteAreaIgnoresUndeletable(t *testing.T) {
	ws := newTestWorkspace()
	ws.SetDeleteArea(models.NewRect(models.Coordinate{X: 40, Y: 20}, models.Size{Width: 10, Height: 3}))
	c := ws.NewComment("keep", models.Coordinate{})
	c.SetDeletable(false)

	ws.Surface().Dispatch(press(5, 0))
	ws.Surface().Dispatch(move(42, 21))
	ws.Surface().Dispatch(release(42, 21))

	assert.False(t, c.IsDisposed())
	assert.Equal(t, models.Coordinate{X: 37, Y: 21}, c.GetRelativeToSurfaceXY())
}

func TestWorkspace_CancelGestureReverts(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("note", models.Coordinate{X: 2, Y: 2})

	ws.Surface().Dispatch(press(7, 2))
	ws.Surface().Dispatch(move(20, 10))
	ws.CancelGesture()

	assert.False(t, ws.InGesture())
	assert.Equal(t, models.Coordinate{X: 2, Y: 2}, c.GetRelativeToSurfaceXY())
	assert.Equal(t, models.Coordinate{X: 2, Y: 2}, c.View().GetRelativeToSurfaceXY())
	assert.False(t, ws.Surface().Dispatch(release(20, 10)))
}

func TestWorkspace_UndoRedo(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("v1", models.Coordinate{})
	id := c.ID()

	c.SetText("v2")
	c.SetCollapsed(true)
	c.MoveTo(models.Coordinate{X: 3, Y: 3})

	steps := []struct {
		name  string
		check func(t *testing.T, c *comment.RenderedWorkspaceComment)
	}{
		{"move", func(t *testing.T, c *comment.RenderedWorkspaceComment) {
			assert.Equal(t, models.Coordinate{}, c.GetRelativeToSurfaceXY())
		}},
		{"collapse", func(t *testing.T, c *comment.RenderedWorkspaceComment) {
			assert.False(t, c.IsCollapsed())
			assert.False(t, c.View().IsCollapsed())
		}},
		{"text", func(t *testing.T, c *comment.RenderedWorkspaceComment) {
			assert.Equal(t, "v1", c.GetText())
			assert.Equal(t, "v1", c.View().GetText())
		}},
	}

	for _, s := range steps {
		require.True(t, ws.Undo(), s.name)
		cur, err := ws.Lookup(id)
		require.NoError(t, err)
		s.check(t, cur)
	}

	require.True(t, ws.Undo(), "create")
	assert.Equal(t, 0, ws.Len())
	assert.False(t, ws.CanUndo())

	for ws.Redo() {
	}
	cur, err := ws.Lookup(id)
	require.NoError(t, err)
	assert.Equal(t, "v2", cur.GetText())
	assert.True(t, cur.IsCollapsed())
	assert.Equal(t, models.Coordinate{X: 3, Y: 3}, cur.GetRelativeToSurfaceXY())

	cur.SetText("v3")
	assert.False(t, ws.CanRedo(), "a new change clears redo")
}

func TestWorkspace_UndoRefusedWhenReadOnly(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("v1", models.Coordinate{})
	c.SetText("v2")

	ws.SetReadOnly(true)
	assert.False(t, ws.Undo())
	assert.Equal(t, "v2", c.GetText())
	assert.True(t, ws.CanUndo(), "history is kept")

	ws.SetReadOnly(false)
	require.True(t, ws.Undo())
	assert.Equal(t, "v1", c.GetText())

	ws.SetReadOnly(true)
	assert.False(t, ws.Redo())
	assert.Equal(t, "v1", c.GetText())
	assert.True(t, ws.CanRedo())
}

func TestWorkspace_UndoDeleteKeepsOrder(t *testing.T) {
	ws := newTestWorkspace()
	a := ws.NewComment("a", models.Coordinate{})
	b := ws.NewComment("b", models.Coordinate{X: 40})
	c := ws.NewComment("c", models.Coordinate{X: 80})
	want := []string{a.ID(), b.ID(), c.ID()}

	ids := func() []string {
		var out []string
		for _, s := range ws.Save() {
			out = append(out, s.ID)
		}
		return out
	}

	b.Dispose()
	require.Equal(t, 2, ws.Len())
	require.True(t, ws.Undo())
	if diff := cmp.Diff(want, ids()); diff != "" {
		t.Errorf("order after undo mismatch (-want +got):\n%s", diff)
	}

	require.True(t, ws.Redo())
	require.True(t, ws.Undo())
	if diff := cmp.Diff(want, ids()); diff != "" {
		t.Errorf("order after redo and undo mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkspace_ContextMenu(t *testing.T) {
	ws := newTestWorkspace()
	c := ws.NewComment("note", models.Coordinate{})

	_, _, ok := ws.PendingContextMenu()
	assert.False(t, ok)

	ws.Surface().Dispatch(render.PointerEvent{Kind: render.PointerDown, X: 5, Y: 0, Button: render.ButtonRight})
	options, at, ok := ws.PendingContextMenu()
	require.True(t, ok)
	assert.Len(t, options, 3)
	assert.Equal(t, models.Coordinate{X: 5, Y: 0}, at)
	assert.Same(t, c, ws.Selected())
	assert.False(t, ws.InGesture())

	_, _, ok = ws.PendingContextMenu()
	assert.False(t, ok, "the pending menu is handed over once")
}

func TestWorkspace_SelectNext(t *testing.T) {
	ws := newTestWorkspace()
	a := ws.NewComment("a", models.Coordinate{})
	b := ws.NewComment("b", models.Coordinate{X: 40})

	assert.Same(t, a, ws.SelectNext(1))
	assert.Same(t, b, ws.SelectNext(1))
	assert.Same(t, a, ws.SelectNext(1))
	assert.Same(t, b, ws.SelectNext(-1))
	assert.False(t, a.IsSelected())

	ws.ClearSelection()
	assert.Nil(t, ws.Selected())
	assert.False(t, b.IsSelected())
}

func TestWorkspace_Clear(t *testing.T) {
	ws := newTestWorkspace()
	ws.NewComment("a", models.Coordinate{})
	ws.NewComment("b", models.Coordinate{X: 40})

	ws.Clear()
	assert.Equal(t, 0, ws.Len())
	assert.False(t, ws.CanUndo())
	assert.Equal(t, 0, ws.Surface().BindingCount())
}
