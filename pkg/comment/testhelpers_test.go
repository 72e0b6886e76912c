package comment

import (
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/contextmenu"
	"github.com/pluqqy/pluqqy-board/pkg/events"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

// fakeWorkspace is the smallest RenderedWorkspace the comment tests need
type fakeWorkspace struct {
	readOnly bool
	grid     models.GridOptions
	bus      *events.Bus
	surface  *render.Surface
	comments map[string]Comment
	selected *RenderedWorkspaceComment

	menu     []contextmenu.Option
	menuAt   models.Coordinate
	gestures int

	fired []events.Event
}

func newFakeWorkspace() *fakeWorkspace {
	ws := &fakeWorkspace{
		bus:      events.NewBus(nil),
		surface:  render.NewSurface(),
		comments: make(map[string]Comment),
	}
	ws.bus.Subscribe(func(e events.Event) {
		ws.fired = append(ws.fired, e)
	})
	return ws
}

func (w *fakeWorkspace) IsReadOnly() bool           { return w.readOnly }
func (w *fakeWorkspace) Events() *events.Bus        { return w.bus }
func (w *fakeWorkspace) Grid() models.GridOptions   { return w.grid }
func (w *fakeWorkspace) Logger() *zap.Logger        { return nil }
func (w *fakeWorkspace) Surface() *render.Surface   { return w.surface }
func (w *fakeWorkspace) AddTopComment(c Comment)    { w.comments[c.ID()] = c }
func (w *fakeWorkspace) RemoveTopComment(id string) { delete(w.comments, id) }
func (w *fakeWorkspace) Selected() *RenderedWorkspaceComment {
	return w.selected
}

func (w *fakeWorkspace) SetSelected(c *RenderedWorkspaceComment) {
	w.selected = c
}

func (w *fakeWorkspace) StartGesture(c *RenderedWorkspaceComment, e render.PointerEvent) bool {
	w.gestures++
	return true
}

func (w *fakeWorkspace) ShowContextMenu(options []contextmenu.Option, at models.Coordinate) {
	w.menu = options
	w.menuAt = at
}

// count returns how many fired events have type t
func (w *fakeWorkspace) count(t events.Type) int {
	n := 0
	for _, e := range w.fired {
		if e.Type() == t {
			n++
		}
	}
	return n
}

func (w *fakeWorkspace) reset() {
	w.fired = nil
}

func leftDown(x, y int) render.PointerEvent {
	return render.PointerEvent{Kind: render.PointerDown, X: x, Y: y, Button: render.ButtonLeft}
}

func pointerMove(x, y int) render.PointerEvent {
	return render.PointerEvent{Kind: render.PointerMove, X: x, Y: y, Button: render.ButtonLeft}
}

func leftUp(x, y int) render.PointerEvent {
	return render.PointerEvent{Kind: render.PointerUp, X: x, Y: y, Button: render.ButtonLeft}
}
