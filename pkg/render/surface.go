package render

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// PointerKind is the phase of a pointer event
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerWheel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button involved in an event
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// PointerEvent is a pointer event in surface coordinates
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	Button Button
	Shift  bool
	Alt    bool
	Ctrl   bool
	// Target is the node under the pointer, filled in by Dispatch
	Target *Node
}

// Coordinate returns the event position
func (e PointerEvent) Coordinate() models.Coordinate {
	return models.Coordinate{X: e.X, Y: e.Y}
}

// PointerEventFromMouse converts a bubbletea mouse message
func PointerEventFromMouse(msg tea.MouseMsg) PointerEvent {
	ev := PointerEvent{
		X:     msg.X,
		Y:     msg.Y,
		Shift: msg.Shift,
		Alt:   msg.Alt,
		Ctrl:  msg.Ctrl,
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = ButtonRight
	case tea.MouseButtonWheelUp:
		ev.Button = ButtonWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = ButtonWheelDown
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if ev.Button == ButtonWheelUp || ev.Button == ButtonWheelDown {
			ev.Kind = PointerWheel
		} else {
			ev.Kind = PointerDown
		}
	case tea.MouseActionRelease:
		ev.Kind = PointerUp
	default:
		ev.Kind = PointerMove
	}
	return ev
}

// Handler handles a pointer event. Returning true stops propagation.
type Handler func(PointerEvent) bool

// Binding is a registered handler. Keep it to unbind later.
type Binding struct {
	node   *Node // nil for document bindings
	kind   PointerKind
	fn     Handler
	active bool
}

// Active reports whether the binding is still registered
func (b *Binding) Active() bool {
	return b != nil && b.active
}

// Surface is the canvas that owns the render tree and routes pointer events
type Surface struct {
	root     *Node
	bindings map[*Node][]*Binding
	document []*Binding
}

// NewSurface creates an empty surface
func NewSurface() *Surface {
	return &Surface{
		root:     NewNode(KindGroup, "surface"),
		bindings: make(map[*Node][]*Binding),
	}
}

// Root returns the top of the render tree
func (s *Surface) Root() *Node {
	return s.root
}

// Bind registers fn for events of kind whose target is node or a descendant
func (s *Surface) Bind(node *Node, kind PointerKind, fn Handler) *Binding {
	b := &Binding{node: node, kind: kind, fn: fn, active: true}
	s.bindings[node] = append(s.bindings[node], b)
	return b
}

// BindDocument registers fn for every event of kind, before node handlers
func (s *Surface) BindDocument(kind PointerKind, fn Handler) *Binding {
	b := &Binding{kind: kind, fn: fn, active: true}
	s.document = append(s.document, b)
	return b
}

// Unbind removes a binding. Nil or already removed bindings are ignored.
func (s *Surface) Unbind(b *Binding) bool {
	if !b.Active() {
		return false
	}
	b.active = false
	if b.node == nil {
		s.document = removeBinding(s.document, b)
		return true
	}
	list := removeBinding(s.bindings[b.node], b)
	if len(list) == 0 {
		delete(s.bindings, b.node)
	} else {
		s.bindings[b.node] = list
	}
	return true
}

// UnbindTree removes every node binding on node and its descendants
func (s *Surface) UnbindTree(node *Node) int {
	removed := 0
	node.Walk(func(n *Node) {
		for _, b := range s.bindings[n] {
			b.active = false
			removed++
		}
		delete(s.bindings, n)
	})
	return removed
}

// BindingCount returns the number of live bindings
func (s *Surface) BindingCount() int {
	count := len(s.document)
	for _, list := range s.bindings {
		count += len(list)
	}
	return count
}

// Dispatch delivers ev. Document bindings run first, then the hit node's
// bindings bubbling up through its ancestors. It reports whether any
// handler consumed the event.
func (s *Surface) Dispatch(ev PointerEvent) bool {
	ev.Target = s.root.HitTest(ev.X, ev.Y)

	for _, b := range snapshotBindings(s.document) {
		if b.active && b.kind == ev.Kind && b.fn(ev) {
			return true
		}
	}

	for n := ev.Target; n != nil; n = n.parent {
		for _, b := range snapshotBindings(s.bindings[n]) {
			if b.active && b.kind == ev.Kind && b.fn(ev) {
				return true
			}
		}
	}
	return false
}

// BringToFront makes node the topmost child of its parent
func (s *Surface) BringToFront(node *Node) {
	parent := node.Parent()
	if parent == nil {
		return
	}
	parent.Append(node)
}

func removeBinding(list []*Binding, b *Binding) []*Binding {
	for i, cur := range list {
		if cur == b {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func snapshotBindings(list []*Binding) []*Binding {
	out := make([]*Binding, len(list))
	copy(out, list)
	return out
}
