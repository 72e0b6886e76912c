package render

import (
	"github.com/pluqqy/pluqqy-board/pkg/models"
)

// Kind tells the painter how to draw a node
type Kind int

const (
	KindGroup Kind = iota
	KindRect
	KindText
	KindIcon
	KindTextArea
	KindHandle
)

// Attribute names understood by the painter
const (
	AttrBorder   = "border"   // rect is drawn as a frame instead of a fill
	AttrReadOnly = "readonly" // text area does not accept input
)

// Node is one element of a retained render tree. Positions are relative to
// the parent; a node with no size is never a hit target itself.
type Node struct {
	Kind Kind
	Name string

	x, y          int
	width, height int
	text          string
	classes       []string
	attrs         map[string]string
	hidden        bool

	parent   *Node
	children []*Node
}

// NewNode creates a detached node
func NewNode(kind Kind, name string) *Node {
	return &Node{Kind: kind, Name: name}
}

// Append adds child as the last (topmost) child, detaching it first if needed
func (n *Node) Append(child *Node) *Node {
	if child.parent != nil {
		child.Remove()
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Remove detaches the node from its parent
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// Attached reports whether the node currently has a parent
func (n *Node) Attached() bool {
	return n.parent != nil
}

// Walk visits n and its descendants depth first
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first descendant (or n itself) with the given name
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) SetPosition(x, y int) {
	n.x, n.y = x, y
}

func (n *Node) Position() (int, int) {
	return n.x, n.y
}

func (n *Node) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n.width, n.height = width, height
}

func (n *Node) Size() (int, int) {
	return n.width, n.height
}

// AbsolutePosition sums the offsets of n and its ancestors
func (n *Node) AbsolutePosition() (int, int) {
	x, y := 0, 0
	for cur := n; cur != nil; cur = cur.parent {
		x += cur.x
		y += cur.y
	}
	return x, y
}

// Bounds returns the node's rectangle in surface coordinates
func (n *Node) Bounds() models.Rect {
	x, y := n.AbsolutePosition()
	return models.NewRect(models.Coordinate{X: x, Y: y}, models.Size{Width: n.width, Height: n.height})
}

func (n *Node) SetText(text string) {
	n.text = text
}

func (n *Node) Text() string {
	return n.text
}

// AddClass adds a style class; duplicates are ignored
func (n *Node) AddClass(class string) {
	if n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

func (n *Node) RemoveClass(class string) {
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i:i], n.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass adds or removes class depending on on
func (n *Node) ToggleClass(class string, on bool) {
	if on {
		n.AddClass(class)
	} else {
		n.RemoveClass(class)
	}
}

func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the node's classes in the order they were added
func (n *Node) Classes() []string {
	return n.classes
}

func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, key)
}

func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func (n *Node) SetHidden(hidden bool) {
	n.hidden = hidden
}

func (n *Node) Hidden() bool {
	return n.hidden
}

// Visible reports whether neither n nor any ancestor is hidden
func (n *Node) Visible() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.hidden {
			return false
		}
	}
	return true
}

// HitTest returns the deepest visible node under (x, y) in surface
// coordinates. Later children are painted on top and therefore win.
func (n *Node) HitTest(x, y int) *Node {
	if n.hidden {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	if n.width > 0 && n.height > 0 && n.Bounds().Contains(models.Coordinate{X: x, Y: y}) {
		return n
	}
	return nil
}

// IsDescendantOf reports whether ancestor is n or one of n's ancestors
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
