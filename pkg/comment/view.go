package comment

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/observer"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

// Layout constants, in cells
const (
	TopBarHeight      = 1
	MinTextAreaHeight = 2
	MinPreviewWidth   = 10
	IconPadding       = 1
	IconWidth         = 1
)

// Glyphs drawn in the top bar
const (
	GlyphExpanded = "▾"
	GlyphFolded   = "▸"
	GlyphDelete   = "✕"
	GlyphResize   = "◢"
)

// CommentView draws one comment and turns pointer and key input into size,
// text and collapse changes. It keeps its own copy of the state it renders
// and never reads the model; whoever owns it pushes state in through the
// setters and listens through the Add*Listener methods.
type CommentView struct {
	surface *render.Surface

	svgRoot          *render.Node
	highlightRect    *render.Node
	topBarGroup      *render.Node
	topBarBackground *render.Node
	deleteIcon       *render.Node
	foldoutIcon      *render.Node
	textPreview      *render.Node
	textAreaNode     *render.Node
	resizeHandle     *render.Node

	textArea textarea.Model

	size        models.Size
	text        string
	collapsed   bool
	editable    bool
	deletable   bool
	focused     bool
	highlighted bool
	location    models.Coordinate

	sizeChange     observer.Emitter[models.Size]
	textChange     observer.Emitter[string]
	collapseChange observer.Emitter[bool]
	focusChange    observer.Emitter[bool]
	disposeSignal  observer.Signal

	// resize gesture bookkeeping
	preResizeSize             models.Size
	resizeStart               models.Coordinate
	resizePointerMoveListener *render.Binding
	resizePointerUpListener   *render.Binding

	disposed  bool
	disposing bool
}

// NewCommentView builds the view's nodes on surface and wires its pointer
// handlers
func NewCommentView(surface *render.Surface) *CommentView {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.Placeholder = ""

	v := &CommentView{
		surface:   surface,
		textArea:  ta,
		size:      DefaultSize,
		editable:  true,
		deletable: true,
	}

	v.svgRoot = render.NewNode(render.KindGroup, "comment")
	v.svgRoot.AddClass(render.ClassComment)

	v.highlightRect = v.svgRoot.Append(render.NewNode(render.KindRect, "highlight"))
	v.highlightRect.SetAttr(render.AttrBorder, "")
	v.highlightRect.AddClass(render.ClassHighlight)
	v.highlightRect.SetHidden(true)

	v.createTopBar()
	v.createTextArea()
	v.createResizeHandle()

	surface.Root().Append(v.svgRoot)
	v.layout()
	return v
}

func (v *CommentView) createTopBar() {
	v.topBarGroup = v.svgRoot.Append(render.NewNode(render.KindGroup, "topbar"))
	v.topBarGroup.AddClass(render.ClassTopBar)

	v.topBarBackground = v.topBarGroup.Append(render.NewNode(render.KindRect, "topbar-background"))

	v.foldoutIcon = v.topBarGroup.Append(render.NewNode(render.KindIcon, "foldout"))
	v.foldoutIcon.AddClass(render.ClassIcon)
	v.foldoutIcon.SetText(GlyphExpanded)

	v.textPreview = v.topBarGroup.Append(render.NewNode(render.KindText, "preview"))
	v.textPreview.AddClass(render.ClassPreview)

	v.deleteIcon = v.topBarGroup.Append(render.NewNode(render.KindIcon, "delete"))
	v.deleteIcon.AddClass(render.ClassIcon)
	v.deleteIcon.SetText(GlyphDelete)

	v.surface.Bind(v.foldoutIcon, render.PointerDown, v.onFoldoutDown)
	v.surface.Bind(v.deleteIcon, render.PointerDown, v.onDeleteDown)
}

func (v *CommentView) createTextArea() {
	v.textAreaNode = v.svgRoot.Append(render.NewNode(render.KindTextArea, "textarea"))
	v.textAreaNode.AddClass(render.ClassTextArea)
	v.surface.Bind(v.textAreaNode, render.PointerDown, v.onTextAreaDown)
}

func (v *CommentView) createResizeHandle() {
	v.resizeHandle = v.svgRoot.Append(render.NewNode(render.KindHandle, "resize"))
	v.resizeHandle.AddClass(render.ClassResizeHandle)
	v.resizeHandle.SetText(GlyphResize)
	v.surface.Bind(v.resizeHandle, render.PointerDown, v.onResizePointerDown)
}

// SvgRoot returns the root node of the view's subtree
func (v *CommentView) SvgRoot() *render.Node {
	return v.svgRoot
}

func (v *CommentView) HighlightRect() *render.Node { return v.highlightRect }
func (v *CommentView) FoldoutIcon() *render.Node   { return v.foldoutIcon }
func (v *CommentView) DeleteIcon() *render.Node    { return v.deleteIcon }
func (v *CommentView) ResizeHandle() *render.Node  { return v.resizeHandle }
func (v *CommentView) TextAreaNode() *render.Node  { return v.textAreaNode }

// TextPreview returns the text currently shown in the top bar
func (v *CommentView) TextPreview() string {
	return v.textPreview.Text()
}

// SetSize clamps size to the minimum, lays the view out and notifies size
// listeners if the clamped size changed
func (v *CommentView) SetSize(size models.Size) {
	if v.disposed {
		return
	}
	old := v.size
	v.SetSizeWithoutFiringEvents(size)
	v.sizeChange.Fire(old, v.size)
}

// SetSizeWithoutFiringEvents is SetSize without notifying listeners
func (v *CommentView) SetSizeWithoutFiringEvents(size models.Size) {
	if v.disposed {
		return
	}
	v.size = size.Max(v.CalcMinSize())
	v.layout()
}

// GetSize returns the stored size; collapsing does not change it
func (v *CommentView) GetSize() models.Size {
	return v.size
}

// EffectiveSize is the size actually drawn: only the top bar when collapsed
func (v *CommentView) EffectiveSize() models.Size {
	if v.collapsed {
		return models.Size{Width: v.size.Width, Height: TopBarHeight}
	}
	return v.size
}

// CalcMinSize returns the smallest size that still fits both icons, a
// minimal preview and a usable text area
func (v *CommentView) CalcMinSize() models.Size {
	previewWidth := render.TextWidth(v.truncateText(v.text, MinPreviewWidth))
	if previewWidth < IconWidth {
		previewWidth = IconWidth
	}
	return models.Size{
		Width:  v.calcFoldoutMargin() + previewWidth + v.calcDeleteMargin(),
		Height: TopBarHeight + MinTextAreaHeight,
	}
}

func (v *CommentView) calcFoldoutMargin() int {
	return IconPadding + IconWidth + IconPadding
}

func (v *CommentView) calcDeleteMargin() int {
	return IconPadding + IconWidth + IconPadding
}

func (v *CommentView) layout() {
	effective := v.EffectiveSize()
	v.svgRoot.SetPosition(v.location.X, v.location.Y)

	v.updateHighlightRect(effective)
	v.updateTopBarSize(effective)
	v.updateTextAreaSize()
	v.updateDeleteIconPosition()
	v.updateFoldoutIconPosition()
	v.updateTextPreviewSize()
	v.updateResizeHandlePosition()
}

func (v *CommentView) updateHighlightRect(effective models.Size) {
	v.highlightRect.SetPosition(-1, -1)
	v.highlightRect.SetSize(effective.Width+2, effective.Height+2)
	v.highlightRect.SetHidden(!v.highlighted)
}

func (v *CommentView) updateTopBarSize(effective models.Size) {
	v.topBarGroup.SetPosition(0, 0)
	v.topBarBackground.SetSize(effective.Width, TopBarHeight)
}

func (v *CommentView) updateTextAreaSize() {
	width := v.size.Width
	height := v.size.Height - TopBarHeight
	v.textAreaNode.SetPosition(0, TopBarHeight)
	v.textAreaNode.SetSize(width, height)
	v.textAreaNode.SetHidden(v.collapsed)
	v.textAreaNode.SetText(v.text)
	v.textArea.SetWidth(width)
	v.textArea.SetHeight(height)
}

func (v *CommentView) updateDeleteIconPosition() {
	v.deleteIcon.SetPosition(v.size.Width-v.calcDeleteMargin()+IconPadding, 0)
	v.deleteIcon.SetSize(IconWidth, TopBarHeight)
	v.deleteIcon.SetHidden(!v.editable || !v.deletable)
}

func (v *CommentView) updateFoldoutIconPosition() {
	v.foldoutIcon.SetPosition(IconPadding, 0)
	v.foldoutIcon.SetSize(IconWidth, TopBarHeight)
	if v.collapsed {
		v.foldoutIcon.SetText(GlyphFolded)
	} else {
		v.foldoutIcon.SetText(GlyphExpanded)
	}
}

func (v *CommentView) updateTextPreviewSize() {
	width := v.previewWidth()
	v.textPreview.SetPosition(v.calcFoldoutMargin(), 0)
	v.textPreview.SetSize(width, TopBarHeight)
	v.textPreview.SetText(v.truncateText(v.text, width))
	v.textPreview.SetHidden(!v.collapsed)
}

func (v *CommentView) updateResizeHandlePosition() {
	v.resizeHandle.SetPosition(v.size.Width-1, v.size.Height-1)
	v.resizeHandle.SetSize(1, 1)
	v.resizeHandle.SetHidden(v.collapsed || !v.editable)
}

func (v *CommentView) previewWidth() int {
	w := v.size.Width - v.calcFoldoutMargin() - v.calcDeleteMargin()
	if w < 0 {
		return 0
	}
	return w
}

// truncateText returns the part of text's first line that fits in width
func (v *CommentView) truncateText(text string, width int) string {
	return render.Truncate(render.FirstLine(text), width)
}

// SetText replaces the text and notifies text listeners if it changed
func (v *CommentView) SetText(text string) {
	if v.disposed || text == v.text {
		return
	}
	old := v.text
	v.text = text
	if v.textArea.Value() != text {
		v.textArea.SetValue(text)
	}
	oldSize := v.growToMinSize()
	v.layout()
	v.textChange.Fire(old, text)
	v.sizeChange.Fire(oldSize, v.size)
}

func (v *CommentView) GetText() string {
	return v.text
}

// SetCollapsed folds or unfolds the view and notifies collapse listeners.
// The stored size is kept so unfolding restores it.
func (v *CommentView) SetCollapsed(collapsed bool) {
	if v.disposed || collapsed == v.collapsed {
		return
	}
	v.collapsed = collapsed
	if collapsed {
		v.Blur()
	}
	v.layout()
	v.collapseChange.Fire(!collapsed, collapsed)
}

func (v *CommentView) IsCollapsed() bool {
	return v.collapsed
}

// SetEditable toggles whether the text area accepts input. The value should
// already account for workspace read-only state.
func (v *CommentView) SetEditable(editable bool) {
	if v.disposed {
		return
	}
	v.editable = editable
	if editable {
		v.textAreaNode.RemoveAttr(render.AttrReadOnly)
	} else {
		v.textAreaNode.SetAttr(render.AttrReadOnly, "")
		v.Blur()
	}
	v.textAreaNode.ToggleClass(render.ClassReadOnly, !editable)
	v.layout()
}

func (v *CommentView) IsEditable() bool {
	return v.editable
}

// SetDeletable shows or hides the delete icon
func (v *CommentView) SetDeletable(deletable bool) {
	if v.disposed {
		return
	}
	v.deletable = deletable
	v.layout()
}

func (v *CommentView) MoveTo(location models.Coordinate) {
	if v.disposed {
		return
	}
	v.location = location
	v.svgRoot.SetPosition(location.X, location.Y)
}

func (v *CommentView) GetRelativeToSurfaceXY() models.Coordinate {
	return v.location
}

// SetHighlighted shows the selection frame
func (v *CommentView) SetHighlighted(highlighted bool) {
	v.highlighted = highlighted
	v.highlightRect.SetHidden(!highlighted)
	v.svgRoot.ToggleClass(render.ClassSelected, highlighted)
}

func (v *CommentView) IsHighlighted() bool {
	return v.highlighted
}

// SetDragging toggles the active-drag styling
func (v *CommentView) SetDragging(dragging bool) {
	v.svgRoot.ToggleClass(render.ClassDragging, dragging)
}

// SetDeleteStyle toggles the "drop here to delete" styling
func (v *CommentView) SetDeleteStyle(wouldDelete bool) {
	v.svgRoot.ToggleClass(render.ClassDraggingDelete, wouldDelete)
}

// BringToFront paints the view above every other node on the surface
func (v *CommentView) BringToFront() {
	v.surface.BringToFront(v.svgRoot)
}

// Focus starts routing keys to the text area
func (v *CommentView) Focus() tea.Cmd {
	if v.disposed || !v.editable || v.collapsed {
		return nil
	}
	cmd := v.textArea.Focus()
	v.setFocused(true)
	return cmd
}

// Blur stops routing keys to the text area
func (v *CommentView) Blur() {
	v.textArea.Blur()
	v.setFocused(false)
}

func (v *CommentView) setFocused(focused bool) {
	old := v.focused
	v.focused = focused
	v.textAreaNode.ToggleClass(render.ClassFocused, focused)
	v.focusChange.Fire(old, focused)
}

func (v *CommentView) Focused() bool {
	return v.focused
}

// HandleKey feeds a key to the focused text area. A resulting text change
// is reported to text listeners exactly once.
func (v *CommentView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if v.disposed || !v.focused || !v.editable {
		return nil
	}
	var cmd tea.Cmd
	v.textArea, cmd = v.textArea.Update(msg)
	v.onTextAreaChange()
	return cmd
}

func (v *CommentView) onTextAreaChange() {
	value := v.textArea.Value()
	if value == v.text {
		return
	}
	old := v.text
	v.text = value
	oldSize := v.growToMinSize()
	v.layout()
	v.textChange.Fire(old, value)
	v.sizeChange.Fire(oldSize, v.size)
}

// growToMinSize raises the stored size to the minimum, which depends on the
// text, and returns the size before
func (v *CommentView) growToMinSize() models.Size {
	old := v.size
	v.size = v.size.Max(v.CalcMinSize())
	return old
}

// onFoldoutDown swallows the click on a non-editable view so it does not
// start a drag
func (v *CommentView) onFoldoutDown(e render.PointerEvent) bool {
	if e.Button != render.ButtonLeft {
		return false
	}
	if v.editable {
		v.SetCollapsed(!v.collapsed)
	}
	return true
}

func (v *CommentView) onDeleteDown(e render.PointerEvent) bool {
	if e.Button != render.ButtonLeft {
		return false
	}
	if v.editable && v.deletable {
		v.Dispose()
	}
	return true
}

func (v *CommentView) onTextAreaDown(e render.PointerEvent) bool {
	if e.Button != render.ButtonLeft || !v.editable {
		return false
	}
	v.Focus()
	return true
}

func (v *CommentView) onResizePointerDown(e render.PointerEvent) bool {
	if e.Button != render.ButtonLeft || !v.editable {
		return false
	}
	v.unbindDrag()
	v.preResizeSize = v.size
	v.resizeStart = e.Coordinate()
	v.resizePointerMoveListener = v.surface.BindDocument(render.PointerMove, v.onResizePointerMove)
	v.resizePointerUpListener = v.surface.BindDocument(render.PointerUp, v.onResizePointerUp)
	return true
}

// onResizePointerMove resizes without notifying; listeners hear about the
// whole gesture once on pointer up
func (v *CommentView) onResizePointerMove(e render.PointerEvent) bool {
	delta := e.Coordinate().Sub(v.resizeStart)
	v.SetSizeWithoutFiringEvents(models.Size{
		Width:  v.preResizeSize.Width + delta.X,
		Height: v.preResizeSize.Height + delta.Y,
	})
	return true
}

func (v *CommentView) onResizePointerUp(e render.PointerEvent) bool {
	v.onResizePointerMove(e)
	v.unbindDrag()
	v.sizeChange.Fire(v.preResizeSize, v.size)
	return true
}

// Resizing reports whether a resize gesture is in progress
func (v *CommentView) Resizing() bool {
	return v.resizePointerUpListener.Active()
}

func (v *CommentView) unbindDrag() {
	if v.resizePointerMoveListener != nil {
		v.surface.Unbind(v.resizePointerMoveListener)
		v.resizePointerMoveListener = nil
	}
	if v.resizePointerUpListener != nil {
		v.surface.Unbind(v.resizePointerUpListener)
		v.resizePointerUpListener = nil
	}
}

func (v *CommentView) AddSizeChangeListener(fn func(oldSize, newSize models.Size)) observer.ListenerID {
	return v.sizeChange.Add(fn)
}

func (v *CommentView) RemoveSizeChangeListener(id observer.ListenerID) bool {
	return v.sizeChange.Remove(id)
}

func (v *CommentView) AddTextChangeListener(fn func(oldText, newText string)) observer.ListenerID {
	return v.textChange.Add(fn)
}

func (v *CommentView) RemoveTextChangeListener(id observer.ListenerID) bool {
	return v.textChange.Remove(id)
}

func (v *CommentView) AddOnCollapseListener(fn func(oldCollapsed, newCollapsed bool)) observer.ListenerID {
	return v.collapseChange.Add(fn)
}

func (v *CommentView) RemoveOnCollapseListener(id observer.ListenerID) bool {
	return v.collapseChange.Remove(id)
}

// AddFocusListener is notified when the text area gains or loses focus
func (v *CommentView) AddFocusListener(fn func(oldFocused, newFocused bool)) observer.ListenerID {
	return v.focusChange.Add(fn)
}

func (v *CommentView) RemoveFocusListener(id observer.ListenerID) bool {
	return v.focusChange.Remove(id)
}

// AddDisposeListener registers fn to run once when the view is disposed,
// before its nodes are detached
func (v *CommentView) AddDisposeListener(fn func()) observer.ListenerID {
	return v.disposeSignal.Add(fn)
}

func (v *CommentView) RemoveDisposeListener(id observer.ListenerID) bool {
	return v.disposeSignal.Remove(id)
}

// Dispose notifies dispose listeners, cancels any resize in flight, drops
// every pointer binding and detaches the view from the surface. Only the
// first call does anything.
func (v *CommentView) Dispose() {
	if v.disposed || v.disposing {
		return
	}
	v.disposing = true
	v.disposeSignal.FireOnce()

	v.unbindDrag()
	v.surface.UnbindTree(v.svgRoot)
	v.svgRoot.Remove()
	v.Blur()

	v.disposed = true
	v.disposing = false
}

func (v *CommentView) IsDisposed() bool {
	return v.disposed
}

func (v *CommentView) IsDeadOrDying() bool {
	return v.disposing || v.disposed
}
