package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/clipboard"
	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/render"
)

// newCommentCascade offsets each new comment from the previous one
var newCommentCascade = models.Coordinate{X: 2, Y: 1}

type helpEntry struct {
	key  string
	desc string
}

var boardHelp = []helpEntry{
	{"n", "new"},
	{"tab", "next"},
	{"enter", "edit"},
	{"c", "collapse"},
	{"←↑↓→", "move"},
	{"shift+←↑↓→", "resize"},
	{"y/p/d", "copy/paste/dup"},
	{"x", "delete"},
	{"u/ctrl+r", "undo/redo"},
	{"m", "menu"},
	{"s", "save"},
	{"q", "quit"},
}

var editHelp = []helpEntry{
	{"esc", "done"},
	{"ctrl+c", "quit"},
}

func (a *App) helpLine() string {
	entries := boardHelp
	if c := a.ws.Selected(); c != nil && c.IsEditing() {
		entries = editHelp
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, HelpKeyStyle.Render(e.key)+" "+e.desc)
	}
	return strings.Join(parts, " • ")
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}
	if a.menu.Active() {
		a.menu.Update(msg)
		return a.syncEditGroup()
	}
	if c := a.ws.Selected(); c != nil && c.IsEditing() {
		return a.handleEditingKey(c, msg)
	}
	return a.handleBoardKey(msg)
}

func (a *App) handleEditingKey(c *comment.RenderedWorkspaceComment, msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		c.StopEditing()
		return a.syncEditGroup()
	}
	a.syncEditGroup()
	return c.HandleKey(msg)
}

func (a *App) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	c := a.ws.Selected()

	switch msg.String() {
	case "q":
		return a.quit()
	case "n":
		return a.newComment()
	case "tab":
		a.ws.SelectNext(1)
	case "shift+tab":
		a.ws.SelectNext(-1)
	case "esc":
		a.ws.CancelGesture()
		a.ws.ClearSelection()
	case "u":
		if a.ws.IsReadOnly() {
			return a.status("Board is read-only")
		}
		if !a.ws.Undo() {
			return a.status("Nothing to undo")
		}
		a.dirty = true
	case "ctrl+r":
		if a.ws.IsReadOnly() {
			return a.status("Board is read-only")
		}
		if !a.ws.Redo() {
			return a.status("Nothing to redo")
		}
		a.dirty = true
	case "r":
		a.ws.SetReadOnly(!a.ws.IsReadOnly())
		if a.ws.IsReadOnly() {
			return a.status("Board is read-only")
		}
		return a.status("Board is editable")
	case "s":
		return a.saveBoard()
	case "p":
		return a.paste()
	}

	if c == nil {
		return nil
	}

	switch msg.String() {
	case "enter", "e":
		if !c.IsEditable() {
			return a.status("Comment is not editable")
		}
		cmd := c.Edit()
		a.syncEditGroup()
		return cmd
	case "c", " ":
		if !c.IsEditable() {
			return a.status("Comment is not editable")
		}
		c.SetCollapsed(!c.IsCollapsed())
	case "up", "down", "left", "right":
		if !c.IsMovable() {
			return a.status("Comment cannot be moved")
		}
		dx, dy := arrowDelta(msg.String())
		c.MoveBy(dx, dy, "keyboard")
	case "shift+up", "shift+down", "shift+left", "shift+right":
		if !c.IsEditable() {
			return a.status("Comment cannot be resized")
		}
		dx, dy := arrowDelta(strings.TrimPrefix(msg.String(), "shift+"))
		size := c.GetSize()
		c.SetSize(models.Size{Width: size.Width + dx, Height: size.Height + dy})
	case "g":
		grid := a.ws.Grid()
		if grid.Spacing <= 0 || !c.IsMovable() {
			return nil
		}
		c.MoveTo(grid.AlignXY(c.GetRelativeToSurfaceXY()), "snap")
	case "y":
		return a.copySelected(c)
	case "d":
		if _, err := comment.Duplicate(c); err != nil {
			return a.status("Duplicate failed: %v", err)
		}
	case "x", "delete":
		if !c.IsDeletable() {
			return a.status("Comment cannot be deleted")
		}
		a.confirm.ShowInline("Delete this comment?", true, func() tea.Cmd {
			c.Dispose()
			return nil
		}, nil)
	case "m":
		at := c.GetRelativeToSurfaceXY()
		c.ShowContextMenu(render.PointerEvent{Kind: render.PointerDown, X: at.X, Y: at.Y, Button: render.ButtonRight})
		if options, anchor, ok := a.ws.PendingContextMenu(); ok {
			a.menu.Show(options, anchor)
		}
	}
	return nil
}

func arrowDelta(key string) (int, int) {
	switch key {
	case "up":
		return 0, -1
	case "down":
		return 0, 1
	case "left":
		return -1, 0
	case "right":
		return 1, 0
	}
	return 0, 0
}

func (a *App) quit() tea.Cmd {
	if !a.dirty {
		return tea.Quit
	}
	a.confirm.ShowDialog("Unsaved Changes", "Quit without saving the board?", "Changes since the last save are lost.", true,
		func() tea.Cmd { return tea.Quit }, nil)
	return nil
}

// newComment places an empty comment below and right of the last one and
// starts editing it
func (a *App) newComment() tea.Cmd {
	if a.ws.IsReadOnly() {
		return a.status("Board is read-only")
	}
	at := models.Coordinate{X: 1, Y: 0}
	if comments := a.ws.RenderedComments(); len(comments) > 0 {
		at = comments[len(comments)-1].GetRelativeToSurfaceXY().Add(newCommentCascade)
	}
	c := a.ws.NewComment("", at)
	c.Select()
	cmd := c.Edit()
	a.syncEditGroup()
	return cmd
}

func (a *App) saveBoard() tea.Cmd {
	states := a.ws.Save()
	if err := a.save(states); err != nil {
		a.logger.Error("Failed to save board", zap.Error(err))
		return a.status("Save failed: %v", err)
	}
	a.dirty = false
	a.logger.Info("Saved board", zap.Int("comments", len(states)))
	return a.status("Saved %d comments", len(states))
}

func (a *App) copySelected(c *comment.RenderedWorkspaceComment) tea.Cmd {
	data := c.ToCopyData()
	if data == nil {
		return a.status("Comment cannot be copied")
	}
	if err := clipboard.WriteCopyData(a.clipboard, data); err != nil {
		return a.status("Copy failed: %v", err)
	}
	return a.status("Copied comment")
}

// paste puts the clipboard next to the selection, or at the copied location
// when nothing is selected
func (a *App) paste() tea.Cmd {
	data, err := clipboard.ReadCopyData(a.clipboard)
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			return a.status("Clipboard is empty")
		}
		return a.status("Paste failed: %v", err)
	}
	if data.State.Width == 0 && data.State.Height == 0 {
		size := a.ws.DefaultSize()
		data.State.Width, data.State.Height = size.Width, size.Height
	}

	var at *models.Coordinate
	if sel := a.ws.Selected(); sel != nil {
		loc := sel.GetRelativeToSurfaceXY().Add(comment.DuplicateOffset)
		at = &loc
	}

	c, err := comment.Paste(a.ws, data, at)
	if err != nil {
		return a.status("Paste failed: %v", err)
	}
	c.Select()
	return a.status("Pasted comment")
}
