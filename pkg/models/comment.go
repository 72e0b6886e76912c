package models

// CommentPasterType identifies copy data produced by a workspace comment
const CommentPasterType = "workspace-comment"

// CommentState is the serialized form of a workspace comment.
// Permission flags are only written when they differ from the default (true).
type CommentState struct {
	ID        string `yaml:"id" json:"id"`
	Text      string `yaml:"text" json:"text"`
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	Collapsed bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	X         int    `yaml:"x" json:"x"`
	Y         int    `yaml:"y" json:"y"`
	Editable  *bool  `yaml:"editable,omitempty" json:"editable,omitempty"`
	Movable   *bool  `yaml:"movable,omitempty" json:"movable,omitempty"`
	Deletable *bool  `yaml:"deletable,omitempty" json:"deletable,omitempty"`
}

// Location returns the saved workspace position
func (s CommentState) Location() Coordinate {
	return Coordinate{X: s.X, Y: s.Y}
}

// Size returns the saved (uncollapsed) size
func (s CommentState) Size() Size {
	return Size{Width: s.Width, Height: s.Height}
}

func (s CommentState) IsEditable() bool  { return flagOrTrue(s.Editable) }
func (s CommentState) IsMovable() bool   { return flagOrTrue(s.Movable) }
func (s CommentState) IsDeletable() bool { return flagOrTrue(s.Deletable) }

// CommentCopyData is what a comment hands to the clipboard
type CommentCopyData struct {
	Paster string       `yaml:"paster" json:"paster"`
	State  CommentState `yaml:"state" json:"state"`
}

// FalseFlag returns a pointer suitable for an explicitly disabled permission,
// or nil when the permission is granted.
func FalseFlag(granted bool) *bool {
	if granted {
		return nil
	}
	f := false
	return &f
}

func flagOrTrue(b *bool) bool {
	return b == nil || *b
}
