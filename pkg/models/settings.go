package models

// Settings represents the application configuration
type Settings struct {
	Workspace WorkspaceSettings `yaml:"workspace"`
	Comment   CommentSettings   `yaml:"comment"`
	UI        UISettings        `yaml:"ui"`
	Logging   LoggingSettings   `yaml:"logging"`
}

// WorkspaceSettings controls board-wide behavior
type WorkspaceSettings struct {
	ReadOnly   bool        `yaml:"read_only"`
	Grid       GridOptions `yaml:"grid"`
	DragRadius int         `yaml:"drag_radius"` // cells a pointer must travel before a drag starts
}

// CommentSettings controls new comments
type CommentSettings struct {
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowDeleteArea bool `yaml:"show_delete_area"`
	DeleteAreaSize Size `yaml:"delete_area_size"`
}

// LoggingSettings controls the zap logger built by the CLI
type LoggingSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // relative to the project directory; empty disables file logging
}

// DefaultCommentSize returns the configured size for new comments
func (s *Settings) DefaultCommentSize() Size {
	return Size{Width: s.Comment.DefaultWidth, Height: s.Comment.DefaultHeight}
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Workspace: WorkspaceSettings{
			ReadOnly: false,
			Grid: GridOptions{
				Spacing: 4,
				Snap:    false,
			},
			DragRadius: 1,
		},
		Comment: CommentSettings{
			DefaultWidth:  30,
			DefaultHeight: 8,
		},
		UI: UISettings{
			ShowDeleteArea: true,
			DeleteAreaSize: Size{Width: 10, Height: 3},
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  "logs/board.log",
		},
	}
}
