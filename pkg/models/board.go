package models

import "time"

// BoardVersion is the current board file format
const BoardVersion = 1

// Board is the on-disk form of a workspace
type Board struct {
	Version  int            `yaml:"version"`
	Saved    time.Time      `yaml:"saved,omitempty"`
	Comments []CommentState `yaml:"comments"`
}
