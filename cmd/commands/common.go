package commands

import (
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/internal/cli"
	"github.com/pluqqy/pluqqy-board/pkg/clipboard"
	"github.com/pluqqy/pluqqy-board/pkg/comment"
	"github.com/pluqqy/pluqqy-board/pkg/models"
	"github.com/pluqqy/pluqqy-board/pkg/workspace"
)

// shortIDLength is how much of a comment id the commands print
const shortIDLength = 8

var (
	logger = zap.NewNop()

	// clipboardProvider is replaced in tests
	clipboardProvider = clipboard.Default

	// nextCommentOffset places a comment added without --at
	nextCommentOffset = models.Coordinate{X: 2, Y: 1}
)

// SetLogger hands the root command's logger to the subcommands
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// loadBoard validates the project and loads the board
func loadBoard() (*cli.CommandContext, *workspace.Workspace, error) {
	ctx, err := cli.NewCommandContext(logger)
	if err != nil {
		return nil, nil, err
	}
	ws, err := ctx.LoadWorkspace()
	if err != nil {
		return nil, nil, err
	}
	return ctx, ws, nil
}

// resolveComment finds a comment by id or unique id prefix
func resolveComment(ws *workspace.Workspace, ref string) (*comment.RenderedWorkspaceComment, error) {
	return ws.Lookup(ref)
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

// nextLocation is below and right of the newest comment
func nextLocation(ws *workspace.Workspace) models.Coordinate {
	comments := ws.RenderedComments()
	if len(comments) == 0 {
		return models.Coordinate{X: 1, Y: 0}
	}
	return comments[len(comments)-1].GetRelativeToSurfaceXY().Add(nextCommentOffset)
}
