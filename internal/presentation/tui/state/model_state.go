package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/tesso57/headlines/internal/domain/reading"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	List       *reading.ArticleList
	Keys       KeyMap
	Help       help.Model
	Width      int
	Height     int
	ShouldExit bool
}
