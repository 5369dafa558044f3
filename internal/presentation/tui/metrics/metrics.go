// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines     = 2
	FooterLines     = 1
	BlockTitleLines = 1

	// DefaultWidth and DefaultHeight are used until the first resize message arrives.
	DefaultWidth  = 80
	DefaultHeight = 24

	HighlightSymbol = "> "
	ItemPadding     = 1
)
