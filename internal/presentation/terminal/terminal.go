// Package terminal owns the terminal for the lifetime of an interactive session.
package terminal

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPanic reports that the session ended because of a panic.
// The terminal has already been restored when it is returned.
var ErrPanic = errors.New("session panicked")

// Run puts the terminal in raw mode on the alternate screen, runs model until it
// quits, and restores the terminal on every exit path.
func Run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (final tea.Model, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, options...)

	defer func() {
		if r := recover(); r != nil {
			_ = p.ReleaseTerminal()
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	final, err = p.Run()
	switch {
	case err == nil:
		return final, nil
	case errors.Is(err, tea.ErrProgramPanic):
		return final, fmt.Errorf("%w: %w", ErrPanic, err)
	case ctx.Err() != nil:
		return final, ctx.Err()
	default:
		return final, fmt.Errorf("run terminal session: %w", err)
	}
}
