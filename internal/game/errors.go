package game

import "fmt"

// LayoutError reports a malformed layout string. It is fatal to match setup
// and is never recovered.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return "layout: " + e.Reason
}

func layoutErrorf(format string, args ...any) *LayoutError {
	return &LayoutError{Reason: fmt.Sprintf(format, args...)}
}

// IllegalMoveError reports a direction that is not in a bot's legal-move
// table. The scheduler recovers from it by substituting Stop.
type IllegalMoveError struct {
	BotID     int
	Direction Direction
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("game: illegal move %s for bot %d", e.Direction, e.BotID)
}

// OutOfBoundsError reports an access outside the grid.
type OutOfBoundsError struct {
	Pos    Position
	Height int
	Width  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("game: position (%d,%d) out of bounds for %dx%d grid",
		e.Pos.Row, e.Pos.Col, e.Height, e.Width)
}
