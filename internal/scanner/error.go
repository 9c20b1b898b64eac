package scanner

import "fmt"

// UnterminatedCommentError is returned when a block comment is opened but
// never closed. Pos is the offset where the search for the closing "*/" was
// given up, which is always the end of the buffer.
type UnterminatedCommentError struct {
	Pos int
}

func (e UnterminatedCommentError) Error() string {
	return fmt.Sprintf("Unterminated comment at position %d", e.Pos)
}

// PositionError is returned when the start offset does not lie within the
// buffer.
type PositionError struct {
	Pos int
	Len int
}

func (e PositionError) Error() string {
	return fmt.Sprintf("position %d out of range [0,%d]", e.Pos, e.Len)
}
