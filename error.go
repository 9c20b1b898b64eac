package foamskip

import (
	"fmt"
	"strings"

	"github.com/tsatke/foamskip/internal/scanner"
)

const (
	expectedCommentEnd = "*/"
	expectedEOF        = "end of file"
)

// UnterminatedCommentError is returned when a "/*" has no matching "*/".
// Pos is the offset at which the search for the closing sequence was
// abandoned, which is the end of the contents.
type UnterminatedCommentError struct {
	Pos      int
	Line     int
	Column   int
	Expected string

	line string
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("Unterminated comment at position %d", e.Pos)
}

// Diagnostic renders the error together with the offending line and a
// marker under the failing column.
func (e *UnterminatedCommentError) Diagnostic() string {
	return diagnostic(e.Line, e.Column, e.line, e.Expected)
}

// TrailingContentError is returned by ExpectEnd if meaningful content
// follows where the end of the contents was expected.
type TrailingContentError struct {
	Pos      int
	Line     int
	Column   int
	Expected string

	line string
}

func newTrailingContentError[C Contents](contents C, pos int) *TrailingContentError {
	line, col := Location(contents, pos)
	return &TrailingContentError{
		Pos:      pos,
		Line:     line,
		Column:   col,
		Expected: expectedEOF,
		line:     lineAt(contents, pos),
	}
}

func (e *TrailingContentError) Error() string {
	return fmt.Sprintf("expected %s at position %d (line %d, column %d)", e.Expected, e.Pos, e.Line, e.Column)
}

func (e *TrailingContentError) Diagnostic() string {
	return diagnostic(e.Line, e.Column, e.line, e.Expected)
}

// PositionError is returned when the start offset lies outside of the
// contents.
type PositionError struct {
	Pos int
	Len int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d out of range [0,%d]", e.Pos, e.Len)
}

// InputTypeError is returned by SkipAny for values that are not byte
// sequences.
type InputTypeError struct {
	Type string
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("contents must be []byte, string or provide Bytes(), but got %s", e.Type)
}

func errorFromInternal[C Contents](contents C, err error) error {
	switch e := err.(type) {
	case scanner.UnterminatedCommentError:
		line, col := Location(contents, e.Pos)
		return &UnterminatedCommentError{
			Pos:      e.Pos,
			Line:     line,
			Column:   col,
			Expected: expectedCommentEnd,
			line:     lineAt(contents, e.Pos),
		}
	case scanner.PositionError:
		return &PositionError{
			Pos: e.Pos,
			Len: e.Len,
		}
	}
	return fmt.Errorf("skip: %w", err)
}

// Location returns the 1-based line and column of pos in contents. Offsets
// past the end are clamped to the end.
func Location[C Contents](contents C, pos int) (line, col int) {
	if pos > len(contents) {
		pos = len(contents)
	}
	line, col = 1, 1
	for i := 0; i < pos; i++ {
		if contents[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// lineAt returns the line containing pos, without its newline.
func lineAt[C Contents](contents C, pos int) string {
	if pos > len(contents) {
		pos = len(contents)
	}
	start := pos
	for start > 0 && contents[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(contents) && contents[end] != '\n' {
		end++
	}
	return string(contents[start:end])
}

func diagnostic(line, col int, text, expected string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "parsing failed on line %d, column %d:\n", line, col)
	b.WriteString(text)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString("^\n")
	_, _ = fmt.Fprintf(&b, "Expected: %s", expected)
	return b.String()
}
