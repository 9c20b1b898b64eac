package foamskip

import (
	"fmt"

	"github.com/tsatke/foamskip/internal/scanner"
)

// Contents is the set of byte sequences Skip can scan without copying.
type Contents interface {
	~[]byte | ~string
}

// byteser is implemented by buffers like *bytes.Buffer.
type byteser interface {
	Bytes() []byte
}

// Skip returns the offset of the next meaningful byte in contents at or
// after pos, skipping whitespace, line comments ("// ...", continued onto
// the next line by a trailing backslash) and block comments ("/* ... */").
// The result is len(contents) if nothing but whitespace and comments
// follows.
//
// By default newlines are whitespace. With WithNewlineOK(false), the scan
// stops at a newline instead, including the one that ends a line comment,
// so that callers can detect the end of a line.
//
// If a block comment is never closed, an *UnterminatedCommentError is
// returned. A pos outside of [0,len(contents)] yields a *PositionError.
func Skip[C Contents](contents C, pos int, opts ...Option) (int, error) {
	o := newOptions(opts)

	next, err := scanner.Skip(contents, pos, o.newlineOK)
	if err != nil {
		return 0, errorFromInternal(contents, err)
	}
	return next, nil
}

// SkipAny is like Skip, but accepts the contents as a dynamic value, which
// is useful for hosts that hand over untyped values. Supported are []byte,
// string and any type with a Bytes() []byte method. Other types yield an
// *InputTypeError.
func SkipAny(contents interface{}, pos int, opts ...Option) (int, error) {
	switch c := contents.(type) {
	case []byte:
		return Skip(c, pos, opts...)
	case string:
		return Skip(c, pos, opts...)
	case byteser:
		return Skip(c.Bytes(), pos, opts...)
	default:
		return 0, &InputTypeError{Type: fmt.Sprintf("%T", contents)}
	}
}

// ExpectEnd skips from pos and requires that nothing but whitespace and
// comments is left. Otherwise, a *TrailingContentError pointing at the
// first meaningful byte is returned.
func ExpectEnd[C Contents](contents C, pos int, opts ...Option) error {
	next, err := Skip(contents, pos, opts...)
	if err != nil {
		return err
	}
	if next != len(contents) {
		return newTrailingContentError(contents, next)
	}
	return nil
}
