package scanner

// Bytes is any contiguous, read-only byte sequence.
type Bytes interface {
	~[]byte | ~string
}

// Skip returns the first offset at or after pos that is neither whitespace
// nor part of a comment. Line comments run to the next newline that is not
// preceded by a backslash. If newlineOK is false, newlines are not
// whitespace and a line comment stops in front of its terminating newline.
// Block comments do not nest and ignore newlineOK.
func Skip[B Bytes](buf B, pos int, newlineOK bool) (int, error) {
	n := len(buf)
	if pos < 0 || pos > n {
		return 0, PositionError{Pos: pos, Len: n}
	}

	ws := table(newlineOK)
	for {
		for pos < n && ws[buf[pos]] {
			pos++
		}

		// a comment opener needs two bytes
		if pos+1 >= n {
			return pos, nil
		}

		if buf[pos] != '/' {
			return pos, nil
		}

		switch buf[pos+1] {
		case '/':
			pos = skipLineComment(buf, pos+2, newlineOK)
		case '*':
			end, ok := skipBlockComment(buf, pos+2)
			if !ok {
				return 0, UnterminatedCommentError{Pos: end}
			}
			pos = end
		default:
			return pos, nil
		}
	}
}

// skipLineComment returns the offset after the line comment whose body
// starts at pos.
func skipLineComment[B Bytes](buf B, pos int, newlineOK bool) int {
	n := len(buf)
	for pos < n {
		switch buf[pos] {
		case '\n':
			if newlineOK {
				pos++
			}
			return pos
		case '\\':
			if pos+1 < n && buf[pos+1] == '\n' {
				// continuation, the newline belongs to the comment
				pos++
			}
		}
		pos++
	}
	return pos
}

// skipBlockComment returns the offset after the first "*/" at or after pos.
// If there is none, it returns the end of the buffer and false.
func skipBlockComment[B Bytes](buf B, pos int) (int, bool) {
	n := len(buf)
	for ; pos+1 < n; pos++ {
		if buf[pos] == '*' && buf[pos+1] == '/' {
			return pos + 2, true
		}
	}
	return n, false
}
