package scanner

// whitespace and whitespaceNoNewline classify bytes for the whitespace run
// at the start of every skip iteration. They are never written to.
var (
	whitespace = [256]bool{
		' ':  true,
		'\n': true,
		'\t': true,
		'\r': true,
		'\f': true,
		'\v': true,
	}
	whitespaceNoNewline = [256]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\f': true,
		'\v': true,
	}
)

func table(newlineOK bool) *[256]bool {
	if newlineOK {
		return &whitespace
	}
	return &whitespaceNoNewline
}

// IsWhitespace reports whether b is skipped as whitespace.
func IsWhitespace(b byte, newlineOK bool) bool {
	return table(newlineOK)[b]
}
