package scanner

import "fmt"

func (suite *ScannerSuite) TestEmptyInput() {
	suite.assertSkip("", 0, 0)
	suite.assertSkipNewline("", 0, false, 0)
}

func (suite *ScannerSuite) TestAtEnd() {
	suite.assertSkip("abc", 3, 3)
	suite.assertSkip("abc  ", 5, 5)
}

func (suite *ScannerSuite) TestNothingToSkip() {
	suite.assertSkip("abc", 0, 0)
	suite.assertSkip("abc", 1, 1)
	suite.assertSkip("a", 0, 0)
	suite.assertSkip("/", 0, 0)
	suite.assertSkip("/a", 0, 0)
	suite.assertSkip("*/", 0, 0)
}

func (suite *ScannerSuite) TestWhitespace() {
	suite.assertSkip("   abc", 0, 3)
	suite.assertSkip(" \t\r\f\v\nabc", 0, 6)
	suite.assertSkip("a   b", 1, 4)
	suite.assertSkip("    ", 0, 4)
	suite.assertSkip(" /", 0, 1)
}

func (suite *ScannerSuite) TestWhitespaceNewlineSignificant() {
	suite.assertSkipNewline("  \nabc", 0, false, 2)
	suite.assertSkipNewline("\nabc", 0, false, 0)
	suite.assertSkipNewline(" \t\r\nabc", 0, false, 3)
	suite.assertSkipNewline("  \nabc", 0, true, 3)
}

func (suite *ScannerSuite) TestLineComment() {
	suite.assertSkip("// comment\nabc", 0, 11)
	suite.assertSkipNewline("// comment\nabc", 0, false, 10)
	suite.assertSkip("//\nabc", 0, 3)
	suite.assertSkip("a // comment\nb", 1, 13)
}

func (suite *ScannerSuite) TestLineCommentAtEOF() {
	suite.assertSkip("// comment", 0, 10)
	suite.assertSkip("//", 0, 2)
	suite.assertSkipNewline("// comment", 0, false, 10)
	suite.assertSkip("abc //", 3, 6)
}

func (suite *ScannerSuite) TestLineContinuation() {
	suite.assertSkip("// a\\\nb\nrest", 0, 8)
	suite.assertSkipNewline("// a\\\nb\nrest", 0, false, 7)
	// the continuation swallows exactly one newline
	suite.assertSkip("// a\\\n\nrest", 0, 7)
	suite.assertSkipNewline("// a\\\n\nrest", 0, false, 6)
	// a backslash followed by anything else is ordinary comment text
	suite.assertSkip("// a\\ b\nrest", 0, 8)
	suite.assertSkip("// a\\\r\nrest", 0, 7)
	suite.assertSkip("// a\\", 0, 5)
	suite.assertSkip("// a\\\n", 0, 6)
}

func (suite *ScannerSuite) TestCarriageReturnInsideLineComment() {
	suite.assertSkip("// a\r\nb", 0, 6)
	suite.assertSkipNewline("// a\r\nb", 0, false, 5)
}

func (suite *ScannerSuite) TestBlockComment() {
	suite.assertSkip("/* a\nb */ x", 0, 10)
	suite.assertSkip("/**/x", 0, 4)
	suite.assertSkip("/***/x", 0, 5)
	suite.assertSkip("/* // */x", 0, 8)
	suite.assertSkip("/* a */", 0, 7)
}

func (suite *ScannerSuite) TestBlockCommentDoesNotNest() {
	suite.assertSkip("/* /* */ x */", 0, 9)
}

func (suite *ScannerSuite) TestBlockCommentIgnoresNewlineFlag() {
	suite.assertSkipNewline("/* a\nb */x", 0, false, 9)
	suite.assertSkipNewline("/* a */\nx", 0, false, 7)
}

func (suite *ScannerSuite) TestUnterminatedBlockComment() {
	suite.assertUnterminated("/* unterminated", 0, 15)
	suite.assertUnterminated("/*", 0, 2)
	suite.assertUnterminated("/*/", 0, 3)
	suite.assertUnterminated("/* *", 0, 4)
	suite.assertUnterminated("x /* a", 1, 6)
	suite.assertUnterminated("// a\n/* b", 0, 9)
}

func (suite *ScannerSuite) TestUnterminatedMessage() {
	_, err := suite.skip("/* unterminated", 0, true)
	suite.EqualError(err, "Unterminated comment at position 15")
}

func (suite *ScannerSuite) TestMixed() {
	input := `
// header
/* block
   comment */  // trailing

	FoamFile
`
	suite.assertSkip(input, 0, 49)
	suite.assertSkipNewline(input, 0, false, 0)
	suite.assertSkipNewline(input, 1, false, 10)
	suite.assertSkipNewline(input, 11, false, 46)
}

func (suite *ScannerSuite) TestPositionOutOfRange() {
	for _, pos := range []int{-1, 4, 100} {
		got, err := suite.skip("abc", pos, true)
		suite.Equal(0, got)
		suite.Equal(PositionError{Pos: pos, Len: 3}, err, fmt.Sprintf("pos=%d", pos))
	}
}
