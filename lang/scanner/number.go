package scanner

import (
	"strconv"

	"github.com/jmahotiedu/rift/lang/token"
)

// scanNumber scans a run of digits, optionally followed by '.' and a
// further digit run; the '.' is only consumed when followed by a digit so
// that `3.` and method-call dots are not confused.
func (s *Scanner) scanNumber() {
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for !s.atEnd() && isDigit(s.peek()) {
			s.advance()
		}
	}

	text := string(s.src[s.start:s.current])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// unreachable: the lexical grammar above only ever produces a valid
		// float literal.
		value = 0
	}
	s.addToken(token.NUMBER, value)
}
