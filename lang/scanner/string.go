package scanner

import (
	"strings"

	"github.com/jmahotiedu/rift/lang/token"
)

// scanString scans a double-quoted string literal. Strings may span lines
// and support the escapes \n, \t, \\ and \"; any other \x is preserved
// literally as the two characters. An unterminated string reports an error
// and emits no token.
func (s *Scanner) scanString() {
	startLine, startCol := s.line, s.column-1

	var sb strings.Builder
	for !s.atEnd() && s.peek() != '"' {
		c := s.peek()
		if c == '\n' {
			s.line++
			s.column = 0
		}
		if c == '\\' {
			s.advance()
			if s.atEnd() {
				break
			}
			esc := s.advance()
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
		} else {
			sb.WriteRune(s.advance())
		}
	}

	if s.atEnd() {
		s.errorAt(startLine, startCol, "unterminated string")
		return
	}

	s.advance() // closing '"'
	text := string(s.src[s.start:s.current])
	s.tokens = append(s.tokens, token.Token{
		Kind:    token.STRING,
		Lexeme:  text,
		Literal: sb.String(),
		Line:    startLine,
		Column:  startCol,
	})
}
