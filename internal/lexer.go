package internal

import (
	"strconv"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int

	tokens []Token

	state *interpreterState
}

func newLexer(state *interpreterState, source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
		tokens: make([]Token, 0),
		state:  state,
	}
}

func (l *lexer) scan() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{
		Kind: tkEOF,
		Line: l.line,
	})
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			l.blockComment()
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(errUnexpectedChar, l.line, "")
		}
	}
}

func (l *lexer) blockComment() {
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		if l.advance() == '\n' {
			l.line++
		}
	}
	l.state.setError(errUnclosedComment, l.line, "")
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(errUnclosedString, l.line, "")
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tkString, loxString(l.source[l.start+1:l.current-1]))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(tkNumber, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(token TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		Kind:    token,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
