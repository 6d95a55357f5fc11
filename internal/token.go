package internal

import "fmt"

// TokenType Holds a token kind
type TokenType int

const (
	tkEOF TokenType = iota

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, for, fun, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFor
	tkFun
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = [...]string{
	tkEOF:          "EOF",
	tkLeftParen:    "LEFT_PAREN",
	tkRightParen:   "RIGHT_PAREN",
	tkLeftBrace:    "LEFT_BRACE",
	tkRightBrace:   "RIGHT_BRACE",
	tkComma:        "COMMA",
	tkDot:          "DOT",
	tkMinus:        "MINUS",
	tkPlus:         "PLUS",
	tkSemicolon:    "SEMICOLON",
	tkSlash:        "SLASH",
	tkStar:         "STAR",
	tkBang:         "BANG",
	tkBangEqual:    "BANG_EQUAL",
	tkEqual:        "EQUAL",
	tkEqualEqual:   "EQUAL_EQUAL",
	tkGreater:      "GREATER",
	tkGreaterEqual: "GREATER_EQUAL",
	tkLess:         "LESS",
	tkLessEqual:    "LESS_EQUAL",
	tkIdentifier:   "IDENTIFIER",
	tkString:       "STRING",
	tkNumber:       "NUMBER",
	tkAnd:          "AND",
	tkClass:        "CLASS",
	tkElse:         "ELSE",
	tkFalse:        "FALSE",
	tkFor:          "FOR",
	tkFun:          "FUN",
	tkIf:           "IF",
	tkNil:          "NIL",
	tkOr:           "OR",
	tkPrint:        "PRINT",
	tkReturn:       "RETURN",
	tkSuper:        "SUPER",
	tkThis:         "THIS",
	tkTrue:         "TRUE",
	tkVar:          "VAR",
	tkWhile:        "WHILE",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

var keywords = map[string]TokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// Token is a single lexeme scanned from source. Tokens are never mutated
// after the lexer emits them.
type Token struct {
	Kind    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Kind, t.Lexeme, printObj(t.Literal))
}
