package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type parseError struct {
	err   error
	line  int
	where string
}

func (e parseError) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err)
}

// RuntimeError is raised by the evaluator. It carries the token closest to
// the failure so the driver can report a line number.
type RuntimeError struct {
	Token *Token
	Err   error
}

func (e *RuntimeError) Error() string {
	return e.Err.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// detailError decorates one of the sentinel errors below with a message
// naming the offending value, while still matching it through errors.Is.
type detailError struct {
	kind error
	msg  string
}

func (e *detailError) Error() string {
	return e.msg
}

func (e *detailError) Unwrap() error {
	return e.kind
}

func errorf(kind error, format string, a ...interface{}) error {
	return &detailError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// parsePanic unwinds the parser to the nearest statement boundary.
type parsePanic struct{}

// interpreterState stores the state of an interpreter session
type interpreterState struct {
	errors []parseError

	hadError        bool
	hadRuntimeError bool
	runtimeError    *RuntimeError

	logger IPrinter
	log    logrus.FieldLogger
}

func newInterpreterState(p IPrinter, log logrus.FieldLogger) *interpreterState {
	return &interpreterState{
		errors: make([]parseError, 0),
		logger: p,
		log:    log,
	}
}

func (s *interpreterState) setError(err error, line int, where string) {
	s.hadError = true
	s.errors = append(s.errors, parseError{
		err:   err,
		line:  line,
		where: where,
	})
	s.log.WithFields(logrus.Fields{
		"line":  line,
		"where": where,
	}).Debug(err)
}

// tokenError reports err at tk
func (s *interpreterState) tokenError(tk *Token, err error) {
	if tk.Kind == tkEOF {
		s.setError(err, tk.Line, " at end")
		return
	}
	s.setError(err, tk.Line, " at '"+tk.Lexeme+"'")
}

func (s *interpreterState) fatalError(tk *Token, err error) {
	s.tokenError(tk, err)
	panic(parsePanic{})
}

func (s *interpreterState) runtimeErr(err error, tk *Token) {
	panic(&RuntimeError{Token: tk, Err: err})
}

func (s *interpreterState) reportRuntimeError(err *RuntimeError) {
	s.hadRuntimeError = true
	s.runtimeError = err
	s.log.WithFields(logrus.Fields{
		"line":   err.Token.Line,
		"lexeme": err.Token.Lexeme,
	}).Debug(err.Err)
	s.logger.Fprintf(os.Stderr, "%s\n[line %d]\n", err.Err.Error(), err.Token.Line)
}

// Valid returns true if no static error has been reported
func (s *interpreterState) Valid() bool {
	return !s.hadError
}

// PrintErrors prints pending static errors and reports whether there were any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, e.String())
	}
	s.errors = s.errors[:0]
	return s.hadError
}

func (s *interpreterState) clear() {
	s.errors = s.errors[:0]
	s.hadError = false
	s.hadRuntimeError = false
	s.runtimeError = nil
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnclosedString = errors.New("Unterminated string.")
var errUnclosedComment = errors.New("Unterminated block comment.")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedExpr = errors.New("Expect expression.")
var errExpectedSemicolon = errors.New("Expect ';'")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedParen = errors.New("Expect '('")
var errExpectedClosingParen = errors.New("Expect ')'")
var errExpectedOpeningBrace = errors.New("Expect '{'")
var errExpectedClosingBrace = errors.New("Expect '}'")
var errExpectedName = errors.New("Expect name.")
var errExpectedParam = errors.New("Expect parameter name.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedDot = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errInvalidAssignment = errors.New("Invalid assignment target.")

// Resolver errors
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errOwnInitializer = errors.New("Can't read local variable in its own initializer.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable.")
var errUndefinedProp = errors.New("Undefined property.")
var errOnlyInstanceProps = errors.New("Only instances have properties.")
var errOnlyInstanceFields = errors.New("Only instances have fields.")
var errOnlyFunction = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments.")
var errOperandNumber = errors.New("Operand must be a number.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsAdd = errors.New("Operands must be two numbers or two strings.")
var errOperandsCompare = errors.New("Operands must be numbers or strings.")
var errDivisionByZero = errors.New("Divisor cannot be zero.")
var errExpectedClass = errors.New("Superclass must be a class.")
var errStackOverflow = errors.New("Stack overflow.")
