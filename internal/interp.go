package internal

import (
	"bufio"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter is one interpreter session. Globals and resolution data
// survive across calls, so a REPL feeds every line to the same session.
type Interpreter struct {
	state  *interpreterState
	exec   *exec
	locals map[Expr]int
	log    logrus.FieldLogger
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for pipeline tracing
func WithLogger(log logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.log = log
		i.state.log = log
	}
}

// WithInput sets the source read by the input() native
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) {
		i.exec.input = bufio.NewReader(r)
	}
}

func defaultLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return log
}

// NewInterpreter creates a session printing through p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	log := defaultLogger()
	state := newInterpreterState(p, log)
	locals := make(map[Expr]int)
	i := &Interpreter{
		state:  state,
		exec:   newExec(state, locals),
		locals: locals,
		log:    log,
	}
	i.exec.input = bufio.NewReader(os.Stdin)
	defineGlobals(i.exec.globals)
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Scan turns source into tokens. Lexical errors are recorded on the session.
func (i *Interpreter) Scan(source string) []Token {
	tokens := newLexer(i.state, source).scan()
	i.log.WithField("tokens", len(tokens)).Debug("scanned source")
	return tokens
}

// Parse builds the syntax tree. Statements that fail to parse are left out.
func (i *Interpreter) Parse(tokens []Token) []Stmt {
	stmts := newParser(i.state, tokens).parse()
	i.log.WithField("statements", len(stmts)).Debug("parsed tokens")
	return stmts
}

// Resolve records the scope distance of every local reference in stmts.
func (i *Interpreter) Resolve(stmts []Stmt) {
	newResolver(i.state, i.locals).resolveStmts(stmts)
	i.log.WithField("locals", len(i.locals)).Debug("resolved statements")
}

// Interpret executes stmts and reports whether they ran without a runtime
// error.
func (i *Interpreter) Interpret(stmts []Stmt, interactive bool) bool {
	i.log.WithFields(logrus.Fields{
		"statements":  len(stmts),
		"interactive": interactive,
	}).Debug("interpreting")
	return i.exec.interpret(stmts, interactive)
}

// Run takes source through every stage. Static errors stop the pipeline
// before execution.
func (i *Interpreter) Run(source string, interactive bool) bool {
	tokens := i.Scan(source)
	stmts := i.Parse(tokens)

	if i.state.PrintErrors() {
		return false
	}

	i.Resolve(stmts)

	if i.state.PrintErrors() {
		return false
	}

	return i.Interpret(stmts, interactive)
}

// PrintErrors reports pending static errors through the printer
func (i *Interpreter) PrintErrors() bool {
	return i.state.PrintErrors()
}

// HadError reports whether a lexical, syntax or resolution error occurred
func (i *Interpreter) HadError() bool {
	return i.state.hadError
}

// HadRuntimeError reports whether execution stopped on a runtime error
func (i *Interpreter) HadRuntimeError() bool {
	return i.state.hadRuntimeError
}

// RuntimeError returns the last runtime error, if any
func (i *Interpreter) RuntimeError() *RuntimeError {
	return i.state.runtimeError
}

// ClearErrors resets the error flags, e.g. between REPL lines
func (i *Interpreter) ClearErrors() {
	i.state.clear()
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(p).Run(source, false)
}
