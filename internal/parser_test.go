package internal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(source string) ([]Stmt, *interpreterState, *testPrinter) {
	state, tp := newTestState()
	tokens := newLexer(state, source).scan()
	return newParser(state, tokens).parse(), state, tp
}

func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	stmts, state, tp := parseSource(source)
	state.PrintErrors()
	require.Empty(t, tp.errors, "source: %s", source)
	assert.Equal(t, tree+"\n", FormatTree(stmts), "source: %s", source)
}

func TestParseExpressions(t *testing.T) {
	checkTree(t, "print 1 + 2 * 3;", "(print (+ 1 (* 2 3)))")
	checkTree(t, "1 - 2 - 3;", "(; (- (- 1 2) 3))")
	checkTree(t, "a = b = 1;", "(; (= a (= b 1)))")
	checkTree(t, "-a - -b;", "(; (- (- a) (- b)))")
	checkTree(t, "!a == b;", "(; (== (! a) b))")
	checkTree(t, "a < b == c >= d;", "(; (== (< a b) (>= c d)))")
	checkTree(t, "a or b and c;", "(; (or a (and b c)))")
	checkTree(t, "(1);", "(; (group 1))")
	checkTree(t, "f(1, 2)(3);", "(; (call (call f 1 2) 3))")
	checkTree(t, "f();", "(; (call f))")
	checkTree(t, "a.b.c = 1;", "(; (= (. a b) c 1))")
	checkTree(t, "super.m;", "(; (super m))")
	checkTree(t, "this.x;", "(; (. this x))")
	checkTree(t, `"s" + nil;`, `(; (+ "s" nil))`)
	checkTree(t, "true != false;", "(; (!= true false))")
	checkTree(t, "2.5 / 0.5;", "(; (/ 2.5 0.5))")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "var a;", "(var a)")
	checkTree(t, "var a = 1;", "(var a = 1)")
	checkTree(t, "{ var a = 1; print a; }", "(block (var a = 1) (print a))")
	checkTree(t, "{}", "(block)")
	checkTree(t, "if (a) print 1;", "(if a (print 1))")
	checkTree(t, "if (a) print 1; else print 2;", "(if-else a (print 1) (print 2))")
	checkTree(t, "while (a) a = a - 1;", "(while a (; (= a (- a 1))))")
	checkTree(t, "fun f(a, b) { return a; }", "(fun f (a b) (return a))")
	checkTree(t, "fun f() { return; }", "(fun f () (return))")
	checkTree(t, "class A {}", "(class A)")
	checkTree(t, "class B < A { m() {} init(x) { this.x = x; } }",
		"(class B < A (fun m ()) (fun init (x) (; (= this x x))))")

	stmts, _, _ := parseSource("print 1;\nvar a;\n1;")
	assert.Len(t, stmts, 3)
}

func TestParseForDesugaring(t *testing.T) {
	checkTree(t, "for (var i = 0; i < 3; i = i + 1) print i;",
		"(block (var i = 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))")
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (i = 0; i < 3;) {}", "(block (; (= i 0)) (while (< i 3) (block)))")
	checkTree(t, "for (; a; a = false) print a;", "(while a (block (print a) (; (= a false))))")
}

func TestParseEcho(t *testing.T) {
	stmts, state, _ := parseSource("1;\na = 1;\na.b = 1;\nf();")
	require.True(t, state.Valid())
	require.Len(t, stmts, 4)

	echo := make([]bool, len(stmts))
	for i, s := range stmts {
		st, ok := s.(*exprStmt)
		require.True(t, ok)
		echo[i] = st.echo
	}
	assert.Equal(t, []bool{true, false, false, true}, echo)
}

func TestParseRecovery(t *testing.T) {
	stmts, state, tp := parseSource("var 1;\nprint 2;\nfun (a) {}\nclass A {}\nprint 3")
	assert.False(t, state.Valid())
	assert.Equal(t, "(print 2)\n(class A)\n", FormatTree(stmts))

	state.PrintErrors()
	assert.Equal(t, strings.Join([]string{
		"[line 1] Error at '1': Expect variable name.",
		"[line 3] Error at '(': Expect function name.",
		"[line 5] Error at end: Expect ';' after value.",
	}, "\n")+"\n", tp.errors)
}

func TestParseInvalidAssignmentKeepsParsing(t *testing.T) {
	stmts, state, tp := parseSource("a + b = c;\nprint 1;")
	assert.False(t, state.Valid())
	assert.Equal(t, "(; (+ a b))\n(print 1)\n", FormatTree(stmts))

	state.PrintErrors()
	assert.Equal(t, "[line 1] Error at '=': Invalid assignment target.\n", tp.errors)
}

func TestParseLimits(t *testing.T) {
	names := make([]string, 256)
	for i := range names {
		names[i] = fmt.Sprintf("p%d", i)
	}

	stmts, state, tp := parseSource("fun f(" + strings.Join(names[:255], ", ") + ") {}")
	assert.True(t, state.Valid())
	require.Len(t, stmts, 1)
	assert.Len(t, stmts[0].(*fnStmt).params, 255)

	stmts, state, tp = parseSource("fun f(" + strings.Join(names, ", ") + ") {}")
	assert.False(t, state.Valid())
	// the declaration is still produced
	require.Len(t, stmts, 1)
	state.PrintErrors()
	assert.Equal(t, "[line 1] Error at 'p255': Can't have more than 255 parameters.\n", tp.errors)

	stmts, state, tp = parseSource("f(" + strings.Join(names, ", ") + ");")
	assert.False(t, state.Valid())
	require.Len(t, stmts, 1)
	state.PrintErrors()
	assert.Equal(t, "[line 1] Error at 'p255': Can't have more than 255 arguments.\n", tp.errors)
}
