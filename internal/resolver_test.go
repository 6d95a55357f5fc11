package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolveSource returns the resolved distance of every variable, this or
// super reference, keyed by lexeme and line. Globals are reported as -1.
func resolveSource(t *testing.T, source string) map[string][]int {
	t.Helper()
	stmts, state, tp := parseSource(source)
	locals := make(map[Expr]int)
	newResolver(state, locals).resolveStmts(stmts)
	state.PrintErrors()
	require.Empty(t, tp.errors)

	distances := make(map[string][]int)
	collector := &referenceCollector{}
	for _, s := range stmts {
		collector.walkStmt(s)
	}
	for _, ref := range collector.refs {
		distance, ok := locals[ref.expr]
		if !ok {
			distance = -1
		}
		distances[ref.name] = append(distances[ref.name], distance)
	}
	return distances
}

type reference struct {
	name string
	expr Expr
}

// referenceCollector lists name references in source order
type referenceCollector struct {
	refs []reference
}

func (c *referenceCollector) walkStmt(s Stmt) {
	switch st := s.(type) {
	case *exprStmt:
		c.walkExpr(st.expression)
	case *printStmt:
		c.walkExpr(st.expression)
	case *varStmt:
		if st.initializer != nil {
			c.walkExpr(st.initializer)
		}
	case *blockStmt:
		for _, inner := range st.stmts {
			c.walkStmt(inner)
		}
	case *ifStmt:
		c.walkExpr(st.condition)
		c.walkStmt(st.thenBranch)
		if st.elseBranch != nil {
			c.walkStmt(st.elseBranch)
		}
	case *whileStmt:
		c.walkExpr(st.condition)
		c.walkStmt(st.body)
	case *fnStmt:
		for _, inner := range st.body {
			c.walkStmt(inner)
		}
	case *returnStmt:
		if st.value != nil {
			c.walkExpr(st.value)
		}
	case *classStmt:
		if st.superclass != nil {
			c.walkExpr(st.superclass)
		}
		for _, method := range st.methods {
			c.walkStmt(method)
		}
	}
}

func (c *referenceCollector) walkExpr(e Expr) {
	switch ex := e.(type) {
	case *variableExpr:
		c.refs = append(c.refs, reference{ex.name.Lexeme, ex})
	case *assignExpr:
		c.walkExpr(ex.value)
		c.refs = append(c.refs, reference{ex.name.Lexeme, ex})
	case *thisExpr:
		c.refs = append(c.refs, reference{"this", ex})
	case *superExpr:
		c.refs = append(c.refs, reference{"super", ex})
	case *binaryExpr:
		c.walkExpr(ex.left)
		c.walkExpr(ex.right)
	case *logicalExpr:
		c.walkExpr(ex.left)
		c.walkExpr(ex.right)
	case *unaryExpr:
		c.walkExpr(ex.right)
	case *groupingExpr:
		c.walkExpr(ex.expression)
	case *callExpr:
		c.walkExpr(ex.callee)
		for _, argument := range ex.arguments {
			c.walkExpr(argument)
		}
	case *getExpr:
		c.walkExpr(ex.object)
	case *setExpr:
		c.walkExpr(ex.object)
		c.walkExpr(ex.value)
	}
}

func TestResolveGlobals(t *testing.T) {
	distances := resolveSource(t, "var a = 1;\nprint a;\na = 2;")
	assert.Equal(t, []int{-1, -1}, distances["a"])
}

func TestResolveBlocks(t *testing.T) {
	distances := resolveSource(t, `
{
  var a = 1;
  print a;
  {
    print a;
    {
      a = 3;
    }
  }
}`)
	assert.Equal(t, []int{0, 1, 2}, distances["a"])
}

func TestResolveShadowing(t *testing.T) {
	distances := resolveSource(t, `
var a = 1;
{
  fun show() { print a; }
  var a = 2;
  print a;
}`)
	// show keeps seeing the global even after the block declares its own a
	assert.Equal(t, []int{-1, 0}, distances["a"])
}

func TestResolveFunctions(t *testing.T) {
	distances := resolveSource(t, `
fun outer(x) {
  var y = x;
  fun inner() {
    return x + y;
  }
  return inner;
}`)
	assert.Equal(t, []int{0, 1}, distances["x"])
	assert.Equal(t, []int{1}, distances["y"])
	assert.Equal(t, []int{0}, distances["inner"])
}

func TestResolveClasses(t *testing.T) {
	distances := resolveSource(t, `
class A {
  m() { return this; }
}
class B < A {
  m() {
    fun nested() { return this; }
    return super.m();
  }
}`)
	assert.Equal(t, []int{-1}, distances["A"])
	assert.Equal(t, []int{1, 2}, distances["this"])
	assert.Equal(t, []int{2}, distances["super"])
}

func TestResolveLocalClass(t *testing.T) {
	distances := resolveSource(t, `
{
  class A {}
  class B < A {}
  print B;
}`)
	assert.Equal(t, []int{0}, distances["A"])
	assert.Equal(t, []int{0}, distances["B"])
}
