package internal

import (
	"bufio"
	"fmt"
)

// execResult tells the caller of a statement whether it completed normally
// or is unwinding a return. Only a function call consumes a return.
type execResult struct {
	returned bool
	value    interface{}
}

type exec struct {
	state *interpreterState

	globals *env
	env     *env
	locals  map[Expr]int

	input *bufio.Reader

	// depth counts active calls
	depth int
}

// maxCallDepth is the deepest call nesting a program may reach
const maxCallDepth = 10000

func newExec(state *interpreterState, locals map[Expr]int) *exec {
	globals := newEnv(state, nil)
	return &exec{
		state:   state,
		globals: globals,
		env:     globals,
		locals:  locals,
	}
}

// interpret runs stmts in order and stops at the first runtime error.
// In interactive mode bare expression statements echo their value.
func (e *exec) interpret(stmts []Stmt, interactive bool) bool {
	for _, s := range stmts {
		if !e.executeTopLevel(s, interactive) {
			return false
		}
	}
	return true
}

func (e *exec) executeTopLevel(s Stmt, interactive bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			runErr, isRuntime := r.(*RuntimeError)
			if !isRuntime {
				panic(r)
			}
			e.env = e.globals
			e.state.reportRuntimeError(runErr)
			ok = false
		}
	}()

	if exprSt, isExpr := s.(*exprStmt); isExpr && interactive && exprSt.echo {
		value := e.evaluate(exprSt.expression)
		e.state.logger.Println(printObj(value))
		return true
	}
	e.execute(s)
	return true
}

func (e *exec) execute(s Stmt) execResult {
	res, _ := s.accept(e).(execResult)
	return res
}

func (e *exec) evaluate(expr Expr) interface{} {
	return expr.accept(e)
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	e.evaluate(stmt.expression)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := e.evaluate(stmt.expression)
	e.state.logger.Println(printObj(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = e.evaluate(stmt.initializer)
	}
	e.env.define(stmt.name.Lexeme, val)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	return e.executeBlock(stmt.stmts, newEnv(e.state, e.env))
}

// executeBlock runs stmts inside env and always restores the previous
// environment, whether the block finishes, returns or fails.
func (e *exec) executeBlock(stmts []Stmt, env *env) execResult {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if res := e.execute(s); res.returned {
			return res
		}
	}
	return execResult{}
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if e.truthy(e.evaluate(stmt.condition)) {
		return e.execute(stmt.thenBranch)
	}
	if stmt.elseBranch != nil {
		return e.execute(stmt.elseBranch)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for e.truthy(e.evaluate(stmt.condition)) {
		if res := e.execute(stmt.body); res.returned {
			return res
		}
	}
	return nil
}

func (e *exec) visitFnStmt(stmt *fnStmt) R {
	e.env.define(stmt.name.Lexeme, &loxFunction{
		declaration:   stmt,
		closure:       e.env,
		isInitializer: false,
	})
	return nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	var value interface{}
	if stmt.value != nil {
		value = e.evaluate(stmt.value)
	}
	return execResult{returned: true, value: value}
}

func (e *exec) visitClassStmt(stmt *classStmt) R {
	var superclass *loxClass
	if stmt.superclass != nil {
		class, isClass := e.evaluate(stmt.superclass).(*loxClass)
		if !isClass {
			e.state.runtimeErr(errExpectedClass, stmt.superclass.name)
		}
		superclass = class
	}

	e.env.define(stmt.name.Lexeme, nil)

	if superclass != nil {
		e.env = newEnv(e.state, e.env)
		e.env.define("super", superclass)
	}

	methods := make(map[string]*loxFunction, len(stmt.methods))
	for _, method := range stmt.methods {
		methods[method.name.Lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.Lexeme == "init",
		}
	}

	class := &loxClass{
		name:       stmt.name.Lexeme,
		superclass: superclass,
		methods:    methods,
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	e.env.assign(stmt.name, class)
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := e.evaluate(expr.value)
	if distance, ok := e.locals[expr]; ok {
		e.env.assignAt(distance, expr.name, val)
	} else {
		e.globals.assign(expr.name, val)
	}
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)
	switch expr.operator.Kind {
	case tkEqualEqual:
		return loxBool(isEqual(left, right))
	case tkBangEqual:
		return loxBool(!isEqual(left, right))
	}

	op, ok := binaryOperators[expr.operator.Kind]
	if !ok {
		panic(fmt.Sprintf("unknown binary operator %s", expr.operator.Kind))
	}
	return e.operate(op, expr.operator, left, right)
}

func (e *exec) operate(op operator, tk *Token, value interface{}, arguments ...interface{}) interface{} {
	operand, isOperable := value.(operable)
	if !isOperable {
		e.state.runtimeErr(operandError(op), tk)
	}
	apply, err := operand.getOperator(op)
	if err != nil {
		e.state.runtimeErr(err, tk)
	}
	result, err := apply(arguments...)
	if err != nil {
		e.state.runtimeErr(err, tk)
	}
	return result
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.evaluate(expr.callee)
	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = e.evaluate(expr.arguments[i])
	}

	fn, isFn := callee.(callable)
	if !isFn {
		e.state.runtimeErr(errOnlyFunction, expr.paren)
	}

	if len(arguments) != fn.arity() {
		e.state.runtimeErr(errorf(
			errInvalidNumberArguments,
			"Expected %d arguments but got %d.",
			fn.arity(),
			len(arguments),
		), expr.paren)
	}

	if e.depth >= maxCallDepth {
		e.state.runtimeErr(errStackOverflow, expr.paren)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	return fn.call(e, arguments)
}

func (e *exec) visitGetExpr(expr *getExpr) R {
	object := e.evaluate(expr.object)
	if instance, ok := object.(*loxInstance); ok {
		return instance.get(e.state, expr.name)
	}
	e.state.runtimeErr(errOnlyInstanceProps, expr.name)
	return nil
}

func (e *exec) visitSetExpr(expr *setExpr) R {
	object := e.evaluate(expr.object)
	instance, ok := object.(*loxInstance)
	if !ok {
		e.state.runtimeErr(errOnlyInstanceFields, expr.name)
	}
	value := e.evaluate(expr.value)
	instance.set(expr.name, value)
	return value
}

func (e *exec) visitSuperExpr(expr *superExpr) R {
	distance := e.locals[expr]
	superclass := e.env.getAt(distance, "super").(*loxClass)
	// "this" lives in the frame just inside the one binding "super"
	object := e.env.getAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		e.state.runtimeErr(errorf(errUndefinedProp, "Undefined property '%s'.", expr.method.Lexeme), expr.method)
	}
	return method.bind(object)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := e.evaluate(expr.left)

	if expr.operator.Kind == tkOr {
		if e.truthy(left) {
			return left
		}
	} else if !e.truthy(left) {
		return left
	}

	return e.evaluate(expr.right)
}

func (e *exec) visitThisExpr(expr *thisExpr) R {
	return e.lookUpVariable(expr.keyword, expr)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := e.evaluate(expr.right)
	switch expr.operator.Kind {
	case tkBang:
		return loxBool(!e.truthy(value))
	case tkMinus:
		return e.operate(opNeg, expr.operator, value)
	}
	panic(fmt.Sprintf("unknown unary operator %s", expr.operator.Kind))
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.lookUpVariable(expr.name, expr)
}

func (e *exec) lookUpVariable(name *Token, expr Expr) interface{} {
	if distance, ok := e.locals[expr]; ok {
		return e.env.getAt(distance, name.Lexeme)
	}
	return e.globals.get(name)
}

func (e *exec) truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case loxBool:
		return bool(v)
	}
	return true
}

// printObj formats a runtime value for display
func printObj(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}
