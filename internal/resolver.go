package internal

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// resolver computes, for every local variable reference, how many scopes
// separate it from its declaration. Globals are left unresolved.
type resolver struct {
	// false = declared, true = defined
	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType

	locals map[Expr]int
	state  *interpreterState
}

func newResolver(state *interpreterState, locals map[Expr]int) *resolver {
	return &resolver{
		scopes: make([]map[string]bool, 0),
		locals: locals,
		state:  state,
	}
}

func (r *resolver) resolveStmts(stmts []Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s Stmt) {
	s.accept(r)
}

func (r *resolver) resolveExpr(e Expr) {
	e.accept(r)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) declare(name *Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.Lexeme]; ok {
		r.state.tokenError(name, errAlreadyDeclared)
	}
	scope[name.Lexeme] = false
}

func (r *resolver) define(name *Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.Lexeme] = true
}

func (r *resolver) resolveLocal(expr Expr, name *Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() {
		r.currentFunction = enclosingFunction
	}()

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.body)
	r.endScope()
}

func (r *resolver) visitExprStmt(stmt *exprStmt) R {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *resolver) visitPrintStmt(stmt *printStmt) R {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *resolver) visitVarStmt(stmt *varStmt) R {
	r.declare(stmt.name)
	if stmt.initializer != nil {
		r.resolveExpr(stmt.initializer)
	}
	r.define(stmt.name)
	return nil
}

func (r *resolver) visitBlockStmt(stmt *blockStmt) R {
	r.beginScope()
	r.resolveStmts(stmt.stmts)
	r.endScope()
	return nil
}

func (r *resolver) visitIfStmt(stmt *ifStmt) R {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		r.resolveStmt(stmt.elseBranch)
	}
	return nil
}

func (r *resolver) visitWhileStmt(stmt *whileStmt) R {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.body)
	return nil
}

func (r *resolver) visitFnStmt(stmt *fnStmt) R {
	r.declare(stmt.name)
	r.define(stmt.name)
	r.resolveFunction(stmt, fnFunction)
	return nil
}

func (r *resolver) visitReturnStmt(stmt *returnStmt) R {
	if r.currentFunction == fnNone {
		r.state.tokenError(stmt.keyword, errTopLevelReturn)
	}
	if stmt.value != nil {
		if r.currentFunction == fnInitializer {
			r.state.tokenError(stmt.keyword, errInitializerReturn)
		}
		r.resolveExpr(stmt.value)
	}
	return nil
}

func (r *resolver) visitClassStmt(stmt *classStmt) R {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(stmt.name)
	r.define(stmt.name)

	if stmt.superclass != nil {
		if stmt.superclass.name.Lexeme == stmt.name.Lexeme {
			r.state.tokenError(stmt.superclass.name, errInheritFromSelf)
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range stmt.methods {
		declaration := fnMethod
		if method.name.Lexeme == "init" {
			declaration = fnInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()

	if stmt.superclass != nil {
		r.endScope()
	}
	return nil
}

func (r *resolver) visitAssignExpr(expr *assignExpr) R {
	r.resolveExpr(expr.value)
	r.resolveLocal(expr, expr.name)
	return nil
}

func (r *resolver) visitBinaryExpr(expr *binaryExpr) R {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitCallExpr(expr *callExpr) R {
	r.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		r.resolveExpr(argument)
	}
	return nil
}

func (r *resolver) visitGetExpr(expr *getExpr) R {
	r.resolveExpr(expr.object)
	return nil
}

func (r *resolver) visitSetExpr(expr *setExpr) R {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.object)
	return nil
}

func (r *resolver) visitSuperExpr(expr *superExpr) R {
	if r.currentClass == classNone {
		r.state.tokenError(expr.keyword, errSuperOutsideClass)
	} else if r.currentClass != classSubclass {
		r.state.tokenError(expr.keyword, errSuperWithoutSuperclass)
	}
	r.resolveLocal(expr, expr.keyword)
	return nil
}

func (r *resolver) visitGroupingExpr(expr *groupingExpr) R {
	r.resolveExpr(expr.expression)
	return nil
}

func (r *resolver) visitLiteralExpr(expr *literalExpr) R {
	return nil
}

func (r *resolver) visitLogicalExpr(expr *logicalExpr) R {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitThisExpr(expr *thisExpr) R {
	if r.currentClass == classNone {
		r.state.tokenError(expr.keyword, errThisOutsideClass)
		return nil
	}
	r.resolveLocal(expr, expr.keyword)
	return nil
}

func (r *resolver) visitUnaryExpr(expr *unaryExpr) R {
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitVariableExpr(expr *variableExpr) R {
	if len(r.scopes) > 0 {
		if defined, ok := r.peekScope()[expr.name.Lexeme]; ok && !defined {
			r.state.tokenError(expr.name, errOwnInitializer)
		}
	}
	r.resolveLocal(expr, expr.name)
	return nil
}
