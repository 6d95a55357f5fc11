package internal

const maxFunctionParams = 255

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	state *interpreterState
}

func newParser(state *interpreterState, tokens []Token) *parser {
	return &parser{
		tokens: tokens,
		state:  state,
	}
}

func (p *parser) parse() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.isAtEnd() {
		st := p.parseStmt()
		// A statement that failed to parse is reported and dropped, the
		// rest of the program is still parsed to collect more errors.
		if st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *parser) parseStmt() (s Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parsePanic); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() Stmt {
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.fn("function")
	}
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) class() Stmt {
	name := p.consume(tkIdentifier, errorf(errExpectedName, "Expect class name."))

	var superclass *variableExpr
	if p.match(tkLess) {
		class := p.consume(tkIdentifier, errorf(errExpectedName, "Expect superclass name."))
		superclass = &variableExpr{
			name: class,
		}
	}

	p.consume(tkLeftBrace, errorf(errExpectedOpeningBrace, "Expect '{' before class body."))

	var methods []*fnStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.fn("method"))
	}

	p.consume(tkRightBrace, errorf(errExpectedClosingBrace, "Expect '}' after class body."))

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (p *parser) fn(kind string) *fnStmt {
	name := p.consume(tkIdentifier, errorf(errExpectedName, "Expect %s name.", kind))

	p.consume(tkLeftParen, errorf(errExpectedParen, "Expect '(' after %s name.", kind))

	var params []*Token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.tokenError(p.peek(), errMaxParameters)
			}
			params = append(params, p.consume(tkIdentifier, errExpectedParam))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errorf(errExpectedClosingParen, "Expect ')' after parameters."))

	p.consume(tkLeftBrace, errorf(errExpectedOpeningBrace, "Expect '{' before %s body.", kind))
	body := p.block()

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) varDeclaration() Stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var init Expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, errorf(errExpectedSemicolon, "Expect ';' after variable declaration."))

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() Stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.print()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop parses a for statement and lowers it into a block holding the
// initializer followed by an equivalent while loop.
func (p *parser) forLoop() Stmt {
	keyword := p.previous()

	p.consume(tkLeftParen, errorf(errExpectedParen, "Expect '(' after 'for'."))

	var init Stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond Expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errorf(errExpectedSemicolon, "Expect ';' after loop condition."))

	var inc Expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errorf(errExpectedClosingParen, "Expect ')' after for clauses."))

	body := p.statement()

	if inc != nil {
		body = &blockStmt{
			stmts: []Stmt{body, &exprStmt{expression: inc}},
		}
	}

	if cond == nil {
		cond = &literalExpr{value: loxBool(true)}
	}

	var loop Stmt = &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}

	if init != nil {
		loop = &blockStmt{stmts: []Stmt{init, loop}}
	}

	return loop
}

func (p *parser) ifStmt() Stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, errorf(errExpectedParen, "Expect '(' after 'if'."))
	st.condition = p.expression()
	p.consume(tkRightParen, errorf(errExpectedClosingParen, "Expect ')' after if condition."))

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) print() Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errorf(errExpectedSemicolon, "Expect ';' after value."))
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) ret() Stmt {
	var value Expr
	keyword := p.previous()
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errorf(errExpectedSemicolon, "Expect ';' after return value."))
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() Stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errorf(errExpectedParen, "Expect '(' after 'while'."))
	cond := p.expression()
	p.consume(tkRightParen, errorf(errExpectedClosingParen, "Expect ')' after condition."))
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) block() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, errorf(errExpectedClosingBrace, "Expect '}' after block."))
	return stmts
}

func (p *parser) expressionStmt() Stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errorf(errExpectedSemicolon, "Expect ';' after expression."))
	return &exprStmt{
		expression: expr,
		echo:       !isAssignment(expr),
	}
}

func isAssignment(expr Expr) bool {
	switch expr.(type) {
	case *assignExpr, *setExpr:
		return true
	}
	return false
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		} else if get, isGet := expr.(*getExpr); isGet {
			return &setExpr{
				object: get.object,
				name:   get.name,
				value:  value,
			}
		}

		p.state.tokenError(equal, errInvalidAssignment)
	}
	return expr
}

func (p *parser) or() Expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() Expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() Expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() Expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedProp)
			expr = &getExpr{
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee Expr) Expr {
	arguments := make([]Expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.state.tokenError(p.peek(), errMaxArguments)
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errorf(errExpectedClosingParen, "Expect ')' after arguments."))
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() Expr {
	if p.match(tkFalse) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().Literal}
	}
	if p.match(tkSuper) {
		return p.superExpr()
	}
	if p.match(tkThis) {
		return &thisExpr{keyword: p.previous()}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.state.fatalError(p.peek(), errExpectedExpr)
	return nil
}

func (p *parser) superExpr() Expr {
	keyword := p.previous()
	p.consume(tkDot, errExpectedDot)
	method := p.consume(tkIdentifier, errExpectedSuperMethod)
	return &superExpr{
		keyword: keyword,
		method:  method,
	}
}

func (p *parser) consume(tk TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(p.peek(), err)
	return nil
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == token
}

func (p *parser) peek() *Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *Token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == tkEOF
}

func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == tkSemicolon {
			return
		}

		switch p.peek().Kind {
		case tkClass:
			return
		case tkFun:
			return
		case tkVar:
			return
		case tkFor:
			return
		case tkIf:
			return
		case tkWhile:
			return
		case tkPrint:
			return
		case tkReturn:
			return
		default:
		}

		p.advance()
	}
}
