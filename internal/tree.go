package internal

import (
	"fmt"
	"strings"
)

//R generic type
type R interface{}

// FormatTree renders stmts as parenthesized prefix expressions, one
// statement per line.
func FormatTree(stmts []Stmt) string {
	out := ""
	for _, stmt := range stmts {
		out += stmt.accept(stringVisitor{}).(string) + "\n"
	}
	return out
}

type stringVisitor struct{}

func (v stringVisitor) parenthesize(name string, parts ...interface{}) string {
	out := "(" + name
	for _, part := range parts {
		switch p := part.(type) {
		case Expr:
			out += " " + p.accept(v).(string)
		case Stmt:
			out += " " + p.accept(v).(string)
		default:
			out += fmt.Sprintf(" %v", p)
		}
	}
	return out + ")"
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return v.parenthesize(";", stmt.expression)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return v.parenthesize("print", stmt.expression)
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return v.parenthesize("var", stmt.name.Lexeme)
	}
	return v.parenthesize("var", stmt.name.Lexeme, "=", stmt.initializer)
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	out := "(block"
	for _, s := range stmt.stmts {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	if stmt.elseBranch == nil {
		return v.parenthesize("if", stmt.condition, stmt.thenBranch)
	}
	return v.parenthesize("if-else", stmt.condition, stmt.thenBranch, stmt.elseBranch)
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) R {
	return v.parenthesize("while", stmt.condition, stmt.body)
}

func (v stringVisitor) visitFnStmt(stmt *fnStmt) R {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.Lexeme
	}
	out := "(fun " + stmt.name.Lexeme + " (" + strings.Join(params, " ") + ")"
	for _, st := range stmt.body {
		out += fmt.Sprintf(" %v", st.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	if stmt.value == nil {
		return "(return)"
	}
	return v.parenthesize("return", stmt.value)
}

func (v stringVisitor) visitClassStmt(stmt *classStmt) R {
	out := "(class " + stmt.name.Lexeme
	if stmt.superclass != nil {
		out += " < " + stmt.superclass.name.Lexeme
	}
	for _, method := range stmt.methods {
		out += fmt.Sprintf(" %v", method.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return v.parenthesize("=", expr.name.Lexeme, expr.value)
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return v.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	parts := make([]interface{}, 0, len(expr.arguments)+1)
	parts = append(parts, expr.callee)
	for _, argument := range expr.arguments {
		parts = append(parts, argument)
	}
	return v.parenthesize("call", parts...)
}

func (v stringVisitor) visitGetExpr(expr *getExpr) R {
	return v.parenthesize(".", expr.object, expr.name.Lexeme)
}

func (v stringVisitor) visitSetExpr(expr *setExpr) R {
	return v.parenthesize("=", expr.object, expr.name.Lexeme, expr.value)
}

func (v stringVisitor) visitSuperExpr(expr *superExpr) R {
	return v.parenthesize("super", expr.method.Lexeme)
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return v.parenthesize("group", expr.expression)
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if str, isString := expr.value.(loxString); isString {
		return "\"" + string(str) + "\""
	}
	return printObj(expr.value)
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) R {
	return v.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (v stringVisitor) visitThisExpr(expr *thisExpr) R {
	return "this"
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return v.parenthesize(expr.operator.Lexeme, expr.right)
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.Lexeme
}
