package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go && go run . Stmt > ../../internal/stmt.go"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}
	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Expr: expression Expr, echo bool",
			"Print: keyword *Token, expression Expr",
			"Var: name *Token, initializer Expr",
			"Block: stmts []Stmt",
			"If: keyword *Token, condition Expr, thenBranch Stmt, elseBranch Stmt",
			"While: keyword *Token, condition Expr, body Stmt",
			"Fn: name *Token, params []*Token, body []Stmt",
			"Return: keyword *Token, value Expr",
			"Class: name *Token, superclass *variableExpr, methods []*fnStmt",
		})
	case "Expr":
		out = generateAst("Expr", []string{
			"Assign: name *Token, value Expr",
			"Binary: left Expr, operator *Token, right Expr",
			"Call: callee Expr, paren *Token, arguments []Expr",
			"Get: object Expr, name *Token",
			"Set: object Expr, name *Token, value Expr",
			"Super: keyword *Token, method *Token",
			"Grouping: expression Expr",
			"Literal: value interface{}",
			"Logical: left Expr, operator *Token, right Expr",
			"This: keyword *Token",
			"Unary: operator *Token, right Expr",
			"Variable: name *Token",
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(64)
	}
	formatted, err := format.Source([]byte(out))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(formatted))
}

type node struct {
	name   string
	fields []string
}

func parseNodes(defs []string) []node {
	nodes := make([]node, 0, len(defs))
	for _, def := range defs {
		parts := strings.SplitN(def, ":", 2)
		n := node{name: strings.TrimSpace(parts[0])}
		for _, field := range strings.Split(parts[1], ",") {
			n.fields = append(n.fields, strings.TrimSpace(field))
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// structName turns Binary into binaryExpr for the Expr family
func (n node) structName(family string) string {
	return strings.ToLower(n.name[:1]) + n.name[1:] + family
}

func generateAst(family string, defs []string) string {
	visitor := strings.ToLower(family) + "Visitor"
	nodes := parseNodes(defs)

	var b strings.Builder
	b.WriteString("// Code generated by cmd/ast; DO NOT EDIT.\n\n")
	b.WriteString("package internal\n\n")

	fmt.Fprintf(&b, "// %s is a node of the syntax tree. The set of implementations is closed.\n", family)
	fmt.Fprintf(&b, "type %s interface {\n\taccept(%s) R\n}\n\n", family, visitor)

	fmt.Fprintf(&b, "type %s interface {\n", visitor)
	for _, n := range nodes {
		fmt.Fprintf(&b, "\tvisit%s%s(%s *%s) R\n", n.name, family, strings.ToLower(family), n.structName(family))
	}
	b.WriteString("}\n\n")

	for _, n := range nodes {
		writeNode(&b, family, visitor, n)
	}
	return b.String()
}

func writeNode(b *strings.Builder, family, visitor string, n node) {
	name := n.structName(family)
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, field := range n.fields {
		fmt.Fprintf(b, "\t%s\n", field)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "func (s *%s) accept(visitor %s) R {\n", name, visitor)
	fmt.Fprintf(b, "\treturn visitor.visit%s%s(s)\n}\n\n", n.name, family)
}
