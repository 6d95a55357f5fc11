package internal

import "fmt"

// env is one scope frame. Frames are shared by every closure that captured
// them, so a binding changed through one holder is seen by all of them.
type env struct {
	state *interpreterState

	enclosing *env
	values    map[string]interface{}
}

func newEnv(state *interpreterState, enclosing *env) *env {
	return &env{
		state:     state,
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *Token) interface{} {
	if value, ok := e.values[name.Lexeme]; ok {
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	e.state.runtimeErr(errorf(errUndefinedVar, "Undefined variable '%s'.", name.Lexeme), name)
	return nil
}

// define binds name in this frame, replacing any previous binding.
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *Token, value interface{}) {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.assign(name, value)
		return
	}
	e.state.runtimeErr(errorf(errUndefinedVar, "Undefined variable '%s'.", name.Lexeme), name)
}

// ancestor walks exactly distance frames up. Running off the chain means
// the resolver and the evaluator disagree, which is a bug and not a user
// error.
func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
		if environment == nil {
			panic(fmt.Sprintf("resolved distance %d exceeds scope depth %d", distance, i+1))
		}
	}
	return environment
}

func (e *env) getAt(distance int, name string) interface{} {
	value, ok := e.ancestor(distance).values[name]
	if !ok {
		panic(fmt.Sprintf("%q not found at resolved distance %d", name, distance))
	}
	return value
}

func (e *env) assignAt(distance int, name *Token, value interface{}) {
	e.ancestor(distance).values[name.Lexeme] = value
}
